package auth

import (
	"context"
	"errors"
	"testing"

	"wardline/ward"
)

type fakeDirectory struct {
	hashes map[string]string // email|role -> bcrypt hash
	staff  map[string]ward.Staff
	ids    map[string]int64
	fault  error
}

func (f *fakeDirectory) Credentials(_ context.Context, email, role string) (ward.Credentials, error) {
	if f.fault != nil {
		return ward.Credentials{}, f.fault
	}
	key := email + "|" + role
	hash, ok := f.hashes[key]
	if !ok {
		return ward.Credentials{}, ward.StaffNotFound{Email: email, Role: role}
	}
	return ward.Credentials{StaffID: f.ids[key], SecretHash: hash}, nil
}

func (f *fakeDirectory) StaffByID(_ context.Context, id int64) (ward.Staff, error) {
	for _, s := range f.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return ward.Staff{}, errors.New("no such staff")
}

func testDirectory(t *testing.T) *fakeDirectory {
	hash, err := HashSecret("correct")
	if err != nil {
		t.Fatal(err)
	}
	key := "doc@x.com|" + ward.RoleDoctor
	return &fakeDirectory{
		hashes: map[string]string{key: hash},
		ids:    map[string]int64{key: 7},
		staff: map[string]ward.Staff{
			key: {ID: 7, Email: "doc@x.com", Role: ward.RoleDoctor, FirstName: "Dana", LastName: "Osei"},
		},
	}
}

func TestVerifyCorrectCredentials(t *testing.T) {
	dir := testDirectory(t)
	staff, err := Verify(context.Background(), dir, "doc@x.com", "correct", ward.RoleDoctor)
	if err != nil {
		t.Fatal(err)
	}
	if staff.ID != 7 || staff.Role != ward.RoleDoctor {
		t.Fatalf("unexpected staff record %+v", staff)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	dir := testDirectory(t)
	_, err := Verify(context.Background(), dir, "doc@x.com", "incorrect", ward.RoleDoctor)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyWrongRole(t *testing.T) {
	// correct password under the wrong role must still fail, the role is
	// part of the lookup key
	dir := testDirectory(t)
	_, err := Verify(context.Background(), dir, "doc@x.com", "correct", ward.RoleAdmin)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyUnknownEmail(t *testing.T) {
	dir := testDirectory(t)
	_, err := Verify(context.Background(), dir, "ghost@x.com", "correct", ward.RoleDoctor)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyStoreFaultIsNotInvalidCredentials(t *testing.T) {
	dir := testDirectory(t)
	dir.fault = context.DeadlineExceeded
	_, err := Verify(context.Background(), dir, "doc@x.com", "correct", ward.RoleDoctor)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store fault must not be reported as invalid credentials")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("store fault should be wrapped, got %v", err)
	}
}
