package auth

import (
	"context"
	"errors"
	"fmt"

	"wardline/ward"

	"golang.org/x/crypto/bcrypt"
)

type (
	// StaffDirectory is the slice of the registry the verifier needs.
	StaffDirectory interface {
		Credentials(ctx context.Context, email, role string) (ward.Credentials, error)
		StaffByID(ctx context.Context, id int64) (ward.Staff, error)
	}
)

// HashSecret produces the bcrypt hash stored on a staff record.
func HashSecret(password string) (string, error) {
	buf, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("unable to hash password, cause %w", err)
	}
	return string(buf), nil
}

// Verify checks the submitted tuple against the directory. A miss on the
// (email, role) key and a bcrypt mismatch both come back as
// ErrInvalidCredentials. Any other failure is an infrastructure fault and is
// passed through wrapped, it must never be mistaken for bad credentials.
func Verify(ctx context.Context, dir StaffDirectory, email, password, role string) (ward.Staff, error) {
	cred, err := dir.Credentials(ctx, email, role)
	var miss ward.StaffNotFound
	if errors.As(err, &miss) {
		return ward.Staff{}, ErrInvalidCredentials
	}
	if err != nil {
		return ward.Staff{}, fmt.Errorf("unable to verify credentials, cause %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(password)) != nil {
		return ward.Staff{}, ErrInvalidCredentials
	}
	staff, err := dir.StaffByID(ctx, cred.StaffID)
	if err != nil {
		return ward.Staff{}, fmt.Errorf("unable to load staff record after credential check, cause %w", err)
	}
	return staff, nil
}
