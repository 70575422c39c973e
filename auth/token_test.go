package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wardline/ward"
)

var testStaff = ward.Staff{
	ID:        42,
	Email:     "doc@x.com",
	Role:      ward.RoleDoctor,
	FirstName: "Dana",
	LastName:  "Osei",
}

func TestIssueParseRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("unit-test-secret"))
	token, err := codec.Issue(testStaff)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := codec.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.StaffID != testStaff.ID {
		t.Fatalf("claims carry staff id %v, want %v", claims.StaffID, testStaff.ID)
	}
	if claims.Role != testStaff.Role {
		t.Fatalf("claims carry role %v, want %v", claims.Role, testStaff.Role)
	}
	if claims.Email != testStaff.Email {
		t.Fatalf("claims carry email %v, want %v", claims.Email, testStaff.Email)
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != TokenLifetime {
		t.Fatalf("token lives for %v, want %v", lifetime, TokenLifetime)
	}
}

func TestParseExpired(t *testing.T) {
	secret := []byte("unit-test-secret")
	past := NewCodec(secret)
	past.clock = func() time.Time { return time.Now().Add(-TokenLifetime - time.Second) }
	token, err := past.Issue(testStaff)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewCodec(secret).Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseTamperedSignature(t *testing.T) {
	codec := NewCodec([]byte("unit-test-secret"))
	token, err := codec.Issue(testStaff)
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %v segments, want 3", len(parts))
	}
	sig := []byte(parts[2])
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		// swap the high bits of the character, low bits of the final
		// character are padding and a lax base64 decoder ignores them
		if flipped[i] >= 'Q' && flipped[i] <= 'T' {
			flipped[i] = 'A'
		} else {
			flipped[i] = 'Q'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(flipped)
		if _, err := codec.Parse(tampered); err == nil {
			t.Fatalf("tampering signature byte %v went unnoticed", i)
		}
	}
}

func TestParseTamperedClaims(t *testing.T) {
	codec := NewCodec([]byte("unit-test-secret"))
	token, err := codec.Issue(testStaff)
	if err != nil {
		t.Fatal(err)
	}
	other, err := codec.Issue(ward.Staff{ID: 1, Email: "admin@x.com", Role: ward.RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	// claims of one token with the signature of another
	forged := strings.Split(other, ".")[0] + "." + strings.Split(other, ".")[1] + "." + strings.Split(token, ".")[2]
	if _, err := codec.Parse(forged); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewCodec([]byte("one-secret")).Issue(testStaff)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewCodec([]byte("another-secret")).Parse(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestParseGarbage(t *testing.T) {
	codec := NewCodec([]byte("unit-test-secret"))
	if _, err := codec.Parse("definitely-not-a-jwt"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
