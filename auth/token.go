package auth

import (
	"errors"
	"fmt"
	"time"

	"wardline/ward"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is fixed policy, not per-call configuration.
const TokenLifetime = 24 * time.Hour

type (
	Claims struct {
		StaffID int64  `json:"id"`
		Email   string `json:"email"`
		Role    string `json:"role"`
		jwt.RegisteredClaims
	}

	// Codec signs and verifies tokens with a single process-wide secret.
	// The secret is immutable after construction, the codec is safe for
	// concurrent use.
	Codec struct {
		secret []byte
		clock  func() time.Time
	}
)

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, clock: time.Now}
}

func (c *Codec) Issue(staff ward.Staff) (string, error) {
	now := c.clock()
	claims := &Claims{
		StaffID: staff.ID,
		Email:   staff.Email,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("unable to sign token, cause %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded claims. It
// does not consult the staff directory, a validly signed unexpired token is
// accepted no matter what happened to the record since issuance.
func (c *Codec) Parse(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.clock), jwt.WithExpirationRequired())
	switch {
	case err == nil:
		return &claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	default:
		// covers forged and corrupted signatures alike, the caller does
		// not get to know which
		return nil, ErrBadSignature
	}
}
