package ward

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
)

type (
	// Staff is the public view of an identity record. The password hash is
	// kept on Credentials and never leaves the lookup path.
	Staff struct {
		ID        int64  `json:"id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	Credentials struct {
		StaffID    int64
		SecretHash string
	}
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

func (r *Registry) CreateStaff(ctx context.Context, email, secretHash, role, firstName, lastName string) (int64, error) {
	if !r.writeable {
		return 0, ReadOnlyRegistry{}
	}
	if !ValidRole(role) {
		return 0, fmt.Errorf("role %v is not one of admin/doctor/receptionist", role)
	}
	res, err := r.db.ExecContext(ctx,
		`insert into staff (email, password_hash, role, first_name, last_name) values (?, ?, ?, ?, ?)`,
		email, secretHash, role, firstName, lastName)
	if err != nil {
		return 0, fmt.Errorf("unable to create staff %v, cause %w", email, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read id of staff %v, cause %w", email, err)
	}
	return id, nil
}

// Credentials looks up the stored secret hash for the (email, role) pair.
// The pair is the lookup key, a valid email under the wrong role misses.
func (r *Registry) Credentials(ctx context.Context, email, role string) (Credentials, error) {
	var cred Credentials
	err := r.db.QueryRowContext(ctx,
		`select id, password_hash from staff where email = ? and role = ?`,
		email, role).Scan(&cred.StaffID, &cred.SecretHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Credentials{}, StaffNotFound{Email: email, Role: role}
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("unable to load credentials, cause %w", err)
	}
	return cred, nil
}

func (r *Registry) StaffByID(ctx context.Context, id int64) (Staff, error) {
	var s Staff
	err := r.db.QueryRowContext(ctx,
		`select id, email, role, first_name, last_name from staff where id = ?`,
		id).Scan(&s.ID, &s.Email, &s.Role, &s.FirstName, &s.LastName)
	if err != nil {
		return Staff{}, fmt.Errorf("unable to load staff %v, cause %w", id, err)
	}
	return s, nil
}
