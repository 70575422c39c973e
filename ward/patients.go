package ward

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type (
	Patient struct {
		ID               int64     `json:"id"`
		FirstName        string    `json:"firstName"`
		LastName         string    `json:"lastName"`
		DateOfBirth      string    `json:"dateOfBirth"`
		Gender           string    `json:"gender"`
		Phone            string    `json:"phone"`
		Email            string    `json:"email"`
		Address          string    `json:"address"`
		EmergencyContact string    `json:"emergencyContact"`
		Age              int       `json:"age"`
		CreatedAt        time.Time `json:"createdAt"`
	}

	NewPatient struct {
		FirstName        string `json:"firstName"`
		LastName         string `json:"lastName"`
		DateOfBirth      string `json:"dateOfBirth"`
		Gender           string `json:"gender"`
		Phone            string `json:"phone"`
		Email            string `json:"email"`
		Address          string `json:"address"`
		EmergencyContact string `json:"emergencyContact"`
	}
)

// ageFromBirthDate mirrors the calendar-year arithmetic the dashboard always
// used, it does not account for whether the birthday already happened.
func ageFromBirthDate(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	return now.Year() - born.Year()
}

func (r *Registry) Patients(ctx context.Context) ([]Patient, error) {
	rows, err := r.db.QueryContext(ctx,
		`select id, first_name, last_name, date_of_birth, gender,
			phone, email, address, emergency_contact, created_at
		from patients
		order by created_at desc, id desc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list patients, cause %w", err)
	}
	defer rows.Close()
	var out []Patient
	now := time.Now()
	for rows.Next() {
		var p Patient
		err = rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
			&p.Phone, &p.Email, &p.Address, &p.EmergencyContact, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to list patients, cause %w", err)
		}
		p.Age = ageFromBirthDate(p.DateOfBirth, now)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list patients, cause %w", err)
	}
	return out, nil
}

func (r *Registry) PatientByID(ctx context.Context, id int64) (Patient, error) {
	var p Patient
	err := r.db.QueryRowContext(ctx,
		`select id, first_name, last_name, date_of_birth, gender,
			phone, email, address, emergency_contact, created_at
		from patients where id = ?`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
			&p.Phone, &p.Email, &p.Address, &p.EmergencyContact, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Patient{}, PatientNotFound{ID: id}
	}
	if err != nil {
		return Patient{}, fmt.Errorf("unable to load patient %v, cause %w", id, err)
	}
	p.Age = ageFromBirthDate(p.DateOfBirth, time.Now())
	return p, nil
}

func (r *Registry) CreatePatient(ctx context.Context, np NewPatient) (Patient, error) {
	if !r.writeable {
		return Patient{}, ReadOnlyRegistry{}
	}
	res, err := r.db.ExecContext(ctx,
		`insert into patients (first_name, last_name, date_of_birth, gender,
			phone, email, address, emergency_contact)
		values (?, ?, ?, ?, ?, ?, ?, ?)`,
		np.FirstName, np.LastName, np.DateOfBirth, np.Gender,
		np.Phone, np.Email, np.Address, np.EmergencyContact)
	if err != nil {
		return Patient{}, fmt.Errorf("unable to create patient, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Patient{}, fmt.Errorf("unable to read id of new patient, cause %w", err)
	}
	return r.PatientByID(ctx, id)
}
