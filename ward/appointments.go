package ward

import (
	"context"
	"fmt"
	"time"
)

type (
	Appointment struct {
		ID               int64     `json:"id"`
		PatientID        int64     `json:"patientId"`
		DoctorID         int64     `json:"doctorId"`
		AppointmentDate  string    `json:"appointmentDate"`
		AppointmentTime  string    `json:"appointmentTime"`
		Notes            string    `json:"notes"`
		Status           string    `json:"status"`
		PatientFirstName string    `json:"patientFirstName"`
		PatientLastName  string    `json:"patientLastName"`
		DoctorFirstName  string    `json:"doctorFirstName"`
		DoctorLastName   string    `json:"doctorLastName"`
		CreatedAt        time.Time `json:"createdAt"`
	}

	NewAppointment struct {
		PatientID       int64  `json:"patientId"`
		DoctorID        int64  `json:"doctorId"`
		AppointmentDate string `json:"appointmentDate"`
		AppointmentTime string `json:"appointmentTime"`
		Notes           string `json:"notes"`
	}
)

const appointmentColumns = `a.id, a.patient_id, a.doctor_id, a.appointment_date, a.appointment_time,
	a.notes, a.status, a.created_at,
	p.first_name, p.last_name, d.first_name, d.last_name`

func scanAppointment(scan func(...interface{}) error) (Appointment, error) {
	var a Appointment
	err := scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.AppointmentTime,
		&a.Notes, &a.Status, &a.CreatedAt,
		&a.PatientFirstName, &a.PatientLastName, &a.DoctorFirstName, &a.DoctorLastName)
	return a, err
}

// Appointments lists every appointment joined with the patient and doctor
// names, newest first. Only staff with the doctor role can appear on the
// doctor side of the join.
func (r *Registry) Appointments(ctx context.Context) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`select %v
		from appointments a
		inner join patients p on a.patient_id = p.id
		inner join staff d on a.doctor_id = d.id and d.role = 'doctor'
		order by a.appointment_date desc, a.appointment_time desc`, appointmentColumns))
	if err != nil {
		return nil, fmt.Errorf("unable to list appointments, cause %w", err)
	}
	defer rows.Close()
	var out []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("unable to list appointments, cause %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list appointments, cause %w", err)
	}
	return out, nil
}

func (r *Registry) AppointmentByID(ctx context.Context, id int64) (Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx, fmt.Sprintf(`select %v
		from appointments a
		inner join patients p on a.patient_id = p.id
		inner join staff d on a.doctor_id = d.id
		where a.id = ?`, appointmentColumns), id).Scan)
	if err != nil {
		return Appointment{}, fmt.Errorf("unable to load appointment %v, cause %w", id, err)
	}
	return a, nil
}

func (r *Registry) CreateAppointment(ctx context.Context, na NewAppointment) (Appointment, error) {
	if !r.writeable {
		return Appointment{}, ReadOnlyRegistry{}
	}
	res, err := r.db.ExecContext(ctx,
		`insert into appointments (patient_id, doctor_id, appointment_date, appointment_time, notes, status)
		values (?, ?, ?, ?, ?, 'scheduled')`,
		na.PatientID, na.DoctorID, na.AppointmentDate, na.AppointmentTime, na.Notes)
	if err != nil {
		return Appointment{}, fmt.Errorf("unable to create appointment, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Appointment{}, fmt.Errorf("unable to read id of new appointment, cause %w", err)
	}
	return r.AppointmentByID(ctx, id)
}
