package ward

import (
	"context"
	"fmt"
	"time"
)

type (
	MedicalRecord struct {
		ID              int64     `json:"id"`
		PatientID       int64     `json:"patientId"`
		DoctorID        int64     `json:"doctorId"`
		VisitDate       string    `json:"visitDate"`
		Diagnosis       string    `json:"diagnosis"`
		Treatment       string    `json:"treatment"`
		Prescription    string    `json:"prescription"`
		Notes           string    `json:"notes"`
		DoctorFirstName string    `json:"doctorFirstName"`
		DoctorLastName  string    `json:"doctorLastName"`
		CreatedAt       time.Time `json:"createdAt"`
	}

	NewMedicalRecord struct {
		PatientID    int64  `json:"patientId"`
		DoctorID     int64  `json:"doctorId"`
		VisitDate    string `json:"visitDate"`
		Diagnosis    string `json:"diagnosis"`
		Treatment    string `json:"treatment"`
		Prescription string `json:"prescription"`
		Notes        string `json:"notes"`
	}
)

func (r *Registry) MedicalRecords(ctx context.Context, patientID int64) ([]MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`select mr.id, mr.patient_id, mr.doctor_id, mr.visit_date, mr.diagnosis,
			mr.treatment, mr.prescription, mr.notes, mr.created_at,
			d.first_name, d.last_name
		from medical_records mr
		inner join staff d on mr.doctor_id = d.id
		where mr.patient_id = ?
		order by mr.visit_date desc, mr.id desc`, patientID)
	if err != nil {
		return nil, fmt.Errorf("unable to list medical records of patient %v, cause %w", patientID, err)
	}
	defer rows.Close()
	var out []MedicalRecord
	for rows.Next() {
		var m MedicalRecord
		err = rows.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.VisitDate, &m.Diagnosis,
			&m.Treatment, &m.Prescription, &m.Notes, &m.CreatedAt,
			&m.DoctorFirstName, &m.DoctorLastName)
		if err != nil {
			return nil, fmt.Errorf("unable to list medical records of patient %v, cause %w", patientID, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list medical records of patient %v, cause %w", patientID, err)
	}
	return out, nil
}

func (r *Registry) CreateMedicalRecord(ctx context.Context, nm NewMedicalRecord) (int64, error) {
	if !r.writeable {
		return 0, ReadOnlyRegistry{}
	}
	res, err := r.db.ExecContext(ctx,
		`insert into medical_records (patient_id, doctor_id, visit_date, diagnosis, treatment, prescription, notes)
		values (?, ?, ?, ?, ?, ?, ?)`,
		nm.PatientID, nm.DoctorID, nm.VisitDate, nm.Diagnosis, nm.Treatment, nm.Prescription, nm.Notes)
	if err != nil {
		return 0, fmt.Errorf("unable to create medical record, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read id of new medical record, cause %w", err)
	}
	return id, nil
}
