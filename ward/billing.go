package ward

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type (
	Bill struct {
		ID               int64           `json:"id"`
		PatientID        int64           `json:"patientId"`
		Services         json.RawMessage `json:"services"`
		TotalAmount      float64         `json:"totalAmount"`
		Status           string          `json:"status"`
		PatientFirstName string          `json:"patientFirstName"`
		PatientLastName  string          `json:"patientLastName"`
		CreatedAt        time.Time       `json:"createdAt"`
	}

	NewBill struct {
		PatientID   int64           `json:"patientId"`
		Services    json.RawMessage `json:"services"`
		TotalAmount float64         `json:"totalAmount"`
		Status      string          `json:"status"`
	}
)

func (r *Registry) Bills(ctx context.Context) ([]Bill, error) {
	rows, err := r.db.QueryContext(ctx,
		`select b.id, b.patient_id, b.services, b.total_amount, b.status, b.created_at,
			p.first_name, p.last_name
		from billing b
		inner join patients p on b.patient_id = p.id
		order by b.created_at desc, b.id desc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list bills, cause %w", err)
	}
	defer rows.Close()
	var out []Bill
	for rows.Next() {
		var b Bill
		var services string
		err = rows.Scan(&b.ID, &b.PatientID, &services, &b.TotalAmount, &b.Status, &b.CreatedAt,
			&b.PatientFirstName, &b.PatientLastName)
		if err != nil {
			return nil, fmt.Errorf("unable to list bills, cause %w", err)
		}
		b.Services = json.RawMessage(services)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list bills, cause %w", err)
	}
	return out, nil
}

// CreateBill stores the service breakdown as a JSON document, the caller is
// free to put any structure in there. Status defaults to pending.
func (r *Registry) CreateBill(ctx context.Context, nb NewBill) (int64, error) {
	if !r.writeable {
		return 0, ReadOnlyRegistry{}
	}
	if nb.Status == "" {
		nb.Status = "pending"
	}
	services := nb.Services
	if len(services) == 0 {
		services = json.RawMessage(`[]`)
	}
	if !json.Valid(services) {
		return 0, fmt.Errorf("services must be a valid JSON document")
	}
	res, err := r.db.ExecContext(ctx,
		`insert into billing (patient_id, services, total_amount, status) values (?, ?, ?, ?)`,
		nb.PatientID, string(services), nb.TotalAmount, nb.Status)
	if err != nil {
		return 0, fmt.Errorf("unable to create bill, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read id of new bill, cause %w", err)
	}
	return id, nil
}
