package ward

import (
	"context"
	"fmt"
)

type (
	Stats struct {
		TotalPatients     int64 `json:"totalPatients"`
		TodayAppointments int64 `json:"todayAppointments"`
		PendingBills      int64 `json:"pendingBills"`
		ActiveDoctors     int64 `json:"activeDoctors"`
	}
)

func (r *Registry) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	counts := []struct {
		query string
		dest  *int64
	}{
		{`select count(*) from patients`, &st.TotalPatients},
		{`select count(*) from appointments where date(appointment_date) = date('now')`, &st.TodayAppointments},
		{`select count(*) from billing where status = 'pending'`, &st.PendingBills},
		{`select count(*) from staff where role = 'doctor'`, &st.ActiveDoctors},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("unable to compute dashboard stats, cause %w", err)
		}
	}
	return st, nil
}
