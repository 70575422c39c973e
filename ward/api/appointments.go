package api

import (
	"net/http"

	"wardline/ward"
)

func listAppointments(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointments, err := reg.Appointments(r.Context())
		if err != nil {
			serverFault(w, r, err, "Unable to list appointments")
			return
		}
		if appointments == nil {
			appointments = []ward.Appointment{}
		}
		writeList(w, r, appointments)
	}
}

func createAppointment(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var na ward.NewAppointment
		if !decodeBody(w, r, &na) {
			return
		}
		if na.PatientID == 0 || na.DoctorID == 0 || na.AppointmentDate == "" || na.AppointmentTime == "" {
			writeError(w, http.StatusBadRequest, "patientId, doctorId, appointmentDate and appointmentTime are required")
			return
		}
		appointment, err := reg.CreateAppointment(r.Context(), na)
		if err != nil {
			serverFault(w, r, err, "Unable to create appointment")
			return
		}
		writeJSON(w, http.StatusCreated, appointment)
	}
}
