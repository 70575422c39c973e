package api

import (
	"net/http"

	"wardline/ward"
)

func listPatients(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patients, err := reg.Patients(r.Context())
		if err != nil {
			serverFault(w, r, err, "Unable to list patients")
			return
		}
		if patients == nil {
			patients = []ward.Patient{}
		}
		writeList(w, r, patients)
	}
}

func createPatient(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var np ward.NewPatient
		if !decodeBody(w, r, &np) {
			return
		}
		if np.FirstName == "" || np.LastName == "" || np.DateOfBirth == "" {
			writeError(w, http.StatusBadRequest, "firstName, lastName and dateOfBirth are required")
			return
		}
		patient, err := reg.CreatePatient(r.Context(), np)
		if err != nil {
			serverFault(w, r, err, "Unable to create patient")
			return
		}
		writeJSON(w, http.StatusCreated, patient)
	}
}
