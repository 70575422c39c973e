package api

import (
	"net/http"
	"strconv"

	"wardline/ward"

	"github.com/julienschmidt/httprouter"
)

func listMedicalRecords(reg *ward.Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		patientID, err := strconv.ParseInt(params.ByName("patientId"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "patientId must be numeric")
			return
		}
		records, err := reg.MedicalRecords(r.Context(), patientID)
		if err != nil {
			serverFault(w, r, err, "Unable to list medical records")
			return
		}
		if records == nil {
			records = []ward.MedicalRecord{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func createMedicalRecord(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var nm ward.NewMedicalRecord
		if !decodeBody(w, r, &nm) {
			return
		}
		if nm.PatientID == 0 || nm.DoctorID == 0 || nm.VisitDate == "" {
			writeError(w, http.StatusBadRequest, "patientId, doctorId and visitDate are required")
			return
		}
		id, err := reg.CreateMedicalRecord(r.Context(), nm)
		if err != nil {
			serverFault(w, r, err, "Unable to create medical record")
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Medical record created successfully"})
	}
}
