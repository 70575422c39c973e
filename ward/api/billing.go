package api

import (
	"net/http"

	"wardline/ward"
)

func listBills(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bills, err := reg.Bills(r.Context())
		if err != nil {
			serverFault(w, r, err, "Unable to list bills")
			return
		}
		if bills == nil {
			bills = []ward.Bill{}
		}
		writeList(w, r, bills)
	}
}

func createBill(reg *ward.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var nb ward.NewBill
		if !decodeBody(w, r, &nb) {
			return
		}
		if nb.PatientID == 0 {
			writeError(w, http.StatusBadRequest, "patientId is required")
			return
		}
		id, err := reg.CreateBill(r.Context(), nb)
		if err != nil {
			serverFault(w, r, err, "Unable to create bill")
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Bill created successfully"})
	}
}
