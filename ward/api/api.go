package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"wardline/internal/logutil"
	"wardline/ward"

	"github.com/cespare/xxhash/v2"
	"github.com/julienschmidt/httprouter"
)

type (
	errorResponse struct {
		Error string `json:"error"`
	}

	createdResponse struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
)

// Handler exposes the clinical records CRUD surface. Everything here
// assumes the security realm already ran: handlers never see a request
// without valid claims in the context.
func Handler(reg *ward.Registry, stats *ward.StatsCache) http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/patients", listPatients(reg))
	router.HandlerFunc(http.MethodPost, "/api/patients", createPatient(reg))
	router.HandlerFunc(http.MethodGet, "/api/appointments", listAppointments(reg))
	router.HandlerFunc(http.MethodPost, "/api/appointments", createAppointment(reg))
	router.Handle(http.MethodGet, "/api/medical-records/:patientId", listMedicalRecords(reg))
	router.HandlerFunc(http.MethodPost, "/api/medical-records", createMedicalRecord(reg))
	router.HandlerFunc(http.MethodGet, "/api/billing", listBills(reg))
	router.HandlerFunc(http.MethodPost, "/api/billing", createBill(reg))
	router.HandlerFunc(http.MethodGet, "/api/dashboard/stats", dashboardStats(reg, stats))
	return router
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func serverFault(w http.ResponseWriter, r *http.Request, err error, what string) {
	logger := logutil.GetOrDefault(r.Context())
	logger.Error().Err(err).Msg(what)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeList adds a cheap ETag over the rendered body so dashboard pages
// polling the lists can skip identical payloads.
func writeList(w http.ResponseWriter, r *http.Request, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		serverFault(w, r, err, "Unable to render list")
		return
	}
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(buf))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(buf)
	w.Write([]byte{'\n'})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return false
	}
	return true
}
