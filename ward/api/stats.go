package api

import (
	"net/http"

	"wardline/ward"
)

func dashboardStats(reg *ward.Registry, cache *ward.StatsCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := cache.Stats(r.Context(), reg)
		if err != nil {
			serverFault(w, r, err, "Unable to compute dashboard stats")
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}
