package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"wardline/auth"
	"wardline/internal/logutil"
)

type (
	// SecurityRealm wraps the protected handler tree. It admits requests
	// carrying a valid bearer token and rejects everything else before any
	// resource handler runs.
	SecurityRealm struct {
		codec *auth.Codec
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

var (
	bearerTokenRE = regexp.MustCompile(`^Bearer ([^\s]+)$`)
)

func NewRealm(codec *auth.Codec) *SecurityRealm {
	return &SecurityRealm{codec: codec}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// Protect gates sensitive behind the bearer token check. A missing token is
// a 401, a token that fails to parse for any reason is a 403; the two status
// codes are the only distinction the client gets.
func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
		if len(groups) == 0 {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}
		claims, err := s.codec.Parse(groups[1])
		if err != nil {
			log := logutil.GetOrDefault(r.Context())
			log.Debug().Err(err).Msg("Rejecting token")
			writeError(w, http.StatusForbidden, "Invalid token")
			return
		}
		sensitive.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
