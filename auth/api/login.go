package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"wardline/auth"
	"wardline/internal/logutil"
	"wardline/ward"
)

type (
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	// loginResponse is the client's whole session state: it must store the
	// token and user, attach the token to every later call and discard both
	// the moment any call answers 401.
	loginResponse struct {
		Token string     `json:"token"`
		User  ward.Staff `json:"user"`
	}
)

// LoginHandler verifies the submitted credentials and issues a token. Every
// credential failure collapses into one 401 body, infrastructure faults
// (including directory timeouts) are a 500 and never masquerade as bad
// credentials.
func LoginHandler(dir auth.StaffDirectory, codec *auth.Codec, storeTimeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		log := logutil.GetOrDefault(r.Context())
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
		defer cancel()
		staff, err := auth.Verify(ctx, dir, req.Email, req.Password, req.Role)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("Credential check failed with a non-credential error")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		token, err := codec.Issue(staff)
		if err != nil {
			log.Error().Err(err).Msg("Unable to issue token")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		log.Info().Str("staff.email", staff.Email).Str("staff.role", staff.Role).Msg("Login succeeded")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(loginResponse{Token: token, User: staff})
	})
}
