package api

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"wardline/auth"
	"wardline/ward"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
)

func TestProtect(t *testing.T) {
	codec := auth.NewCodec([]byte("filter-test-secret"))
	realm := NewRealm(codec)
	var count uint32
	var seen *auth.Claims
	protected := realm.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint32(&count, 1)
		seen, _ = auth.ClaimsFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	apitest.Handler(protected).
		Get("/api/patients").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error", "Access token required")).
		End()
	apitest.Handler(protected).
		Get("/api/patients").
		Header("Authorization", "Bearer not.a.token").
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal("$.error", "Invalid token")).
		End()
	if count != 0 {
		t.Fatal("protected handler ran for a rejected request")
	}

	token, err := codec.Issue(ward.Staff{ID: 9, Email: "doc@x.com", Role: ward.RoleDoctor})
	if err != nil {
		t.Fatal(err)
	}
	apitest.Handler(protected).
		Get("/api/patients").
		Header("Authorization", fmt.Sprintf("Bearer %v", token)).
		Expect(t).
		Status(http.StatusOK).
		End()
	if count != 1 {
		t.Fatal("protected handler should have been called exactly once")
	}
	if seen == nil || seen.StaffID != 9 || seen.Role != ward.RoleDoctor {
		t.Fatalf("handler saw the wrong identity: %+v", seen)
	}

	// tokens issued under another secret are forgeries here
	foreign, err := auth.NewCodec([]byte("some-other-secret")).Issue(ward.Staff{ID: 9, Email: "doc@x.com", Role: ward.RoleDoctor})
	if err != nil {
		t.Fatal(err)
	}
	apitest.Handler(protected).
		Get("/api/patients").
		Header("Authorization", fmt.Sprintf("Bearer %v", foreign)).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal("$.error", "Invalid token")).
		End()
}
