package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wardline/auth"
	"wardline/internal/testutil"
	"wardline/ward"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
)

func seedStaff(ctx context.Context, t *testing.T, reg *ward.Registry, email, password, role string) {
	hash, err := auth.HashSecret(password)
	if err != nil {
		t.Fatal(err)
	}
	_, err = reg.CreateStaff(ctx, email, hash, role, "Dana", "Osei")
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoginHandler(t *testing.T) {
	ctx := context.Background()
	reg, cleanup := testutil.AcquireRegistry(ctx, t, "login")
	defer cleanup()
	seedStaff(ctx, t, reg, "doc@x.com", "correct", ward.RoleDoctor)

	codec := auth.NewCodec([]byte("login-test-secret"))
	handler := LoginHandler(reg, codec, time.Second*5)

	apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(`{"email":"doc@x.com","password":"correct","role":"doctor"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present("$.token")).
		Assert(jsonpath.Equal("$.user.email", "doc@x.com")).
		Assert(jsonpath.Equal("$.user.role", "doctor")).
		Assert(jsonpath.Equal("$.user.firstName", "Dana")).
		Assert(jsonpath.Equal("$.user.lastName", "Osei")).
		Assert(jsonpath.NotPresent("$.user.secretHash")).
		Assert(jsonpath.NotPresent("$.user.passwordHash")).
		End()

	// wrong password, wrong role and unknown email are indistinguishable
	for _, body := range []string{
		`{"email":"doc@x.com","password":"incorrect","role":"doctor"}`,
		`{"email":"doc@x.com","password":"correct","role":"admin"}`,
		`{"email":"ghost@x.com","password":"correct","role":"doctor"}`,
	} {
		apitest.Handler(handler).
			Post("/api/auth/login").
			JSON(body).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal("$.error", "Invalid credentials")).
			End()
	}

	apitest.Handler(handler).
		Post("/api/auth/login").
		Body(`this is not json`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLoginIssuesParseableToken(t *testing.T) {
	ctx := context.Background()
	reg, cleanup := testutil.AcquireRegistry(ctx, t, "login-token")
	defer cleanup()
	seedStaff(ctx, t, reg, "doc@x.com", "correct", ward.RoleDoctor)

	codec := auth.NewCodec([]byte("login-test-secret"))
	handler := LoginHandler(reg, codec, time.Second*5)

	var resp struct {
		Token string `json:"token"`
		User  ward.Staff
	}
	apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(`{"email":"doc@x.com","password":"correct","role":"doctor"}`).
		Expect(t).
		Status(http.StatusOK).
		End().
		JSON(&resp)
	claims, err := codec.Parse(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "doc@x.com" || claims.Role != ward.RoleDoctor {
		t.Fatalf("token carries the wrong identity: %+v", claims)
	}
}
