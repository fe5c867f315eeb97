package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnb-academy/bnb-backend/internal/auth"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	auth.Init("test-secret")

	valid, err := auth.GenerateToken("admin@test.test", "64f000000000000000000001")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
		wantNext   bool
	}{
		{name: "no cookie", wantStatus: http.StatusUnauthorized},
		{name: "tampered token", cookie: valid + "x", wantStatus: http.StatusUnauthorized},
		{name: "valid token", cookie: valid, wantStatus: http.StatusOK, wantNext: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodPost, "/api/membership", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			RequireAuth(okHandler(&called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestRequireAuth_PrincipalInContext(t *testing.T) {
	auth.Init("test-secret")

	token, err := auth.GenerateToken("admin@test.test", "64f000000000000000000001")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	var gotID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotEmail, _ = Email(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	RequireAuth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "64f000000000000000000001", gotID)
	assert.Equal(t, "admin@test.test", gotEmail)
}

func TestAdminPageGate(t *testing.T) {
	auth.Init("test-secret")

	valid, err := auth.GenerateToken("admin@test.test", "64f000000000000000000001")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	tests := []struct {
		name         string
		cookie       string
		wantStatus   int
		wantLocation string
	}{
		{name: "no cookie", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "invalid token", cookie: "bogus", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "valid token", cookie: valid, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/admin/enrollments", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			AdminPageGate(okHandler(&called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
