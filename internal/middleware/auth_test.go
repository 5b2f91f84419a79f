package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/jwt"
)

func authedRequest(t *testing.T, jwtService *jwt.Service, role string) *http.Request {
	t.Helper()
	token, err := jwtService.GenerateAccessToken(uuid.New(), role)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute)
	handler := Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthPopulatesContext(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute)
	userID := uuid.New()
	token, err := jwtService.GenerateAccessToken(userID, "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotID uuid.UUID
	var gotRole string
	handler := Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
		gotRole = GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if gotID != userID {
		t.Errorf("user ID = %s, want %s", gotID, userID)
	}
	if gotRole != "manager" {
		t.Errorf("role = %q, want %q", gotRole, "manager")
	}
}

func TestRequireManagerBlocksViewers(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute)

	var called bool
	handler := Auth(jwtService)(RequireManager()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})))

	cases := []struct {
		role       string
		wantStatus int
	}{
		{"viewer", http.StatusForbidden},
		{"manager", http.StatusOK},
		{"admin", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			called = false
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, authedRequest(t, jwtService, tc.role))
			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if wantCalled := tc.wantStatus == http.StatusOK; called != wantCalled {
				t.Errorf("handler called = %v, want %v", called, wantCalled)
			}
		})
	}
}

func TestRequireAdminBlocksManagers(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute)

	handler := Auth(jwtService)(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest(t, jwtService, "manager"))
	if rr.Code != http.StatusForbidden {
		t.Errorf("manager status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest(t, jwtService, "admin"))
	if rr.Code != http.StatusOK {
		t.Errorf("admin status = %d, want %d", rr.Code, http.StatusOK)
	}
}
