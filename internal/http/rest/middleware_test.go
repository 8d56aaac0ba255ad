package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kekechi03/ero/internal/model"
)

func TestRequireAdmin(t *testing.T) {
	api := testAPI()

	testCases := []struct {
		name       string
		role       string
		wantNext   bool
		wantStatus int
	}{
		{"admin passes", model.RoleAdmin, true, http.StatusOK},
		{"member forbidden", model.RoleMember, false, http.StatusForbidden},
		{"missing role unauthorised", "", false, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/images", nil)
			if tc.role != "" {
				req = req.WithContext(context.WithValue(req.Context(), "user_role", tc.role))
			}

			rr := httptest.NewRecorder()
			api.RequireAdmin(next).ServeHTTP(rr, req)

			if nextCalled != tc.wantNext {
				t.Errorf("next called = %v; want %v", nextCalled, tc.wantNext)
			}
			if !tc.wantNext && rr.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
