package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	handler := AdminAuth("secret-token")(next)

	cases := []struct {
		name       string
		token      string
		wantStatus int
		wantCalled bool
	}{
		{"valid token", "secret-token", http.StatusOK, true},
		{"wrong token", "wrong", http.StatusUnauthorized, false},
		{"missing token", "", http.StatusUnauthorized, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/limits", nil)
			if tc.token != "" {
				req.Header.Set("X-Admin-Token", tc.token)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
		})
	}
}
