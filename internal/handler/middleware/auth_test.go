//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/handler/middleware"
	usecasemock "escape-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guest := account.Principal{UserID: uuid.New(), Role: account.RoleGuest}
	owner := account.Principal{UserID: uuid.New(), Role: account.RoleOwner}

	tests := []struct {
		name       string
		header     string
		setup      func(v *usecasemock.MockTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("broken").Return(account.Principal{}, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid or expired token",
		},
		{
			name:   "guest blocked from staff route",
			header: "Bearer guest-token",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("guest-token").Return(guest, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "FORBIDDEN",
		},
		{
			name:   "owner passes",
			header: "Bearer owner-token",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("owner-token").Return(owner, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   owner.UserID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			if tt.setup != nil {
				tt.setup(validator)
			}
			auth := middleware.NewAuthMiddleware(validator)

			router := gin.New()
			router.POST("/staff", auth.RequireAuth(), auth.RequireRoleAtLeast(account.RoleOwner), func(c *gin.Context) {
				p, ok := middleware.GetPrincipal(c)
				assert.True(t, ok)
				c.String(http.StatusOK, p.UserID.String())
			})

			req := httptest.NewRequest(http.MethodPost, "/staff", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(nil)

	router := gin.New()
	router.GET("/misconfigured", auth.RequireRoleAtLeast(account.RoleGuest), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/misconfigured", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
