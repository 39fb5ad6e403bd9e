package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
)

type fakeTokenService struct {
	adapter.TokenService
	claims map[string]*adapter.TokenClaims
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := f.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func newAuthTestRouter(service adapter.TokenService, requiredRole *entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	m := NewAuthMiddleware(service)
	handlers := []gin.HandlerFunc{m.Authenticate()}
	if requiredRole != nil {
		handlers = append(handlers, m.RequireRole(*requiredRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})

	engine.GET("/protected", handlers...)
	return engine
}

func TestAuthenticateMiddleware(t *testing.T) {
	userID := uuid.New()
	service := &fakeTokenService{claims: map[string]*adapter.TokenClaims{
		"good-token": {
			UserID: userID,
			Email:  "vet@equivet.example",
			Roles:  []entity.Role{entity.RoleVet},
		},
	}}
	router := newAuthTestRouter(service, nil)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid bearer token", authHeader: "Bearer good-token", wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic good-token", wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", authHeader: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, recorder.Code)
			}
		})
	}
}

func TestRequireRoleMiddleware(t *testing.T) {
	service := &fakeTokenService{claims: map[string]*adapter.TokenClaims{
		"admin-token": {UserID: uuid.New(), Roles: []entity.Role{entity.RoleAdmin, entity.RoleVet}},
		"staff-token": {UserID: uuid.New(), Roles: []entity.Role{entity.RoleStaff}},
	}}
	admin := entity.RoleAdmin
	router := newAuthTestRouter(service, &admin)

	t.Run("user with the role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", recorder.Code)
		}
	})

	t.Run("user without the role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer staff-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", recorder.Code)
		}
	})
}
