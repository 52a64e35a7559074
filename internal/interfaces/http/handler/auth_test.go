package handler

import (
	"net/http"
	"testing"

	identityapp "github.com/autenticco/backend/internal/application/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/autenticco/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(svc *MockAuthService, userID uuid.UUID) *gin.Engine {
	h := NewAuthHandler(svc)
	r := newTestRouter()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	protected := r.Group("")
	if userID != uuid.Nil {
		protected.Use(authAs(userID, "cars:read"))
	}
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/auth/me", h.Me)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, identityapp.LoginRequest{Email: "gerente@autenticco.com.br", Password: "s3cret!"}).
		Return(&identityapp.LoginResponse{
			Token: auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"},
			User:  identityapp.CurrentUserResponse{Email: "gerente@autenticco.com.br"},
		}, nil)

	w := doJSON(setupAuthRouter(svc, uuid.Nil), http.MethodPost, "/auth/login",
		`{"email":"gerente@autenticco.com.br","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got identityapp.LoginResponse
	decodeResponse(t, w, &got)
	assert.Equal(t, "access", got.Token.AccessToken)
	assert.Equal(t, "gerente@autenticco.com.br", got.User.Email)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password"))
	r := setupAuthRouter(svc, uuid.Nil)

	w := doJSON(r, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w, nil).Error.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"gerente@autenticco.com.br","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeResponse(t, w, nil).Error.Code)
}

func TestAuthHandler_Refresh_LimitReached(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, identityapp.RefreshRequest{RefreshToken: "r1"}).
		Return(nil, shared.NewDomainError("REFRESH_LIMIT", "Session expired, please sign in again"))

	w := doJSON(setupAuthRouter(svc, uuid.Nil), http.MethodPost, "/auth/refresh", `{"refresh_token":"r1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := uuid.New()

	t.Run("revokes the access token and the given refresh token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, mock.MatchedBy(func(c *auth.Claims) bool {
			return c.UserID == userID.String()
		}), identityapp.LogoutRequest{RefreshToken: "r1"}).Return(nil)

		w := doJSON(setupAuthRouter(svc, userID), http.MethodPost, "/auth/logout", `{"refresh_token":"r1"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("body is optional", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, mock.Anything, identityapp.LogoutRequest{}).Return(nil)

		w := doJSON(setupAuthRouter(svc, userID), http.MethodPost, "/auth/logout", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("requires claims", func(t *testing.T) {
		svc := new(MockAuthService)
		w := doJSON(setupAuthRouter(svc, uuid.Nil), http.MethodPost, "/auth/logout", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	svc := new(MockAuthService)
	userID := uuid.New()
	svc.On("Me", mock.Anything, userID).Return(&identityapp.CurrentUserResponse{
		ID:          userID,
		RoleCode:    "manager",
		Permissions: []string{"cars:read"},
	}, nil)

	w := doJSON(setupAuthRouter(svc, userID), http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got identityapp.CurrentUserResponse
	decodeResponse(t, w, &got)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, []string{"cars:read"}, got.Permissions)
}
