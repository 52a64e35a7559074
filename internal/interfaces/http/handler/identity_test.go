package handler

import (
	"errors"
	"net/http"
	"testing"

	identityapp "github.com/autenticco/backend/internal/application/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping() error { return p.err }

func setupUserRouter(svc *MockUserService, actor uuid.UUID) *gin.Engine {
	h := NewIdentityHandler(svc, nil)
	r := newTestRouter()
	r.Use(authAs(actor, "users:write"))
	r.POST("/users", h.CreateUser)
	r.POST("/users/:id/deactivate", h.DeactivateUser)
	return r
}

func TestIdentityHandler_CreateUser(t *testing.T) {
	svc := new(MockUserService)
	roleID := uuid.New()
	svc.On("Create", mock.Anything, identityapp.CreateUserRequest{
		Email:    "vendas@autenticco.com.br",
		Name:     "Equipe de Vendas",
		Password: "senha-forte-123",
		RoleID:   roleID,
	}).Return(nil, shared.NewDomainError("EMAIL_TAKEN", "Email is already registered"))

	r := setupUserRouter(svc, uuid.New())

	w := doJSON(r, http.MethodPost, "/users", map[string]any{
		"email": "vendas@autenticco.com.br", "name": "Equipe de Vendas", "password": "curta", "role_id": roleID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "password too short")

	w = doJSON(r, http.MethodPost, "/users", map[string]any{
		"email": "vendas@autenticco.com.br", "name": "Equipe de Vendas", "password": "senha-forte-123", "role_id": roleID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_TAKEN", decodeResponse(t, w, nil).Error.Code)
}

func TestIdentityHandler_DeactivateUser_PassesActor(t *testing.T) {
	svc := new(MockUserService)
	actor := uuid.New()
	target := uuid.New()
	svc.On("Deactivate", mock.Anything, actor, target).Return(&identityapp.UserResponse{ID: target, IsActive: false}, nil)
	svc.On("Deactivate", mock.Anything, actor, actor).
		Return(nil, shared.NewDomainError("CANNOT_DEACTIVATE_SELF", "You cannot deactivate your own account"))

	r := setupUserRouter(svc, actor)

	w := doJSON(r, http.MethodPost, "/users/"+target.String()+"/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/users/"+actor.String()+"/deactivate", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	r.GET("/up", Health(stubPinger{}))
	r.GET("/down", Health(stubPinger{err: errors.New("dial tcp: connection refused")}))

	w := doJSON(r, http.MethodGet, "/up", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)

	w = doJSON(r, http.MethodGet, "/down", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}
