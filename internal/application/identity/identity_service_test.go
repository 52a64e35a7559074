package identity

import (
	"context"
	"testing"
	"time"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/autenticco/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "carros2024"

func newJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "autenticco-test",
		MaxRefreshCount:        5,
	})
}

func sellerRole(t *testing.T) *identity.Role {
	t.Helper()
	role, err := identity.NewRole("seller", "Vendedor", "", []string{"cars:read", "leads:write"})
	require.NoError(t, err)
	return role
}

func newUser(t *testing.T, roleID uuid.UUID) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ana@autenticco.com.br", "Ana", testPassword, roleID)
	require.NoError(t, err)
	return user
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	de, ok := shared.AsDomainError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	role := sellerRole(t)
	user := newUser(t, role.ID)

	setup := func() (*AuthService, *MockUserRepository, *MockRoleRepository, *auth.InMemoryTokenBlacklist) {
		users := new(MockUserRepository)
		roles := new(MockRoleRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		users.On("FindByEmail", ctx, "ana@autenticco.com.br").Return(user, nil)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Save", ctx, user).Return(nil)
		roles.On("FindByID", ctx, role.ID).Return(role, nil)
		return NewAuthService(users, roles, newJWT(), blacklist, zap.NewNop()), users, roles, blacklist
	}

	t.Run("login issues token with role permissions", func(t *testing.T) {
		svc, users, _, _ := setup()

		resp, err := svc.Login(ctx, LoginRequest{Email: "ana@autenticco.com.br", Password: testPassword})

		require.NoError(t, err)
		assert.Equal(t, []string{"cars:read", "leads:write"}, resp.User.Permissions)
		assert.Equal(t, "seller", resp.User.RoleCode)
		assert.NotNil(t, resp.User.LastLoginAt)
		users.AssertCalled(t, "Save", ctx, user)

		claims, err := newJWT().ValidateAccessToken(resp.Token.AccessToken)
		require.NoError(t, err)
		assert.True(t, claims.HasPermission("leads:write"))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, _, _ := setup()
		_, err := svc.Login(ctx, LoginRequest{Email: "ana@autenticco.com.br", Password: "errada123"})
		assertCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown email gives same error", func(t *testing.T) {
		svc, users, _, _ := setup()
		users.On("FindByEmail", ctx, "ghost@autenticco.com.br").Return(nil, shared.ErrNotFound)
		_, err := svc.Login(ctx, LoginRequest{Email: "ghost@autenticco.com.br", Password: testPassword})
		assertCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, _, _, _ := setup()
		user.Deactivate()
		defer user.Activate()

		_, err := svc.Login(ctx, LoginRequest{Email: "ana@autenticco.com.br", Password: testPassword})
		assertCode(t, err, "ACCOUNT_DEACTIVATED")
	})

	t.Run("refresh rotates and revokes the old token", func(t *testing.T) {
		svc, _, _, _ := setup()
		login, err := svc.Login(ctx, LoginRequest{Email: "ana@autenticco.com.br", Password: testPassword})
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: login.Token.RefreshToken})
		require.NoError(t, err)
		assert.NotEqual(t, login.Token.RefreshToken, refreshed.Token.RefreshToken)

		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: login.Token.RefreshToken})
		assertCode(t, err, "TOKEN_REVOKED")
	})

	t.Run("logout revokes access and refresh tokens", func(t *testing.T) {
		svc, _, _, blacklist := setup()
		login, err := svc.Login(ctx, LoginRequest{Email: "ana@autenticco.com.br", Password: testPassword})
		require.NoError(t, err)
		access, err := newJWT().ValidateAccessToken(login.Token.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, access, LogoutRequest{RefreshToken: login.Token.RefreshToken}))

		revoked, err := blacklist.IsBlacklisted(ctx, access.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: login.Token.RefreshToken})
		assertCode(t, err, "TOKEN_REVOKED")
	})

	t.Run("me", func(t *testing.T) {
		svc, _, _, _ := setup()
		me, err := svc.Me(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Vendedor", me.RoleName)
	})
}

func TestRoleService(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate code", func(t *testing.T) {
		roles := new(MockRoleRepository)
		roles.On("FindByCode", ctx, "seller").Return(sellerRole(t), nil)

		_, err := NewRoleService(roles, new(MockUserRepository), zap.NewNop()).
			Create(ctx, RoleRequest{Code: "seller", Name: "Vendedor"})
		assertCode(t, err, "ROLE_CODE_EXISTS")
	})

	t.Run("create rejects unknown permission", func(t *testing.T) {
		_, err := NewRoleService(new(MockRoleRepository), new(MockUserRepository), zap.NewNop()).
			Create(ctx, RoleRequest{Code: "finance", Name: "Financeiro", Permissions: []string{"payroll:read"}})
		assertCode(t, err, "UNKNOWN_PERMISSION")
	})

	t.Run("delete refused while users hold the role", func(t *testing.T) {
		roles := new(MockRoleRepository)
		users := new(MockUserRepository)
		role := sellerRole(t)
		roles.On("FindByID", ctx, role.ID).Return(role, nil)
		users.On("CountByRole", ctx, role.ID).Return(int64(2), nil)

		err := NewRoleService(roles, users, zap.NewNop()).Delete(ctx, role.ID)
		assertCode(t, err, "ROLE_IN_USE")
		roles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("system role cannot be deleted", func(t *testing.T) {
		roles := new(MockRoleRepository)
		role := sellerRole(t)
		role.IsSystem = true
		roles.On("FindByID", ctx, role.ID).Return(role, nil)

		err := NewRoleService(roles, new(MockUserRepository), zap.NewNop()).Delete(ctx, role.ID)
		assertCode(t, err, "SYSTEM_ROLE")
	})

	t.Run("list includes user counts", func(t *testing.T) {
		roles := new(MockRoleRepository)
		users := new(MockUserRepository)
		role := sellerRole(t)
		roles.On("ListAll", ctx).Return([]identity.Role{*role}, nil)
		users.On("CountByRole", ctx, role.ID).Return(int64(3), nil)

		out, err := NewRoleService(roles, users, zap.NewNop()).List(ctx)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, int64(3), out[0].UserCount)
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects taken email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("ExistsByEmail", ctx, "ana@autenticco.com.br").Return(true, nil)

		_, err := NewUserService(users, new(MockRoleRepository), nil, time.Hour, zap.NewNop()).
			Create(ctx, CreateUserRequest{Email: "ana@autenticco.com.br", Name: "Ana", Password: testPassword, RoleID: uuid.New()})
		assertCode(t, err, "EMAIL_TAKEN")
	})

	t.Run("create rejects unknown role", func(t *testing.T) {
		users := new(MockUserRepository)
		roles := new(MockRoleRepository)
		roleID := uuid.New()
		users.On("ExistsByEmail", ctx, "novo@autenticco.com.br").Return(false, nil)
		roles.On("FindByID", ctx, roleID).Return(nil, shared.ErrNotFound)

		_, err := NewUserService(users, roles, nil, time.Hour, zap.NewNop()).
			Create(ctx, CreateUserRequest{Email: "novo@autenticco.com.br", Name: "Novo", Password: testPassword, RoleID: roleID})
		assertCode(t, err, "INVALID_ROLE")
	})

	t.Run("deactivate revokes sessions", func(t *testing.T) {
		users := new(MockUserRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		user := newUser(t, uuid.New())
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Save", ctx, user).Return(nil)

		resp, err := NewUserService(users, new(MockRoleRepository), blacklist, time.Hour, zap.NewNop()).
			Deactivate(ctx, uuid.New(), user.ID)

		require.NoError(t, err)
		assert.False(t, resp.IsActive)
		invalidated, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, invalidated)
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		id := uuid.New()
		_, err := NewUserService(new(MockUserRepository), new(MockRoleRepository), nil, time.Hour, zap.NewNop()).
			Deactivate(ctx, id, id)
		assertCode(t, err, "CANNOT_DEACTIVATE_SELF")
	})
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	admin := &BootstrapAdmin{Email: "admin@autenticco.com.br", Name: "Admin", Password: "trocar123"}

	t.Run("creates role and first admin", func(t *testing.T) {
		roles := new(MockRoleRepository)
		users := new(MockUserRepository)
		var saved *identity.Role
		roles.On("FindByCode", ctx, AdminRoleCode).Return(nil, shared.ErrNotFound)
		roles.On("Save", ctx, mock.AnythingOfType("*identity.Role")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*identity.Role) }).
			Return(nil)
		users.On("CountByRole", ctx, mock.Anything).Return(int64(0), nil)
		users.On("ExistsByEmail", ctx, admin.Email).Return(false, nil)
		users.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == admin.Email && u.RoleID == saved.ID
		})).Return(nil)

		require.NoError(t, Bootstrap(ctx, roles, users, admin, zap.NewNop()))
		require.NotNil(t, saved)
		assert.True(t, saved.IsSystem)
		assert.Len(t, saved.Permissions, len(identity.AllPermissions()))
		users.AssertExpectations(t)
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		roles := new(MockRoleRepository)
		users := new(MockUserRepository)
		var all []string
		for _, p := range identity.AllPermissions() {
			all = append(all, p.Code)
		}
		role, err := identity.NewRole(AdminRoleCode, "Administrador", "", all)
		require.NoError(t, err)
		roles.On("FindByCode", ctx, AdminRoleCode).Return(role, nil)
		users.On("CountByRole", ctx, role.ID).Return(int64(1), nil)

		require.NoError(t, Bootstrap(ctx, roles, users, admin, zap.NewNop()))
		roles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing permissions are synced", func(t *testing.T) {
		roles := new(MockRoleRepository)
		role, err := identity.NewRole(AdminRoleCode, "Administrador", "", []string{"cars:read"})
		require.NoError(t, err)
		roles.On("FindByCode", ctx, AdminRoleCode).Return(role, nil)
		roles.On("Save", ctx, role).Return(nil)

		require.NoError(t, Bootstrap(ctx, roles, new(MockUserRepository), nil, zap.NewNop()))
		assert.Len(t, role.Permissions, len(identity.AllPermissions()))
	})
}
