package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/auth"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func newService() auth.Service {
	return auth.New(memory.NewUserRepository(), memory.NewSessionStore(), time.Hour, nil)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "Ana", "secret-1"))

	session, err := svc.Login(ctx, "ana@example.com", "secret-1")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "ana@example.com", session.Email)
	require.Equal(t, domain.RoleUser, session.Role)

	got, err := svc.Session(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, session.Email, got.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "Ana", "secret-1"))
	err := svc.Register(ctx, "ana@example.com", "Another", "secret-2")
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	err := svc.Register(ctx, "", "NoEmail", "secret-1")
	require.ErrorIs(t, err, domain.ErrEmailRequired)

	err = svc.Register(ctx, "short@example.com", "Short", "12345")
	require.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "Ana", "secret-1"))

	_, err := svc.Login(ctx, "ana@example.com", "wrong-pass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Неизвестный email неотличим от неверного пароля.
	_, err = svc.Login(ctx, "nobody@example.com", "secret-1")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginAssignsAdminRoleOnce(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ops@retail.admin", "Ops", "secret-1"))

	session, err := svc.Login(ctx, "ops@retail.admin", "secret-1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, session.Role)

	// Роль зафиксирована в сессии.
	got, err := svc.Session(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, got.Role)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "Ana", "secret-1"))
	session, err := svc.Login(ctx, "ana@example.com", "secret-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))

	_, err = svc.Session(ctx, session.Token)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRoleFor(t *testing.T) {
	require.Equal(t, domain.RoleAdmin, auth.RoleFor("ops@retail.admin"))
	require.Equal(t, domain.RoleUser, auth.RoleFor("ana@example.com"))
	require.Equal(t, domain.RoleUser, auth.RoleFor("admin@example.com"))
}
