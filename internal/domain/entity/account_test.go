package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

func newAccount(t *testing.T, requested entity.Role) *entity.Account {
	t.Helper()
	a, err := entity.NewAccount("id-1", "Ana Pérez", "ana@example.com", "ana", requested, "aa", "bb", time.Now())
	require.NoError(t, err)
	return a
}

func TestNewAccount_CustomerQuedaActivo(t *testing.T) {
	a := newAccount(t, entity.RoleCustomer)

	assert.Equal(t, entity.RoleCustomer, a.Role)
	assert.Equal(t, entity.StatusActive, a.Status)
	assert.Equal(t, entity.RoleCustomer, a.RequestedRole)
}

func TestNewAccount_OtrosRolesQuedanPendientes(t *testing.T) {
	for _, r := range []entity.Role{entity.RoleStaff, entity.RoleSupervisor} {
		a := newAccount(t, r)
		assert.Equal(t, entity.RoleUnassigned, a.Role, "rol %s", r)
		assert.Equal(t, entity.StatusPending, a.Status, "rol %s", r)
		assert.Equal(t, r, a.RequestedRole)
	}
}

func TestNewAccount_RolSolicitadoInvalido(t *testing.T) {
	_, err := entity.NewAccount("id", "n", "e", "u", entity.RoleUnassigned, "", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewAccount("id", "n", "e", "u", entity.Role("root"), "", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewAccount("id", "n", "e", "u", entity.RoleAdmin, "", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "admin no se pide en el alta")
}

func TestApprove_DesdePendiente(t *testing.T) {
	a := newAccount(t, entity.RoleStaff)

	require.NoError(t, a.Approve(entity.RoleSupervisor))
	assert.Equal(t, entity.RoleSupervisor, a.Role)
	assert.Equal(t, entity.StatusActive, a.Status)
}

func TestApprove_RolVacioTomaElSolicitado(t *testing.T) {
	a := newAccount(t, entity.RoleStaff)

	require.NoError(t, a.Approve(""))
	assert.Equal(t, entity.RoleStaff, a.Role)
}

func TestApprove_RolNoAsignable(t *testing.T) {
	a := newAccount(t, entity.RoleStaff)

	err := a.Approve(entity.RoleUnassigned)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusPending, a.Status, "no debe cambiar el estado")
}

func TestTransiciones_SoloDesdePendiente(t *testing.T) {
	active := newAccount(t, entity.RoleCustomer)
	assert.ErrorIs(t, active.Approve(entity.RoleAdmin), domain.ErrInvalidTransition)
	assert.ErrorIs(t, active.Reject(), domain.ErrInvalidTransition)

	rejected := newAccount(t, entity.RoleStaff)
	require.NoError(t, rejected.Reject())
	assert.Equal(t, entity.StatusRejected, rejected.Status)
	assert.ErrorIs(t, rejected.Approve(entity.RoleStaff), domain.ErrInvalidTransition, "rejected es terminal")
	assert.ErrorIs(t, rejected.Reject(), domain.ErrInvalidTransition)
}

func TestConsoleFor(t *testing.T) {
	cases := map[entity.Role]entity.Console{
		entity.RoleAdmin:      entity.ConsoleAdmin,
		entity.RoleCustomer:   entity.ConsoleShop,
		entity.RoleStaff:      entity.ConsoleStaff,
		entity.RoleSupervisor: entity.ConsoleStaff,
	}
	for role, want := range cases {
		got, err := entity.ConsoleFor(role)
		require.NoError(t, err)
		assert.Equal(t, want, got, "rol %s", role)
	}

	_, err := entity.ConsoleFor(entity.RoleUnassigned)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestParseRole(t *testing.T) {
	r, err := entity.ParseRole("  Staff ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, r)

	_, err = entity.ParseRole("manager")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
