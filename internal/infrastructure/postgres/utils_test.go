package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockmonitor/internal/domain"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, wrap("op", nil))

	dup := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, wrap("insert", dup), domain.ErrDuplicate)

	down := errors.New("connection refused")
	err := wrap("insert", down)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "insert")
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, isInvalidText(&pgconn.PgError{Code: "22P02"}))
	assert.False(t, isInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidText(errors.New("x")))
}
