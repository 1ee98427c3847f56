package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "vendedor_nif_key"}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert vendedor: %w", pgErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t,
		"postgres://app:xxxxx@db:5432/vendedores?sslmode=disable",
		redactDSN("postgres://app:s3cr3t@db:5432/vendedores?sslmode=disable"))
	assert.Equal(t, "postgres://db:5432/vendedores", redactDSN("postgres://db:5432/vendedores"))
}
