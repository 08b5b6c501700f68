package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsDuplicateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
		wantNil   bool
	}{
		{
			name: "email unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			},
			wantField: "email",
		},
		{
			name: "username unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_username_key",
			},
			wantField: "username",
		},
		{
			name: "wrapped unique violation",
			err: fmt.Errorf("storage.CreateUser: %w", &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			}),
			wantField: "email",
		},
		{
			name: "unknown constraint keeps its name",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_pkey",
			},
			wantField: "users_pkey",
		},
		{
			name: "other pg error is not a duplicate",
			err: &pgconn.PgError{
				Code: pgerrcode.NotNullViolation,
			},
			wantNil: true,
		},
		{
			name:    "plain error is not a duplicate",
			err:     errors.New("connection refused"),
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup := asDuplicateError(tt.err)
			if tt.wantNil {
				assert.Nil(t, dup)
				return
			}
			require.NotNil(t, dup)
			assert.Equal(t, tt.wantField, dup.Field)
		})
	}
}

func TestDuplicateError_Error(t *testing.T) {
	err := &DuplicateError{Field: "email"}
	assert.Equal(t, "duplicate value for unique field email", err.Error())
}
