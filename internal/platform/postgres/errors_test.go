package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/places-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_unique"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "places_owner_id_fkey"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: checkViolationCode, ConstraintName: "places_description_length"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
			} else {
				assert.ErrorIs(t, mapped, tt.wantErr)
			}
		})
	}

	t.Run("unclassified errors pass through", func(t *testing.T) {
		original := errors.New("connection reset")
		assert.Equal(t, original, MapError(original))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("affected rows pass", func(t *testing.T) {
		err := CheckRowsAffected(sqlmock.NewResult(0, 1), "place")
		assert.NoError(t, err)
	})

	t.Run("zero rows map to ErrNotFound with entity name", func(t *testing.T) {
		err := CheckRowsAffected(sqlmock.NewResult(0, 0), "place")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Contains(t, err.Error(), "place")
	})

	t.Run("nil result errors", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, "place"))
	})
}
