//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"escape-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, nil, infra.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), nil, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"exclusion violation", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, nil, infra.KindConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, nil, infra.KindDBFailure},
		{"plain error", errors.New("connection reset"), nil, infra.KindDBFailure},
		{"explicit kind wins", errors.New("no row updated"), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
		{"nil error", nil, []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("load booking", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "load booking")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	t.Run("kind survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("create booking: %w", infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23P01"}))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindConflict))
	})
}
