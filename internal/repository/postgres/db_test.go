package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, EnsureSchema(context.Background(), db))

	mock.ExpectExec(`CREATE EXTENSION`).WillReturnError(errors.New("permission denied"))
	err = EnsureSchema(context.Background(), db)
	require.ErrorContains(t, err, "ensure schema")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaDeclaresOverlapConstraint(t *testing.T) {
	require.Contains(t, schemaSQL, "EXCLUDE USING gist")
	require.Contains(t, schemaSQL, "WHERE (status = 'scheduled')")
}
