package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/models"
)

func newTestRepo(t *testing.T) (*treeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewTreeRepository(newDBFromSQL(db), logger.Nop()).(*treeRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func TestTreeRepository_FindByNamesCI(t *testing.T) {
	stored := oakTree()
	stored.CreatedAt = &fixedNow
	stored.UpdatedAt = &fixedNow

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.Tree
		wantErr error
	}{
		{
			name: "match on folded keys",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE (common_name_key = $1 OR scientific_name_key = $2)")).
					WithArgs("oak", "unknown").
					WillReturnRows(treeRows(stored))
			},
			want: stored,
		},
		{
			name: "no match",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE")).
					WithArgs("oak", "unknown").
					WillReturnRows(treeRows())
			},
			wantErr: ErrTreeNotFound,
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE")).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			tt.setup(mock)

			got, err := repo.FindByNamesCI(testContext(), "OAK", "Unknown")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.Benefits, got.Benefits)
				assert.Nil(t, got.QRCode)
				require.NotNil(t, got.CreatedAt)
				assert.True(t, fixedNow.Equal(*got.CreatedAt))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTreeRepository_AllocateID_Query(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(allocateTreeID)).
		WillReturnRows(sqlmock.NewRows([]string{"next_id"}).AddRow(int64(8)))

	id, err := repo.AllocateID(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_AllocateID_Error(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(allocateTreeID)).WillReturnError(errors.New("boom"))

	_, err := repo.AllocateID(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// The allocation query is plain SQL, so its arithmetic is checked against a
// real SQLite database.
func TestTreeRepository_AllocateID_MaxPlusOne(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewTreeRepository(db, logger.Nop())
	cache := NewLocalTreeRepository(db, logger.Nop())
	ctx := testContext()

	id, err := repo.AllocateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "empty store allocates 1")

	for _, existing := range []int64{1, 3, 7} {
		tree := oakTree()
		tree.ID = existing
		require.NoError(t, cache.Put(ctx, tree))
	}

	id, err = repo.AllocateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id, "gaps are not reused")
}

func TestTreeRepository_Insert(t *testing.T) {
	t.Run("stamps timestamps", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		tree := oakTree()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trees")).
			WithArgs(
				int64(5), "Oak", "oak", "Quercus robur", "quercus robur", "by the gate",
				`["shade","oxygen"]`, `[]`, 2, "2022-06-14", "Healthy", "Ann", nil,
				fixedNow, fixedNow,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Insert(testContext(), tree)
		require.NoError(t, err)
		require.NotNil(t, got.CreatedAt)
		require.NotNil(t, got.UpdatedAt)
		assert.Equal(t, fixedNow, *got.CreatedAt)
		assert.Equal(t, int64(5), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("primary key collision is an allocation race", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trees")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "trees_pkey"})

		_, err := repo.Insert(testContext(), oakTree())
		assert.ErrorIs(t, err, ErrIDAllocationRace)
	})

	t.Run("other failure", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trees")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})

		_, err := repo.Insert(testContext(), oakTree())
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrIDAllocationRace)
	})

	t.Run("no rows affected", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trees")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Insert(testContext(), oakTree())
		assert.ErrorIs(t, err, ErrTreeNotSaved)
	})
}

func TestTreeRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		stored := oakTree()
		stored.QRCode = strPtr("data:image/png;base64,AAA")

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE tree_id = $1")).
			WithArgs(int64(5)).
			WillReturnRows(treeRows(stored))

		got, err := repo.Get(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE tree_id = $1")).
			WithArgs(int64(404)).
			WillReturnRows(treeRows())

		_, err := repo.Get(testContext(), 404)
		assert.ErrorIs(t, err, ErrTreeNotFound)
	})
}

func TestTreeRepository_Update(t *testing.T) {
	t.Run("partial update returns stored record", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		updated := oakTree()
		updated.QRCode = strPtr("qr")
		updated.UpdatedAt = &fixedNow

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE trees SET qr_code = $1, updated_at = $2 WHERE tree_id = $3 RETURNING")).
			WithArgs("qr", fixedNow, int64(5)).
			WillReturnRows(treeRows(updated))

		got, err := repo.Update(testContext(), 5, models.TreeUpdate{QRCode: strPtr("qr")})
		require.NoError(t, err)
		require.NotNil(t, got.QRCode)
		assert.Equal(t, "qr", *got.QRCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record is not created", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE trees SET")).
			WillReturnRows(treeRows())

		_, err := repo.Update(testContext(), 9, models.TreeUpdate{QRCode: strPtr("qr")})
		assert.ErrorIs(t, err, ErrTreeNotFound)
	})
}

func TestTreeRepository_Delete(t *testing.T) {
	t.Run("returns deleted record", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM trees WHERE tree_id = $1 RETURNING")).
			WithArgs(int64(5)).
			WillReturnRows(treeRows(oakTree()))

		got, err := repo.Delete(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Oak", got.CommonName)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM trees")).
			WillReturnRows(treeRows())

		_, err := repo.Delete(testContext(), 5)
		assert.ErrorIs(t, err, ErrTreeNotFound)
	})
}

func TestTreeRepository_ListAll(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		first, second := oakTree(), oakTree()
		first.ID, second.ID = 9, 4

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees ORDER BY tree_id DESC")).
			WillReturnRows(treeRows(first, second))

		got, err := repo.ListAll(testContext())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(9), got[0].ID)
		assert.Equal(t, int64(4), got[1].ID)
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees ORDER BY")).WillReturnRows(treeRows())

		got, err := repo.ListAll(testContext())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees ORDER BY")).
			WillReturnRows(treeRows(oakTree()).RowError(0, errors.New("broken row")))

		_, err := repo.ListAll(testContext())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}

func TestTreeRepository_TemporaryFailures(t *testing.T) {
	t.Run("serialization failure is temporary", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

		_, err := repo.Get(testContext(), 5)
		assert.ErrorIs(t, err, ErrTemporary)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("syntax error is final", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trees WHERE")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SyntaxError})

		_, err := repo.Get(testContext(), 5)
		assert.NotErrorIs(t, err, ErrTemporary)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
