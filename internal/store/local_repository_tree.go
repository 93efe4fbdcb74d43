package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/models"
)

// localTreeRepository is the SQLite implementation of [LocalTreeRepository].
// Records are keyed by the id the remote store assigned.
type localTreeRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalTreeRepository constructs a [LocalTreeRepository] over the device
// cache database.
func NewLocalTreeRepository(db *DB, logger *logger.Logger) LocalTreeRepository {
	return &localTreeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localTreeRepository) Get(ctx context.Context, id int64) (models.Tree, error) {
	log := logger.FromContext(ctx)

	tree, err := scanTree(r.DB.QueryRowContext(ctx, getLocalTree, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrLocalTreeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Get").Int64("tree_id", id).Msg("failed to read cached tree")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tree, nil
}

// Put upserts tree by id. Names are not checked for duplicates.
func (r *localTreeRepository) Put(ctx context.Context, tree models.Tree) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, putLocalTree,
		tree.ID,
		tree.CommonName,
		tree.ScientificName,
		tree.Description,
		stringList(tree.Benefits),
		stringList(tree.Images),
		tree.Age,
		tree.PlantedDate,
		tree.HealthStatus,
		tree.PlantedBy,
		nullString(tree.QRCode),
		tree.CreatedAt,
		tree.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Put").Int64("tree_id", tree.ID).Msg("failed to cache tree")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTreeRepository) List(ctx context.Context) ([]models.Tree, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listLocalTrees)
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.List").Msg("failed to execute query for listing cached trees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTrees(ctx, rows, "localTreeRepository.List")
}

// Update merges the non-nil fields of update into the cached record inside
// one transaction.
func (r *localTreeRepository) Update(ctx context.Context, id int64, update models.TreeUpdate) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	tree, err := scanTree(tx.QueryRowContext(ctx, getLocalTree, id))
	if errors.Is(err, sql.ErrNoRows) {
		return ErrLocalTreeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Update").Int64("tree_id", id).Msg("failed to read cached tree")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	tree.Apply(update)

	_, err = tx.ExecContext(ctx, updateLocalTree,
		tree.CommonName,
		tree.ScientificName,
		tree.Description,
		stringList(tree.Benefits),
		stringList(tree.Images),
		tree.Age,
		tree.PlantedDate,
		tree.HealthStatus,
		tree.PlantedBy,
		nullString(tree.QRCode),
		id,
	)
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Update").Int64("tree_id", id).Msg("failed to update cached tree")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localTreeRepository.Update").Int64("tree_id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Delete drops the cached record stored under id.
func (r *localTreeRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteLocalTree, id)
	if err != nil {
		log.Err(err).Str("func", "localTreeRepository.Delete").Int64("tree_id", id).Msg("failed to delete cached tree")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLocalTreeNotFound
	}

	return nil
}
