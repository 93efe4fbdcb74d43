package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/models"
)

// treeRepository is the PostgreSQL-backed implementation of
// [TreeRepository]. Every public method obtains a context-scoped logger via
// [logger.FromContext] so database failures are traced with the request's
// trace id.
type treeRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTreeRepository constructs a [TreeRepository] backed by db.
func NewTreeRepository(db *DB, logger *logger.Logger) TreeRepository {
	return &treeRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// FindByNamesCI looks a tree up by the case-folded name keys. Either name
// matching is enough; the lowest id wins when several trees match.
func (r *treeRepository) FindByNamesCI(ctx context.Context, commonName, scientificName string) (models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByNamesQuery(commonName, scientificName)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.FindByNamesCI").Msg("failed to create query")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tree, err := scanTree(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrTreeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "treeRepository.FindByNamesCI").
			Str("common_name", commonName).
			Str("scientific_name", scientificName).
			Msg("failed to look up tree by names")
		return models.Tree{}, r.dbError(ErrExecutingQuery, err)
	}

	return tree, nil
}

// AllocateID returns the next free tree id. The value is not reserved: two
// concurrent callers may get the same id, and the slower Insert then fails
// with ErrIDAllocationRace.
func (r *treeRepository) AllocateID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	if err := r.DB.QueryRowContext(ctx, allocateTreeID).Scan(&id); err != nil {
		log.Err(err).Str("func", "treeRepository.AllocateID").Msg("failed to allocate tree id")
		return 0, r.dbError(ErrExecutingQuery, err)
	}

	return id, nil
}

// Insert stores tree under tree.ID and stamps both timestamps.
func (r *treeRepository) Insert(ctx context.Context, tree models.Tree) (models.Tree, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	tree.CreatedAt = &now
	tree.UpdatedAt = &now

	query, args, err := buildInsertTreeQuery(tree)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Insert").Msg("failed to create query")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "treeRepository.Insert").
				Int64("tree_id", tree.ID).
				Msg("allocated id already taken")
			return models.Tree{}, fmt.Errorf("%w: %w", ErrIDAllocationRace, err)
		}
		log.Err(err).
			Str("func", "treeRepository.Insert").
			Int64("tree_id", tree.ID).
			Msg("failed to insert tree")
		return models.Tree{}, r.dbError(ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Tree{}, ErrTreeNotSaved
	}

	return tree, nil
}

// Get returns the tree stored under id.
func (r *treeRepository) Get(ctx context.Context, id int64) (models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTreeQuery(id)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Get").Msg("failed to create query")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tree, err := scanTree(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrTreeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Get").Int64("tree_id", id).Msg("failed to get tree")
		return models.Tree{}, r.dbError(ErrExecutingQuery, err)
	}

	return tree, nil
}

// Update applies the non-nil fields of update and returns the stored tree.
// It never creates a record.
func (r *treeRepository) Update(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTreeQuery(id, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Update").Msg("failed to create query")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tree, err := scanTree(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrTreeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Update").Int64("tree_id", id).Msg("failed to update tree")
		return models.Tree{}, r.dbError(ErrExecutingStatement, err)
	}

	return tree, nil
}

// Delete removes the tree stored under id and returns it.
func (r *treeRepository) Delete(ctx context.Context, id int64) (models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTreeQuery(id)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Delete").Msg("failed to create query")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tree, err := scanTree(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrTreeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "treeRepository.Delete").Int64("tree_id", id).Msg("failed to delete tree")
		return models.Tree{}, r.dbError(ErrExecutingStatement, err)
	}

	return tree, nil
}

// ListAll returns every tree, newest id first.
func (r *treeRepository) ListAll(ctx context.Context) ([]models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTreesQuery()
	if err != nil {
		log.Err(err).Str("func", "treeRepository.ListAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.ListAll").Msg("failed to execute query for listing trees")
		return nil, r.dbError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTrees(ctx, rows, "treeRepository.ListAll")
}

// collectTrees drains rows into a non-nil slice.
func collectTrees(ctx context.Context, rows *sql.Rows, funcName string) ([]models.Tree, error) {
	log := logger.FromContext(ctx)

	trees := make([]models.Tree, 0, 50)
	for rows.Next() {
		tree, err := scanTree(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan tree row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		trees = append(trees, tree)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trees, nil
}

// dbError wraps a driver failure with kind. Failures the classifier deems
// retryable are additionally marked with ErrTemporary.
func (r *treeRepository) dbError(kind, err error) error {
	if r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTemporary, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
