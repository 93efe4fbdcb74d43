package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/adapter"
	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/internal/validators"
	"github.com/MKhiriev/go-tree-keeper/models"
)

type syncCoordinator struct {
	localTrees store.LocalTreeRepository
	server     adapter.ServerAdapter
	monitor    connectivity.Monitor
	validator  validators.Validator

	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewSyncCoordinator wires a coordinator over the device cache, the remote
// store adapter and a connectivity monitor. It is safe for concurrent use.
func NewSyncCoordinator(storages *store.ClientStorages, server adapter.ServerAdapter, monitor connectivity.Monitor, logger *logger.Logger) SyncCoordinator {
	return &syncCoordinator{
		localTrees: storages.TreeRepository,
		server:     server,
		monitor:    monitor,
		validator:  validators.NewTreeValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

// Create implements [SyncCoordinator].
func (c *syncCoordinator) Create(ctx context.Context, tree models.Tree) (models.Tree, error) {
	tree.ID = 0
	tree.CreatedAt = nil
	tree.UpdatedAt = nil
	tree.ApplyDefaults()
	if err := c.validator.Validate(ctx, tree); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}
	if err := utils.RecomputeAge(&tree, c.now()); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	// ids come from the remote allocator only
	if !c.monitor.Online() {
		return models.Tree{}, ErrOfflineUnavailable
	}

	created, err := c.server.CreateTree(ctx, tree)
	if err != nil {
		c.logger.Warn().
			Str("func", "syncCoordinator.Create").
			Str("common_name", tree.CommonName).
			Err(err).
			Msg("remote create failed")
		return models.Tree{}, mapAdapterError(err)
	}

	// the remote store holds the record now; a failed cache write is
	// repaired by the next cache-fill read
	if err = c.localTrees.Put(ctx, created); err != nil {
		c.logger.Err(err).
			Str("func", "syncCoordinator.Create").
			Int64("tree_id", created.ID).
			Msg("failed to cache created tree")
	}

	c.logger.Info().
		Str("func", "syncCoordinator.Create").
		Int64("tree_id", created.ID).
		Msg("tree created")

	return created, nil
}

// Get implements [SyncCoordinator].
func (c *syncCoordinator) Get(ctx context.Context, id int64) (models.Tree, error) {
	cached, err := c.localTrees.Get(ctx, id)
	if err == nil {
		if c.monitor.Online() {
			c.goBackground(ctx, func(bgCtx context.Context) {
				c.verifyRemote(bgCtx, cached)
			})
		}
		return cached, nil
	}
	if !errors.Is(err, store.ErrLocalTreeNotFound) {
		return models.Tree{}, fmt.Errorf("error reading cached tree: %w", err)
	}

	if !c.monitor.Online() {
		return models.Tree{}, ErrOfflineUnavailable
	}

	remote, err := c.server.GetTree(ctx, id)
	if err != nil {
		return models.Tree{}, mapAdapterError(err)
	}

	if err = c.localTrees.Put(ctx, remote); err != nil {
		c.logger.Err(err).
			Str("func", "syncCoordinator.Get").
			Int64("tree_id", id).
			Msg("failed to cache fetched tree")
	}

	return remote, nil
}

// Update implements [SyncCoordinator].
func (c *syncCoordinator) Update(ctx context.Context, id int64, update models.TreeUpdate) error {
	if err := c.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	err := c.localTrees.Update(ctx, id, update)
	if errors.Is(err, store.ErrLocalTreeNotFound) {
		return fmt.Errorf("%w: %w", ErrTreeNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error updating cached tree: %w", err)
	}

	if !c.monitor.Online() {
		c.logger.Info().
			Str("func", "syncCoordinator.Update").
			Int64("tree_id", id).
			Msg("offline, update kept locally until reconnect")
		return nil
	}

	_, err = c.server.UpdateTree(ctx, id, update)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return mapAdapterError(err)
	}

	c.logger.Info().
		Str("func", "syncCoordinator.Update").
		Int64("tree_id", id).
		Msg("tree missing remotely, re-creating it")

	return c.recreateRemote(ctx, id, update)
}

// recreateRemote pushes the cached tree id to the remote store as a new
// record, applies update to it and moves the cached copy to the remote id.
//
// A conflict caused by the tree itself (both names equal ignoring case) is
// resolved by adopting the remote record with those names.
func (c *syncCoordinator) recreateRemote(ctx context.Context, id int64, update models.TreeUpdate) error {
	local, err := c.localTrees.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("error reading cached tree: %w", err)
	}

	var remoteID int64
	created, err := c.server.CreateTree(ctx, local)
	switch {
	case err == nil:
		remoteID = created.ID
	case errors.Is(err, adapter.ErrConflict):
		existing, lookupErr := c.server.FindTreeByNames(ctx, local.CommonName, local.ScientificName)
		if lookupErr != nil && !errors.Is(lookupErr, adapter.ErrNotFound) {
			return mapAdapterError(lookupErr)
		}
		if lookupErr != nil || !utils.SameNames(local.CommonName, local.ScientificName, existing.CommonName, existing.ScientificName) {
			return mapAdapterError(err)
		}

		c.logger.Info().
			Str("func", "syncCoordinator.recreateRemote").
			Int64("tree_id", id).
			Int64("remote_tree_id", existing.ID).
			Msg("tree already stored remotely under its own names")
		remoteID = existing.ID
	default:
		return mapAdapterError(err)
	}

	updated, err := c.server.UpdateTree(ctx, remoteID, update)
	if err != nil {
		return mapAdapterError(err)
	}

	local.ID = remoteID
	local.CreatedAt = updated.CreatedAt
	local.UpdatedAt = updated.UpdatedAt
	if err = c.localTrees.Put(ctx, local); err != nil {
		return fmt.Errorf("error caching tree %d: %w", remoteID, err)
	}
	if remoteID != id {
		if err = c.localTrees.Delete(ctx, id); err != nil {
			return fmt.Errorf("error removing cached tree %d after moving it to %d: %w", id, remoteID, err)
		}
		c.logger.Info().
			Str("func", "syncCoordinator.recreateRemote").
			Int64("old_tree_id", id).
			Int64("tree_id", remoteID).
			Msg("cached tree moved to remote id")
	}

	return nil
}

// AttachArtifact implements [SyncCoordinator].
func (c *syncCoordinator) AttachArtifact(ctx context.Context, id int64, artifact string) error {
	return c.Update(ctx, id, models.TreeUpdate{QRCode: &artifact})
}

// List implements [SyncCoordinator].
func (c *syncCoordinator) List(ctx context.Context) ([]models.Tree, error) {
	trees, err := c.localTrees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing cached trees: %w", err)
	}
	return trees, nil
}

// Sweep implements [SyncCoordinator].
//
// Each cached tree gets exactly one remote update attempt. Nothing is
// pulled from the remote store and nothing is retried.
func (c *syncCoordinator) Sweep(ctx context.Context) (models.SweepReport, error) {
	if !c.monitor.Online() {
		return models.SweepReport{}, ErrOfflineUnavailable
	}

	trees, err := c.localTrees.List(ctx)
	if err != nil {
		return models.SweepReport{}, fmt.Errorf("error listing cached trees: %w", err)
	}

	report := models.SweepReport{}
	for _, tree := range trees {
		report.Attempted++
		if _, err := c.server.UpdateTree(ctx, tree.ID, models.FullUpdate(tree)); err != nil {
			report.Failed++
			report.FailedIDs = append(report.FailedIDs, tree.ID)
			c.logger.Warn().
				Str("func", "syncCoordinator.Sweep").
				Int64("tree_id", tree.ID).
				Err(err).
				Msg("failed to push cached tree")
		}
	}

	c.logger.Info().
		Str("func", "syncCoordinator.Sweep").
		Int("attempted", report.Attempted).
		Int("failed", report.Failed).
		Msg("sweep finished")

	return report, nil
}

// Close implements [SyncCoordinator]. Background checks requested after
// Close are skipped.
func (c *syncCoordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.wg.Wait()
}

// goBackground runs fn in a tracked goroutine with a context that keeps the
// caller's values but not its cancellation.
func (c *syncCoordinator) goBackground(ctx context.Context, fn func(context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(bgCtx)
	}()
}

// verifyRemote compares a cached tree with its remote copy and logs any
// divergence. It never writes anything.
func (c *syncCoordinator) verifyRemote(ctx context.Context, cached models.Tree) {
	remote, err := c.server.GetTree(ctx, cached.ID)
	if err != nil {
		c.logger.Debug().
			Str("func", "syncCoordinator.verifyRemote").
			Int64("tree_id", cached.ID).
			Err(err).
			Msg("remote check failed")
		return
	}

	if utils.Fingerprint(cached) != utils.Fingerprint(remote) {
		c.logger.Warn().
			Str("func", "syncCoordinator.verifyRemote").
			Int64("tree_id", cached.ID).
			Msg("cached tree differs from remote copy")
	}
}
