package service

import (
	"context"

	"github.com/MKhiriev/go-tree-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncCoordinator is the only entry point UI event handlers use to read and
// write trees on a device. It routes every operation between the local cache
// and the remote store according to the current connectivity state.
type SyncCoordinator interface {
	// Create stores a new tree remotely and caches the stored record.
	// The age is derived from the planted date when one is given.
	// Offline it fails with ErrOfflineUnavailable and writes nothing; a name
	// clash fails with ErrDuplicateTree; remote failures fail with
	// ErrTransient. The local cache is only written after the remote store
	// accepted the tree.
	Create(ctx context.Context, tree models.Tree) (models.Tree, error)

	// Get returns the cached tree when present, otherwise fetches it from the
	// remote store and caches it. A cache hit while online also triggers a
	// background comparison with the remote copy that only logs differences.
	Get(ctx context.Context, id int64) (models.Tree, error)

	// Update applies update to the cached tree first and then to the remote
	// one. A tree the remote store does not know is re-created there and the
	// cached record is moved to the id the remote store assigned. Offline
	// the local change is kept and the call succeeds.
	Update(ctx context.Context, id int64, update models.TreeUpdate) error

	// AttachArtifact stores an encoded QR artifact on a tree. It is an Update
	// of the qr_code field only.
	AttachArtifact(ctx context.Context, id int64, artifact string) error

	// List returns every cached tree.
	List(ctx context.Context) ([]models.Tree, error)

	// Sweep pushes every cached tree to the remote store once. Per-tree
	// failures are logged and counted in the report, they never stop the
	// sweep.
	Sweep(ctx context.Context) (models.SweepReport, error)

	// Close waits for background remote checks started by Get.
	Close()
}

// ReconnectSweepJob runs a Sweep every time the device comes back online.
type ReconnectSweepJob interface {
	// Start subscribes to connectivity events and launches the background
	// goroutine. Any previously running job is stopped first.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated, including a sweep in progress.
	Stop()
}
