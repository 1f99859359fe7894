// Package citystore is for city data access and run persistence.
package citystore

import (
	"sync"

	"github.com/cityscope/cityscope/internal/contract"
)

// StoreManagerImpl manages the snapshot and run store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	snapshots    contract.SnapshotStore
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetSnapshotStore returns the city SnapshotStore.
func (mgr *StoreManagerImpl) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

// GetRunStore returns the ranking RunStore.
func (mgr *StoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
