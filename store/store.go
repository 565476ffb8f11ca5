// Package store persists ledger account snapshots.
package store

// Record is the durable form of one account. Transaction history is
// deliberately not persisted; only identity, PIN and balance survive a
// restart.
type Record struct {
	Name    string
	PIN     string
	Balance float64
}

// Store reads and writes full account snapshots. Save replaces whatever
// was saved before; there is no incremental log.
type Store interface {
	// Load returns the last saved snapshot. A store that has never been
	// written loads as an empty snapshot, not an error.
	Load() ([]Record, error)

	// Save overwrites the snapshot with recs.
	Save(recs []Record) error

	// Close releases any resources held by the store.
	Close() error
}
