package domain

type StorageState int

const (
	StorageUnknown StorageState = iota
	StorageConnected
	StorageNotConfigured
	StorageFailing
)

// StorageStatus is the result of probing the document store.
type StorageStatus struct {
	State       StorageState
	Collections []string
	// Error is a shortened description of the probe failure.
	Error string
}
