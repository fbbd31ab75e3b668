package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and clients return these
// (optionally wrapped) so services can translate them into domain errors with
// the right HTTP status.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: trade/cargo does not exist in the store
// - ErrConflict: natural key or etrmId unique index rejected the write
// - ErrUnavailable: collaborator service temporarily unreachable
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
