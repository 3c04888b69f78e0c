package models

import "github.com/google/uuid"

// Viewer is the identified caller of a request, owned by the external auth
// subsystem and passed into the catalog core as a read-only reference.
// A nil *Viewer means anonymous access; the two cases are threaded explicitly
// through every read and write signature rather than held in global state.
type Viewer struct {
	ID       uuid.UUID
	Username string
}
