package easel

import (
	"time"

	"github.com/google/uuid"
)

// Document carries the metadata of one open document. The ID is regenerated
// on every NewDocument and travels into exported file names and script logs;
// it is unrelated to layer identities, which are session-local counters.
type Document struct {
	ID      uuid.UUID
	Name    string
	Created time.Time
}

func newDocument(name string) Document {
	if name == "" {
		name = "Untitled"
	}
	return Document{
		ID:      uuid.New(),
		Name:    name,
		Created: time.Now(),
	}
}
