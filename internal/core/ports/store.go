package ports

import "context"

// Collection keys used with CollectionStore. The names match the storage
// keys of the original point-of-sale installation so existing data loads.
const (
	KeyVisitors  = "playground_kids"
	KeyZones     = "playground_zones"
	KeyParties   = "playground_parties"
	KeyIncidents = "playground_incidents"
)

// CollectionStore persists whole collections as named JSON blobs. Save
// overwrites the entire stored representation; last writer wins.
type CollectionStore interface {
	// Load returns the stored blob for key, or found=false if nothing has
	// been stored under that key yet.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save overwrites the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
