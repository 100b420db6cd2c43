package store

import "context"

// Filters matches records whose columns equal the given values.
type Filters map[string]any

// Patch is a partial column set applied by an update.
type Patch map[string]any

// Client is the persistence-service contract the console consumes. Each
// collection offers filtered reads ordered newest-first and row-level writes.
// Implementations live behind this seam so the moderation core never sees the
// concrete store.
type Client interface {
	// List reads all records matching filters into dest, a pointer to a
	// slice of the collection's record type. newestFirst orders by
	// created_at descending.
	List(ctx context.Context, collection string, filters Filters, newestFirst bool, dest any) error

	// Update applies patch to the single record with the given id.
	Update(ctx context.Context, collection string, id string, patch Patch) error

	// UpdateWhere applies patch to every record matching filters.
	UpdateWhere(ctx context.Context, collection string, filters Filters, patch Patch) error

	// Insert writes one new record.
	Insert(ctx context.Context, collection string, record any) error

	// Delete removes every record matching filters. Implementations must
	// refuse an empty filter set.
	Delete(ctx context.Context, collection string, filters Filters) error
}
