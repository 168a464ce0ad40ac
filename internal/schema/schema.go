// ABOUTME: Schema identity tracking for both directions of the agent protocol.
// ABOUTME: Registry assigns outbound schema ids; Cache remembers peer-announced schemas.

package schema

import (
	"errors"
	"fmt"
	"sync"

	avro "github.com/hamba/avro/v2"
)

// ErrUnknownSchema indicates a value referenced a schema id the peer never
// announced on any stream of this bridge instance.
var ErrUnknownSchema = errors.New("unknown schema id")

// ErrSchemaRedefined indicates the peer re-announced an existing schema id
// with a structurally different definition.
var ErrSchemaRedefined = errors.New("schema id redefined with different schema")

// Registry assigns a stable numeric id to each distinct schema produced by
// this process. Ids are sequential starting at 1 and scoped to the lifetime
// of the bridge instance, shared across all of its streams.
type Registry struct {
	mu   sync.Mutex
	ids  map[string]int32
	next int32
}

// NewRegistry creates an empty outbound schema registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int32)}
}

// GetOrAssign returns the id for the canonical schema string, assigning the
// next sequential id on first sight. announce is true exactly once per
// distinct schema: the caller must emit the schema announcement before any
// value that references the id.
func (r *Registry) GetOrAssign(canonical string) (id int32, announce bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[canonical]; ok {
		return id, false
	}
	r.next++
	r.ids[canonical] = r.next
	return r.next, true
}

// Cache remembers schema definitions announced by the remote peer, keyed by
// the id the peer chose. Shared across all streams of one bridge instance: a
// schema announced on one stream is immediately usable on another.
type Cache struct {
	mu      sync.RWMutex
	schemas map[int32]avro.Schema
}

// NewCache creates an empty inbound schema cache.
func NewCache() *Cache {
	return &Cache{schemas: make(map[int32]avro.Schema)}
}

// Put parses and stores a peer-announced schema definition. Re-announcing an
// id with a structurally equal schema is a no-op; re-announcing it with a
// different definition is a protocol error.
func (c *Cache) Put(id int32, definition []byte) error {
	parsed, err := avro.Parse(string(definition))
	if err != nil {
		return fmt.Errorf("parsing schema %d: %w", id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.schemas[id]; ok {
		if existing.String() != parsed.String() {
			return fmt.Errorf("%w: id %d", ErrSchemaRedefined, id)
		}
		return nil
	}
	c.schemas[id] = parsed
	return nil
}

// Get looks up a peer-announced schema by id. Absence is fatal for the value
// being decoded, not for the stream.
func (c *Cache) Get(id int32) (avro.Schema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.schemas[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSchema, id)
	}
	return s, nil
}
