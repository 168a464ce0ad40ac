// ABOUTME: Capability interfaces implemented by agent business logic.
// ABOUTME: Role interfaces are required; lifecycle hooks are opt-in via type assertion.

package agent

import (
	"context"

	"github.com/tidemill/agent-bridge/internal/record"
)

// Context gives agent implementations access to runtime facilities outside
// their own configuration.
type Context interface {
	// PersistentStateDirectory returns the path of the agent's persistent
	// disk, or "" when no disk is configured.
	PersistentStateDirectory() string
}

// Source produces records for the pipeline.
//
// Read blocks until records are available and returns them as a batch. An
// empty batch is valid and simply polls again. Read runs on its own
// goroutine, so blocking never stalls protocol I/O.
type Source interface {
	Read(ctx context.Context) ([]record.Record, error)
}

// Processor transforms one record into zero or more output records.
// A returned error is reported to the peer for that record only; it never
// terminates the stream.
type Processor interface {
	Process(ctx context.Context, rec record.Record) ([]record.Record, error)
}

// Sink writes records to an external system. A returned error is reported
// to the peer for that record only.
type Sink interface {
	Write(ctx context.Context, rec record.Record) error
}

// Service is a standalone agent whose Main runs for the lifetime of the
// process. A Main that returns an error is treated as an unrecoverable
// process failure, not a stream-level error.
type Service interface {
	Main(ctx context.Context) error
}

// Initializer is implemented by agents that need their configuration before
// the server starts.
type Initializer interface {
	Init(configuration map[string]any, ctx Context) error
}

// Starter is implemented by agents with startup work.
type Starter interface {
	Start(ctx context.Context) error
}

// Closer is implemented by agents that hold resources to release on
// shutdown.
type Closer interface {
	Close() error
}

// InfoProvider is implemented by agents that expose free-form status data
// through the info RPC.
type InfoProvider interface {
	AgentInfo() (map[string]any, error)
}

// Committer is implemented by sources that want to know when the peer has
// durably handled a record they emitted.
type Committer interface {
	Commit(ctx context.Context, rec record.Record) error
}

// FailureHandler is implemented by sources that want to know when the peer
// has permanently rejected a record, for example to divert it to a dead
// letter queue.
type FailureHandler interface {
	PermanentFailure(ctx context.Context, rec record.Record, cause error) error
}
