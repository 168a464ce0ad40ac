// Package agent defines the interfaces agent business logic implements and
// the registry that makes implementations selectable by name.
//
// # Roles
//
// An agent implements at least one role interface:
//
//   - Source: produces record batches via a blocking Read
//   - Processor: transforms one record into zero or more outputs
//   - Sink: writes records to an external system
//   - Service: runs a standalone Main for the process lifetime
//
// # Lifecycle hooks
//
// Everything beyond the role is opt-in. The runtime type-asserts for
// Initializer, Starter, Closer, InfoProvider, Committer, and FailureHandler
// and calls whichever hooks the agent implements. An agent that implements
// none of them still works.
//
// # Registration
//
// Implementations register a factory, usually from init:
//
//	func init() {
//		agent.Register("word-counter", func() any { return &WordCounter{} })
//	}
//
// Configuration then selects the implementation with agent.name.
package agent
