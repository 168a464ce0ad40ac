// Package bridge implements the AgentService gRPC streams that connect a
// pipeline runtime to in-process agent code.
//
// # Overview
//
// The bridge package turns the three agent roles into long-lived streaming
// state machines. Each stream decodes wire records into domain records,
// drives the agent, and encodes the results back, announcing Avro schemas
// the first time they appear.
//
// # Service
//
// Service wraps one agent instance:
//
//	svc := bridge.NewService(agentImpl, logger)
//	pb.RegisterAgentServiceServer(grpcServer, svc)
//
// Stream semantics per role:
//
//   - Read (Source): an emit loop calls Source.Read and streams batches;
//     a concurrent ack loop resolves commits and permanent failures against
//     the in-flight Tracker, so delivery is at-least-once.
//   - Process (Processor): one result per input record, in order. A failure
//     on one record lands in that record's result and never ends the stream.
//   - Write (Sink): one response per record, echoing the peer-assigned id.
//
// # Tracker
//
// Tracker assigns sequential correlation ids to emitted source records and
// holds them until the peer commits or permanently fails each one. Ids are
// never reused within a stream.
package bridge
