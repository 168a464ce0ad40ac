// ABOUTME: AgentService gRPC implementation driving agent code over streaming RPCs.
// ABOUTME: One state machine per role: Source read, Processor process, Sink write.

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tidemill/agent-bridge/internal/agent"
	"github.com/tidemill/agent-bridge/internal/codec"
	"github.com/tidemill/agent-bridge/internal/schema"
	pb "github.com/tidemill/agent-bridge/proto/bridge"
)

// Service implements the bridge.AgentService gRPC service for one agent
// instance. The outbound schema registry and inbound schema cache are shared
// across every stream, so a schema announced on one stream is immediately
// usable on another.
type Service struct {
	pb.UnimplementedAgentServiceServer

	agent  any
	codec  *codec.Codec
	cache  *schema.Cache
	logger *slog.Logger
}

// NewService creates the gRPC service wrapping the given agent
// implementation. The agent must implement at least one of agent.Source,
// agent.Processor, or agent.Sink for the corresponding stream to be usable.
func NewService(agentImpl any, logger *slog.Logger) *Service {
	cache := schema.NewCache()
	return &Service{
		agent:  agentImpl,
		codec:  codec.New(schema.NewRegistry(), cache),
		cache:  cache,
		logger: logger,
	}
}

// AgentInfo returns the agent's free-form status data as a JSON blob.
// Agents without an AgentInfo hook report an empty object.
func (s *Service) AgentInfo(ctx context.Context, _ *pb.InfoRequest) (*pb.InfoResponse, error) {
	info := map[string]any{}
	if provider, ok := s.agent.(agent.InfoProvider); ok {
		provided, err := provider.AgentInfo()
		if err != nil {
			return nil, status.Errorf(codes.Internal, "agent info: %v", err)
		}
		if provided != nil {
			info = provided
		}
	}

	data, err := json.Marshal(info)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding agent info: %v", err)
	}
	return &pb.InfoResponse{JsonInfo: string(data)}, nil
}

// Read drives a Source agent. Two loops run concurrently over the stream:
// the emit loop repeatedly calls Source.Read and streams announcements and
// record batches; the ack loop consumes commit and permanent-failure
// messages from the peer. They terminate together: peer EOF ends the stream
// normally, an ack-hook error becomes the stream's terminal error, and
// either way the emit loop stops at its next suspension point.
func (s *Service) Read(stream pb.AgentService_ReadServer) error {
	source, ok := s.agent.(agent.Source)
	if !ok {
		return status.Error(codes.FailedPrecondition, "agent does not implement Source")
	}

	tracker := NewTracker()
	defer tracker.Release()

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	// Ack loop. The buffered channel keeps its result available for the
	// emit loop even after cancellation unblocks a pending Read.
	ackDone := make(chan error, 1)
	go func() {
		ackDone <- s.handleSourceRequests(ctx, stream, tracker)
		cancel()
	}()

	for {
		select {
		case err := <-ackDone:
			return err
		default:
		}

		batch, err := source.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return <-ackDone
			}
			return status.Errorf(codes.Internal, "source read: %v", err)
		}
		if len(batch) == 0 {
			continue
		}

		wireRecords := make([]*pb.Record, 0, len(batch))
		for _, rec := range batch {
			announcements, wireRec, err := s.codec.ToWire(rec)
			if err != nil {
				return status.Errorf(codes.Internal, "encoding source record: %v", err)
			}
			for _, announcement := range announcements {
				if err := stream.Send(&pb.SourceResponse{Schema: announcement}); err != nil {
					return err
				}
			}
			wireRec.RecordId = tracker.Track(rec)
			wireRecords = append(wireRecords, wireRec)
		}
		if err := stream.Send(&pb.SourceResponse{Records: wireRecords}); err != nil {
			return err
		}
		s.logger.Debug("emitted source batch", "records", len(wireRecords), "in_flight", tracker.Len())
	}
}

// handleSourceRequests consumes acknowledgment messages from the peer.
// Unknown record ids are silently ignored. A hook error is returned as the
// stream's terminal error.
func (s *Service) handleSourceRequests(ctx context.Context, stream pb.AgentService_ReadServer, tracker *Tracker) error {
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}

		for _, id := range req.GetCommittedRecords() {
			rec, ok := tracker.Resolve(id)
			if !ok {
				continue
			}
			if committer, hasHook := s.agent.(agent.Committer); hasHook {
				if err := committer.Commit(ctx, rec); err != nil {
					return status.Errorf(codes.Internal, "commit hook: %v", err)
				}
			}
			s.logger.Debug("record committed", "record_id", id)
		}

		if failure := req.GetPermanentFailure(); failure != nil {
			rec, ok := tracker.Resolve(failure.GetRecordId())
			if !ok {
				continue
			}
			cause := errors.New(failure.GetErrorMessage())
			handler, hasHook := s.agent.(agent.FailureHandler)
			if !hasHook {
				// Without a handler a rejected record has nowhere to go;
				// the failure terminates the stream.
				return status.Errorf(codes.Internal, "record %d permanently failed: %v", failure.GetRecordId(), cause)
			}
			if err := handler.PermanentFailure(ctx, rec, cause); err != nil {
				return status.Errorf(codes.Internal, "permanent failure hook: %v", err)
			}
			s.logger.Debug("record permanently failed", "record_id", failure.GetRecordId(), "error", failure.GetErrorMessage())
		}
	}
}

// Process drives a Processor agent. Records are handled sequentially per
// stream; a failure while decoding, processing, or encoding one record is
// reported in that record's result and never aborts the stream.
func (s *Service) Process(stream pb.AgentService_ProcessServer) error {
	processor, ok := s.agent.(agent.Processor)
	if !ok {
		return status.Error(codes.FailedPrecondition, "agent does not implement Processor")
	}

	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}

		if announcement := req.GetSchema(); announcement != nil {
			if err := s.cache.Put(announcement.GetSchemaId(), announcement.GetValue()); err != nil {
				return status.Errorf(codes.InvalidArgument, "schema announcement: %v", err)
			}
		}

		for _, wireRec := range req.GetRecords() {
			result, err := s.processRecord(ctx, processor, stream, wireRec)
			if err != nil {
				return err
			}
			if err := stream.Send(&pb.ProcessorResponse{Results: []*pb.ProcessorResult{result}}); err != nil {
				return err
			}
		}
	}
}

// processRecord runs one record through the processor and marshals its
// outputs, emitting schema announcements as they are produced. The returned
// error is a stream-level send failure; every agent-level failure lands in
// the result's error field instead.
func (s *Service) processRecord(ctx context.Context, processor agent.Processor, stream pb.AgentService_ProcessServer, wireRec *pb.Record) (*pb.ProcessorResult, error) {
	result := &pb.ProcessorResult{RecordId: wireRec.GetRecordId()}

	rec, err := s.codec.FromWire(wireRec)
	if err != nil {
		return failResult(result, err), nil
	}
	outputs, err := processor.Process(ctx, rec)
	if err != nil {
		s.logger.Debug("processor failed record", "record_id", result.RecordId, "error", err)
		return failResult(result, err), nil
	}

	for _, out := range outputs {
		announcements, wireOut, err := s.codec.ToWire(out)
		if err != nil {
			return failResult(result, err), nil
		}
		for _, announcement := range announcements {
			if sendErr := stream.Send(&pb.ProcessorResponse{Schema: announcement}); sendErr != nil {
				return nil, sendErr
			}
		}
		result.Records = append(result.Records, wireOut)
	}
	return result, nil
}

// failResult records a per-record error on the result.
func failResult(result *pb.ProcessorResult, err error) *pb.ProcessorResult {
	msg := err.Error()
	result.Error = &msg
	return result
}

// Write drives a Sink agent: at most one record per request, one response
// per record echoing the peer-assigned id. As with Process, a per-record
// failure is reported in the response and never aborts the stream.
func (s *Service) Write(stream pb.AgentService_WriteServer) error {
	sink, ok := s.agent.(agent.Sink)
	if !ok {
		return status.Error(codes.FailedPrecondition, "agent does not implement Sink")
	}

	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}

		if announcement := req.GetSchema(); announcement != nil {
			if err := s.cache.Put(announcement.GetSchemaId(), announcement.GetValue()); err != nil {
				return status.Errorf(codes.InvalidArgument, "schema announcement: %v", err)
			}
		}

		if wireRec := req.GetRecord(); wireRec != nil {
			response := &pb.SinkResponse{RecordId: wireRec.GetRecordId()}
			if err := s.writeRecord(ctx, sink, wireRec); err != nil {
				msg := err.Error()
				response.Error = &msg
				s.logger.Debug("sink failed record", "record_id", response.RecordId, "error", err)
			}
			if err := stream.Send(response); err != nil {
				return err
			}
		}
	}
}

// writeRecord decodes and writes one record; any failure is local to it.
func (s *Service) writeRecord(ctx context.Context, sink agent.Sink, wireRec *pb.Record) error {
	rec, err := s.codec.FromWire(wireRec)
	if err != nil {
		return err
	}
	return sink.Write(ctx, rec)
}

// TopicProducerRecords is reserved for agent-initiated topic writes. The
// stream is drained and closed cleanly.
func (s *Service) TopicProducerRecords(stream pb.AgentService_TopicProducerRecordsServer) error {
	for {
		if _, err := stream.Recv(); err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}
	}
}
