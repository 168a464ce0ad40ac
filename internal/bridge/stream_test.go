// ABOUTME: Stream tests over a real gRPC connection and protobuf serialization.
// ABOUTME: Uses a loopback server so records travel the actual wire path.

package bridge

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tidemill/agent-bridge/internal/record"
	pb "github.com/tidemill/agent-bridge/proto/bridge"
)

// startBridgeServer serves the agent on a loopback listener and returns a
// connected client.
func startBridgeServer(t *testing.T, agentImpl any) pb.AgentServiceClient {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	pb.RegisterAgentServiceServer(srv, NewService(agentImpl, testLogger()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewAgentServiceClient(conn)
}

func TestWriteStreamOverNetwork(t *testing.T) {
	var (
		mu      sync.Mutex
		written []record.Record
	)
	sink := &funcSink{fn: func(_ context.Context, rec record.Record) error {
		if rec.Value() == "bad" {
			return errors.New("disk full")
		}
		mu.Lock()
		written = append(written, rec)
		mu.Unlock()
		return nil
	}}
	client := startBridgeServer(t, sink)

	stream, err := client.Write(t.Context())
	require.NoError(t, err)

	ts := int64(1_700_000_000_000)
	failing := stringRecord(7, "bad")
	failing.Timestamp = &ts
	require.NoError(t, stream.Send(&pb.SinkRequest{Record: failing}))

	resp, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.GetRecordId())
	assert.Equal(t, "disk full", resp.GetError())

	passing := stringRecord(8, "fine")
	passing.Timestamp = &ts
	require.NoError(t, stream.Send(&pb.SinkRequest{Record: passing}))

	resp, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.GetRecordId())
	assert.Nil(t, resp.Error)

	require.NoError(t, stream.CloseSend())
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, written, 1)
	gotTS, ok := written[0].Timestamp()
	require.True(t, ok, "timestamp must survive the wire")
	assert.Equal(t, ts, gotTS)
}

func TestProcessStreamOverNetwork(t *testing.T) {
	processor := &funcProcessor{fn: func(_ context.Context, rec record.Record) ([]record.Record, error) {
		if rec.Value() == "bad" {
			return nil, errors.New("cannot transform")
		}
		return []record.Record{record.New(rec.Value().(string) + "-out")}, nil
	}}
	client := startBridgeServer(t, processor)

	stream, err := client.Process(t.Context())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&pb.ProcessorRequest{
		Records: []*pb.Record{stringRecord(1, "bad"), stringRecord(2, "good")},
	}))

	resp, err := stream.Recv()
	require.NoError(t, err)
	failed := resp.GetResults()[0]
	assert.Equal(t, int64(1), failed.GetRecordId())
	assert.Equal(t, "cannot transform", failed.GetError())
	assert.Empty(t, failed.GetRecords())

	resp, err = stream.Recv()
	require.NoError(t, err)
	succeeded := resp.GetResults()[0]
	assert.Equal(t, int64(2), succeeded.GetRecordId())
	assert.Nil(t, succeeded.Error)
	require.Len(t, succeeded.GetRecords(), 1)
	assert.Equal(t, "good-out", succeeded.GetRecords()[0].GetValue().GetStringValue())

	require.NoError(t, stream.CloseSend())
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestAgentInfoOverNetwork(t *testing.T) {
	client := startBridgeServer(t, infoAgent{})

	resp, err := client.AgentInfo(t.Context(), &pb.InfoRequest{})
	require.NoError(t, err)
	assert.Contains(t, resp.GetJsonInfo(), `"kind":"test"`)
}
