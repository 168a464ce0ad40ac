// ABOUTME: Contract tests for the gRPC service surface to detect breaking API changes.
// ABOUTME: Validates that expected methods and streams exist in generated proto code.

package contract

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/tidemill/agent-bridge/proto/bridge"
)

// expectedServices defines the contract for our gRPC API surface.
// If a method or stream is removed or renamed, these tests will fail,
// catching breaking changes before they reach production.
var expectedServices = map[string]struct {
	methods []string
	streams []string
}{
	"bridge.AgentService": {
		methods: []string{"AgentInfo"},
		streams: []string{
			"Read",
			"Process",
			"Write",
			"TopicProducerRecords",
		},
	},
}

// TestProtoSurface verifies that all expected gRPC methods and streams exist
// in the generated protobuf code. This acts as a contract test to prevent
// accidental breaking changes to the API surface.
func TestProtoSurface(t *testing.T) {
	serviceDescs := map[string]grpc.ServiceDesc{
		"bridge.AgentService": bridge.AgentService_ServiceDesc,
	}

	for serviceName, expected := range expectedServices {
		t.Run(serviceName, func(t *testing.T) {
			desc, exists := serviceDescs[serviceName]
			if !assert.True(t, exists, "service %s should be registered", serviceName) {
				return
			}

			assert.Equal(t, serviceName, desc.ServiceName, "service name should match")

			actualMethods := make(map[string]bool)
			for _, m := range desc.Methods {
				actualMethods[m.MethodName] = true
			}

			actualStreams := make(map[string]bool)
			for _, s := range desc.Streams {
				actualStreams[s.StreamName] = true
			}

			for _, method := range expected.methods {
				fullName := fmt.Sprintf("/%s/%s", serviceName, method)
				assert.True(t, actualMethods[method],
					"method %s should exist in service %s", fullName, serviceName)
			}

			for _, stream := range expected.streams {
				fullName := fmt.Sprintf("/%s/%s", serviceName, stream)
				assert.True(t, actualStreams[stream],
					"stream %s should exist in service %s", fullName, serviceName)
			}

			// Report any extra endpoints not in the contract (informational, not failure)
			for method := range actualMethods {
				if !slices.Contains(expected.methods, method) {
					t.Logf("INFO: extra method %s/%s not in contract (consider adding)", serviceName, method)
				}
			}
			for stream := range actualStreams {
				if !slices.Contains(expected.streams, stream) {
					t.Logf("INFO: extra stream %s/%s not in contract (consider adding)", serviceName, stream)
				}
			}
		})
	}
}

// TestStreamDirections verifies that every stream is bidirectional: the
// protocol multiplexes commands and results over single streams per role.
func TestStreamDirections(t *testing.T) {
	for _, s := range bridge.AgentService_ServiceDesc.Streams {
		assert.True(t, s.ServerStreams, "stream %s should be server-streaming", s.StreamName)
		assert.True(t, s.ClientStreams, "stream %s should be client-streaming", s.StreamName)
	}
}
