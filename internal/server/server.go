// ABOUTME: Server orchestrator wiring the agent, gRPC listener, and lifecycle hooks.
// ABOUTME: Supervises the optional agent main loop; its failure shuts the process down.

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/tidemill/agent-bridge/internal/agent"
	"github.com/tidemill/agent-bridge/internal/bridge"
	"github.com/tidemill/agent-bridge/internal/config"
	pb "github.com/tidemill/agent-bridge/proto/bridge"
)

// Server hosts one agent instance behind the AgentService gRPC surface.
type Server struct {
	config     *config.Config
	agent      any
	grpcServer *grpc.Server
	logger     *slog.Logger

	// instanceID identifies this agent process in logs
	instanceID string
}

// New instantiates the configured agent, applies its environment and Init
// hook, and prepares the gRPC server. The listener is not bound until Run.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	agentImpl, err := agent.New(cfg.Agent.Name)
	if err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	// Environment variables from the agent configuration are applied
	// before Init so the agent sees them during initialization.
	for _, env := range cfg.Agent.Environment {
		logger.Debug("setting environment variable", "key", env.Key)
		if err := os.Setenv(env.Key, env.Value); err != nil {
			return nil, fmt.Errorf("setting environment variable %q: %w", env.Key, err)
		}
	}

	if initializer, ok := agentImpl.(agent.Initializer); ok {
		runtimeCtx := agent.RuntimeContext{StateDir: cfg.Agent.StateDir}
		if err := initializer.Init(cfg.Agent.Configuration, runtimeCtx); err != nil {
			return nil, fmt.Errorf("initializing agent %q: %w", cfg.Agent.Name, err)
		}
	}

	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    15 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)

	s := &Server{
		config:     cfg,
		agent:      agentImpl,
		grpcServer: grpcServer,
		logger:     logger.With("component", "server"),
		instanceID: uuid.NewString(),
	}

	service := bridge.NewService(agentImpl, logger.With("component", "bridge"))
	pb.RegisterAgentServiceServer(grpcServer, service)

	return s, nil
}

// Run starts the agent and the gRPC server and blocks until the context is
// canceled or a fatal error occurs. A failure of the agent's Main loop is
// treated as an unrecoverable process error: Run shuts everything down and
// returns the error.
func (s *Server) Run(ctx context.Context) error {
	if starter, ok := s.agent.(agent.Starter); ok {
		if err := starter.Start(ctx); err != nil {
			return fmt.Errorf("starting agent: %w", err)
		}
	}

	ln, err := net.Listen("tcp", s.config.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listening on gRPC address: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		s.logger.Info("gRPC server listening",
			"addr", ln.Addr().String(),
			"agent", s.config.Agent.Name,
			"instance_id", s.instanceID,
		)
		if err := s.grpcServer.Serve(ln); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	s.superviseMain(ctx, errCh)

	serverErr := s.waitForShutdownSignal(ctx, errCh)
	shutdownErr := s.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// superviseMain runs the agent's long-running Main hook, if defined, on its
// own goroutine. An error from Main lands on errCh, which triggers orderly
// shutdown and a non-zero process exit.
func (s *Server) superviseMain(ctx context.Context, errCh chan error) {
	svc, ok := s.agent.(agent.Service)
	if !ok {
		return
	}
	go func() {
		s.logger.Info("starting agent main loop")
		if err := svc.Main(ctx); err != nil {
			s.logger.Error("agent main loop failed", "error", err)
			errCh <- fmt.Errorf("agent main: %w", err)
		}
	}()
}

// waitForShutdownSignal waits for context cancellation or a fatal error.
func (s *Server) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.drainErrors(errCh)
		return err
	}
}

// drainErrors drains any remaining errors from the channel.
func (s *Server) drainErrors(errCh chan error) {
	select {
	case additionalErr := <-errCh:
		s.logger.Error("additional server error", "error", additionalErr)
	default:
	}
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the run context is already
// canceled.
func (s *Server) gracefulShutdown() error {
	timeout := s.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops the gRPC server, waiting for in-flight streams up to the
// context deadline, then runs the agent's Close hook.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpcServer.Stop()
	}

	if closer, ok := s.agent.(agent.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("closing agent: %w", err)
		}
	}
	return nil
}
