// ABOUTME: Entry point for the agent-bridge server
// ABOUTME: Hosts a registered agent implementation behind the AgentService gRPC surface

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/tidemill/agent-bridge/internal/agent"
	"github.com/tidemill/agent-bridge/internal/config"
	"github.com/tidemill/agent-bridge/internal/server"
)

var version = "dev"

const banner = `
                          _        _          _     _
   __ _  __ _  ___ _ __ | |_     | |__  _ __(_) __| | __ _  ___
  / _' |/ _' |/ _ \ '_ \| __|____| '_ \| '__| |/ _' |/ _' |/ _ \
 | (_| | (_| |  __/ | | | ||_____| |_) | |  | | (_| | (_| |  __/
  \__,_|\__, |\___|_| |_|\__|    |_.__/|_|  |_|\__,_|\__, |\___|
        |___/                                        |___/
`

// getConfigPath returns the path to the bridge config file.
// Priority: BRIDGE_CONFIG env var > XDG_CONFIG_HOME/agent-bridge/config.yaml > ~/.config/agent-bridge/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("BRIDGE_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "agent-bridge", "config.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: agent-bridge <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve      Start the bridge server")
		fmt.Println("  validate   Check the config file and exit")
		fmt.Println("  agents     List registered agent implementations")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "validate":
		err = runValidate()
	case "agents":
		err = runAgents()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config: %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("gRPC:   %s\n", cfg.Server.GRPCAddr)
	green.Print("    ▶ ")
	fmt.Printf("Agent:  %s\n", cfg.Agent.Name)
	fmt.Println()

	logger.Info("starting agent-bridge",
		"config", configPath,
		"grpc_addr", cfg.Server.GRPCAddr,
		"agent", cfg.Agent.Name,
	)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.Run(ctx)
}

func runValidate() error {
	configPath := getConfigPath()
	if _, err := config.Load(configPath); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", configPath)
	return nil
}

func runAgents() error {
	names := agent.Names()
	if len(names) == 0 {
		fmt.Println("No agent implementations registered")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
