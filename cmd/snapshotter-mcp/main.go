// Command snapshotter-mcp serves the Powerloom Snapshotter Core API as MCP
// tools over stdio, streamable HTTP, or SSE.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/mcpserver"
	"github.com/powerloom/snapshotter-mcp/pkg/snapshottools"
)

const (
	serverName    = "SnapshotterMCP"
	serverVersion = "0.1.0"
)

func main() {
	transport := flag.String("transport", "stdio", "MCP transport: stdio, http, or sse")
	host := flag.String("host", "127.0.0.1", "bind host for the http and sse transports")
	port := flag.Int("port", 8000, "bind port for the http and sse transports")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	configPath := flag.String("config", "", "path to optional YAML configuration file")
	flag.Parse()

	if err := run(*transport, *host, *port, *envFile, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(transport, host string, port int, envFile, configPath string) error {
	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client := bdsapi.NewClient(cfg)

	srv := mcpserver.New(serverName, serverVersion)
	srv.Register(snapshottools.Tools(client).Tools()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	switch transport {
	case "stdio":
		fmt.Fprintln(os.Stderr, "Starting MCP server with STDIO transport")
		return srv.Serve(ctx, os.Stdin, os.Stdout)
	case "http":
		fmt.Fprintf(os.Stderr, "Starting MCP server with HTTP transport on %s\n", addr)
		return srv.ServeHTTP(ctx, addr)
	case "sse":
		fmt.Fprintf(os.Stderr, "Starting MCP server with SSE transport on %s\n", addr)
		return srv.ServeSSE(ctx, addr)
	default:
		return fmt.Errorf("unknown transport %q (want stdio, http, or sse)", transport)
	}
}

// loadConfig builds the upstream configuration: the optional YAML file when
// given, otherwise the environment with the public endpoint as fallback.
func loadConfig(path string) (bdsapi.Config, error) {
	if path == "" {
		return bdsapi.FromEnv(), nil
	}

	return bdsapi.LoadConfig(path)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
