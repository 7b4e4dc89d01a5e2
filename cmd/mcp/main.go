package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-ri-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/aws-ri-doctor/service/logger"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the MCP protocol, logs go to stderr.
	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"aws-ri-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterEC2Tools(s, cfg, log)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
