package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/logging"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-tools-mcp - MCP server for color parsing and manipulation")
			fmt.Println()
			fmt.Println("Usage: color-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug|info|warn|error    Log level (default warn)\n", logging.EnvLevel)
			fmt.Printf("  %s=<dir>                     Tesseract tessdata directory\n", server.EnvTessdata)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr (stdout is for MCP protocol)
	level, err := logging.ParseLevel(os.Getenv(logging.EnvLevel))
	logger := logging.New(os.Stderr, level)
	logging.SetLogger(logger)
	if err != nil {
		logger.Warn("ignoring log level", slog.Any("error", err))
	}

	server.ServerVersion = Version
	logger.Debug("color MCP server starting",
		slog.String("version", Version),
		slog.String("built", BuildTime),
		slog.String("commit", GitCommit))

	srv := server.New()
	if err := srv.Run(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
