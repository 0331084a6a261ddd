package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/silhouette-pose-mcp/internal/config"
	"github.com/ironsheep/silhouette-pose-mcp/internal/monitoring"
	"github.com/ironsheep/silhouette-pose-mcp/internal/pose"
	"github.com/ironsheep/silhouette-pose-mcp/internal/server"
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
			fmt.Printf("silhouette-pose-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Silhouette Pose MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Pose tuning: %+v", cfg.Pose)
	} else {
		// Per-round search traces are debug output.
		monitoring.SetLogger(nil)
	}

	opts, err := cfg.PoseOptions()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	srv := server.New(opts)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("silhouette-pose-mcp - MCP server for silhouette orientation estimation")
	fmt.Println()
	fmt.Println("Usage: silhouette-pose-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from .env):")
	fmt.Printf("  %s=debug       Enable debug logging\n", config.EnvLogLevel)
	fmt.Printf("  %s=<file>         YAML configuration file\n", config.EnvConfigFile)
	fmt.Printf("  %s=<n>               Angles sampled per search round (default 10)\n", config.EnvSamples)
	fmt.Printf("  %s=<n>            Coarse-to-fine rounds (default 3)\n", config.EnvIterations)
	fmt.Printf("  %s=<n>        Initial steps searched past 180 degrees (default 1)\n", config.EnvOverscanSteps)
	fmt.Printf("  %s=<n>        Edge angles ignored when picking a peak (default 1)\n", config.EnvEdgeExclusion)
	fmt.Printf("  %s=<1-255>          Binarization cutoff (default %d)\n", config.EnvThreshold, pose.DefaultThreshold)
	fmt.Printf("  %s=<n>             Reject larger silhouettes, 0 disables (default %d)\n", config.EnvMaxPixels, pose.DefaultOptions().MaxPixels)
	fmt.Printf("  %s=<name>            Rotation backend: %v\n", config.EnvRotator, pose.RotatorNames())
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
