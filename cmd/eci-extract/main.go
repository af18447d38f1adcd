package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rsunkara/eci-extract/internal/config"
	"github.com/rsunkara/eci-extract/internal/export"
	"github.com/rsunkara/eci-extract/internal/extract"
	"github.com/rsunkara/eci-extract/internal/inspect"
	"github.com/rsunkara/eci-extract/internal/mcp"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	if cfg.IsServeMode() {
		// In serve mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		// Reduce log verbosity in serve mode unless debug is enabled
		if !cfg.IsDebug() {
			log.SetOutput(io.Discard)
		}
	} else {
		// The console modes print results on stdout and log to stderr
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// fatal prints the error with a diagnostic trace and exits with code 1
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	debug.PrintStack()
	os.Exit(1)
}

// runExtractMode runs the extraction pipeline and prints the console summary
func runExtractMode(cfg *config.Config) {
	service, err := extract.NewService(cfg)
	if err != nil {
		fatal(err)
	}

	result, err := service.Extract(extract.ExtractRequest{})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Extracted data for %d constituencies\n", result.Constituencies)
	fmt.Printf("Total candidates: %d\n", result.TotalCandidates)
	fmt.Printf("Saved to: %s\n", result.OutputPath)

	if cfg.XLSXPath != "" {
		if err := writeWorkbook(cfg.XLSXPath, result.Document); err != nil {
			fatal(err)
		}
		fmt.Printf("Saved workbook to: %s\n", cfg.XLSXPath)
	}

	fmt.Println()
	fmt.Println("Extraction completed successfully!")
}

// writeWorkbook renders the result document as an XLSX workbook
func writeWorkbook(path string, doc *extract.ResultsDocument) error {
	data, err := export.WriteXLSX(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// runInspectMode previews the leading pages of the configured PDF
func runInspectMode(cfg *config.Config) {
	inspector, err := inspect.NewInspector(cfg)
	if err != nil {
		fatal(err)
	}

	report, err := inspector.Inspect(inspect.InspectRequest{})
	if err != nil {
		fatal(err)
	}

	report.Render(os.Stdout)
}

// runServeMode starts the MCP server over stdio; the parent process controls
// the lifecycle and the transport handles its own shutdown signals
func runServeMode(cfg *config.Config) {
	extractService, err := extract.NewService(cfg)
	if err != nil {
		log.Fatalf("Failed to create extract service: %v", err)
	}
	inspector, err := inspect.NewInspector(cfg)
	if err != nil {
		log.Fatalf("Failed to create inspector: %v", err)
	}

	server, err := mcp.NewServer(cfg, extractService, inspector)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := server.Run(ctx); err != nil {
		// Only log to stderr in debug mode to avoid protocol interference
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging based on mode
	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	switch {
	case cfg.IsServeMode():
		runServeMode(cfg)
	case cfg.IsInspectMode():
		runInspectMode(cfg)
	default:
		runExtractMode(cfg)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("ECI Results Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
