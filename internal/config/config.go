package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeExtract = "extract"
	ModeInspect = "inspect"
	ModeServe   = "serve"

	// Engine constants
	EngineAuto       = "auto"
	EnginePlumber    = "plumber"
	EngineLedongthuc = "ledongthuc"

	// Default values
	DefaultPDFPath      = "data/33-Constituency-Wise-Detailed-Result.pdf"
	DefaultOutputPath   = "election_results.json"
	DefaultDataDir      = "data"
	DefaultLogLevel     = "info"
	DefaultInspectPages = 5
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB

	// Result document labels
	DefaultElection = "2024 Lok Sabha Elections"
	DefaultState    = "Andhra Pradesh"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the extraction toolchain
type Config struct {
	// Run configuration
	Mode   string // "extract", "inspect" or "serve"
	Engine string // "auto", "plumber" or "ledongthuc"

	// Input/output configuration
	PDFPath       string
	OutputPath    string
	XLSXPath      string // empty disables the workbook export
	DataDirectory string // serve-mode search root

	// Result document labels
	Election string
	State    string

	// Inspection configuration
	InspectPages int

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeExtract,
		Engine:        EngineAuto,
		PDFPath:       DefaultPDFPath,
		OutputPath:    DefaultOutputPath,
		XLSXPath:      "",
		DataDirectory: DefaultDataDir,
		Election:      DefaultElection,
		State:         DefaultState,
		InspectPages:  DefaultInspectPages,
		Version:       "1.0.0",
		ServerName:    "eci-extract",
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand the serve-mode search root if needed
	if cfg.DataDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DataDirectory); err == nil {
			cfg.DataDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("ECI_EXTRACT")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("engine", cfg.Engine)
	viper.SetDefault("pdf", cfg.PDFPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("xlsx", cfg.XLSXPath)
	viper.SetDefault("dir", cfg.DataDirectory)
	viper.SetDefault("election", cfg.Election)
	viper.SetDefault("state", cfg.State)
	viper.SetDefault("pages", cfg.InspectPages)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'extract' writes the JSON document, 'inspect' previews pages, 'serve' starts the MCP server")
	pflag.String("engine", cfg.Engine, "PDF engine: 'auto', 'plumber' (text+tables) or 'ledongthuc' (text only)")
	pflag.String("pdf", cfg.PDFPath, "Path to the constituency-wise detailed result PDF")
	pflag.String("output", cfg.OutputPath, "Path of the JSON document to write (extract mode)")
	pflag.String("xlsx", cfg.XLSXPath, "Optional path of an XLSX workbook to write alongside the JSON")
	pflag.String("dir", cfg.DataDirectory, "Directory searched for PDF files (serve mode)")
	pflag.String("election", cfg.Election, "Election label stamped into the result document")
	pflag.String("state", cfg.State, "State label stamped into the result document")
	pflag.Int("pages", cfg.InspectPages, "Number of leading pages to preview (inspect mode)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("engine", pflag.Lookup("engine"))
	_ = viper.BindPFlag("pdf", pflag.Lookup("pdf"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("xlsx", pflag.Lookup("xlsx"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("election", pflag.Lookup("election"))
	_ = viper.BindPFlag("state", pflag.Lookup("state"))
	_ = viper.BindPFlag("pages", pflag.Lookup("pages"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nECI Results Extractor - Converts constituency-wise detailed result PDFs to JSON\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         "+
			"# extract the default PDF to election_results.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --pdf=results.pdf --output=out.json     "+
			"# extract a specific document\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=inspect --pages=3                # preview the first 3 pages\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=serve --dir=/path/to/pdfs        # MCP server over stdio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_ENGINE      PDF engine\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_PDF         Input PDF path\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_OUTPUT      Output JSON path\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_XLSX        Output XLSX path\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_DIR         PDF directory (serve mode)\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_ELECTION    Election label\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_STATE       State label\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_PAGES       Inspect page count\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  ECI_EXTRACT_MAXFILESIZE Maximum file size\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Engine = viper.GetString("engine")
	cfg.PDFPath = viper.GetString("pdf")
	cfg.OutputPath = viper.GetString("output")
	cfg.XLSXPath = viper.GetString("xlsx")
	cfg.DataDirectory = viper.GetString("dir")
	cfg.Election = viper.GetString("election")
	cfg.State = viper.GetString("state")
	cfg.InspectPages = viper.GetInt("pages")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeExtract && c.Mode != ModeInspect && c.Mode != ModeServe {
		return errors.New("mode must be one of 'extract', 'inspect' or 'serve'")
	}

	// Validate engine
	if c.Engine != EngineAuto && c.Engine != EnginePlumber && c.Engine != EngineLedongthuc {
		return errors.New("engine must be one of 'auto', 'plumber' or 'ledongthuc'")
	}

	// Validate input/output paths for the pipeline modes
	if (c.Mode == ModeExtract || c.Mode == ModeInspect) && c.PDFPath == "" {
		return errors.New("PDF path cannot be empty")
	}
	if c.Mode == ModeExtract && c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	// Validate result document labels
	if c.Election == "" {
		return errors.New("election label cannot be empty")
	}
	if c.State == "" {
		return errors.New("state label cannot be empty")
	}

	// Validate inspect page bound
	if c.InspectPages < 1 {
		return errors.New("inspect page count must be positive")
	}

	// Validate the serve-mode search root, creating it if it doesn't exist
	if c.Mode == ModeServe {
		if c.DataDirectory == "" {
			return errors.New("PDF directory cannot be empty")
		}
		if _, err := os.Stat(c.DataDirectory); os.IsNotExist(err) {
			if err := os.MkdirAll(c.DataDirectory, DefaultDirPerm); err != nil {
				return fmt.Errorf("cannot create PDF directory %s: %w", c.DataDirectory, err)
			}
		} else if err != nil {
			return fmt.Errorf("cannot access PDF directory %s: %w", c.DataDirectory, err)
		}
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Engine: %s, PDFPath: %s, OutputPath: %s, DataDirectory: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Engine, c.PDFPath, c.OutputPath, c.DataDirectory, c.LogLevel, c.MaxFileSize)
}

// IsExtractMode returns true if the extraction pipeline should run
func (c *Config) IsExtractMode() bool {
	return c.Mode == ModeExtract
}

// IsInspectMode returns true if the inspection pipeline should run
func (c *Config) IsInspectMode() bool {
	return c.Mode == ModeInspect
}

// IsServeMode returns true if the MCP server should run
func (c *Config) IsServeMode() bool {
	return c.Mode == ModeServe
}
