package mcp

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rsunkara/eci-extract/internal/config"
	"github.com/rsunkara/eci-extract/internal/descriptions"
	"github.com/rsunkara/eci-extract/internal/extract"
	"github.com/rsunkara/eci-extract/internal/inspect"
	"github.com/rsunkara/eci-extract/internal/pdf"
	"github.com/rsunkara/eci-extract/internal/pdf/security"
)

const (
	// maxDirectoryListing caps the number of files returned in server info
	maxDirectoryListing = 100
	// directoryScanTimeout bounds the directory listing in server info
	directoryScanTimeout = 5 * time.Second
)

// Server represents the MCP server instance
type Server struct {
	config         *config.Config
	extractService *extract.Service
	inspector      *inspect.Inspector
	validator      *pdf.Validator
	search         *pdf.Search
	pathValidator  *security.PathValidator
	mcpServer      *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, extractService *extract.Service, inspector *inspect.Inspector) (*Server, error) {
	if extractService == nil {
		return nil, fmt.Errorf("extractService cannot be nil")
	}
	if inspector == nil {
		return nil, fmt.Errorf("inspector cannot be nil")
	}

	pathValidator, err := security.NewPathValidator(cfg.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("invalid data directory: %w", err)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:         cfg,
		extractService: extractService,
		inspector:      inspector,
		validator:      pdf.NewValidator(cfg.MaxFileSize),
		search:         pdf.NewSearch(cfg.MaxFileSize),
		pathValidator:  pathValidator,
		mcpServer:      mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register results extraction tool
	resultsExtractTool := mcp.NewTool(
		"results_extract",
		mcp.WithDescription("Extract constituency-wise election results from a PDF into a JSON document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the results PDF"),
		),
		mcp.WithString("output_path",
			mcp.Description("Destination path for the JSON document (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(resultsExtractTool, s.handleResultsExtract)

	// Register PDF inspect tool
	pdfInspectTool := mcp.NewTool(
		"pdf_inspect",
		mcp.WithDescription("Preview text and detected tables on the first pages of a PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("pages",
			mcp.Description("Number of leading pages to inspect (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(pdfInspectTool, s.handlePDFInspect)

	// Register PDF validate tool
	pdfValidateTool := mcp.NewTool(
		"pdf_validate",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfValidateTool, s.handlePDFValidate)

	// Register PDF search directory tool
	pdfSearchDirectoryTool := mcp.NewTool(
		"pdf_search_directory",
		mcp.WithDescription("Search for PDF files in a directory with optional fuzzy search"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy matching"),
		),
	)
	s.mcpServer.AddTool(pdfSearchDirectoryTool, s.handlePDFSearchDirectory)

	// Register server info tool
	serverInfoTool := mcp.NewTool(
		"server_info",
		mcp.WithDescription("Get server information, available tools, directory contents, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleResultsExtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.pathValidator.ValidatePath(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	req := extract.ExtractRequest{PDFPath: path}
	if out, ok := request.GetArguments()["output_path"].(string); ok && out != "" {
		if err := s.pathValidator.ValidatePath(out); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
		}
		req.OutputPath = out
	}

	result, err := s.extractService.Extract(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatExtractResult(result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFInspect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.pathValidator.ValidatePath(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	req := inspect.InspectRequest{PDFPath: path}
	if pages, ok := request.GetArguments()["pages"].(float64); ok && pages > 0 {
		req.Pages = int(pages)
	}

	report, err := s.inspector.Inspect(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(report.String()), nil
}

func (s *Server) handlePDFValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.pathValidator.ValidatePath(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	result, err := s.validator.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable (%d pages, %d bytes)",
			result.Path, result.Pages, result.Size)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.DataDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	if err := s.pathValidator.ValidateDirectory(directory); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	req := pdf.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	}

	result, err := s.search.SearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No PDF files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.serverInfo()
	responseText := s.formatServerInfoResult(result)
	return mcp.NewToolResultText(responseText), nil
}

// serverInfo assembles the server information report
func (s *Server) serverInfo() *pdf.ServerInfoResult {
	// List directory contents with a timeout to prevent hanging
	directoryContents := []pdf.FileInfo{}

	resultChan := make(chan []pdf.FileInfo, 1)
	errorChan := make(chan error, 1)

	go func() {
		files, err := s.search.FindPDFsInDirectoryLimited(s.config.DataDirectory, maxDirectoryListing)
		if err != nil {
			errorChan <- err
			return
		}
		resultChan <- files
	}()

	select {
	case files := <-resultChan:
		directoryContents = files
	case <-errorChan:
		// An unreadable directory still yields a usable report
	case <-time.After(directoryScanTimeout):
	}

	return &pdf.ServerInfoResult{
		ServerName:        s.config.ServerName,
		Version:           s.config.Version,
		DefaultDirectory:  s.config.DataDirectory,
		MaxFileSize:       s.config.MaxFileSize,
		AvailableTools:    s.availableTools(),
		DirectoryContents: directoryContents,
		UsageGuidance:     s.usageGuidance(),
	}
}

// availableTools describes every registered tool for the server info report
func (s *Server) availableTools() []pdf.ToolInfo {
	return []pdf.ToolInfo{
		{
			Name:        "results_extract",
			Description: descriptions.GetToolDescription("results_extract"),
			Usage: "Use this tool to run the full extraction pipeline on a detailed " +
				"constituency-wise results PDF and write the JSON document.",
			Parameters: "path (required): Full absolute path to the results PDF, " +
				"output_path (optional): Destination for the JSON document",
		},
		{
			Name:        "pdf_inspect",
			Description: descriptions.GetToolDescription("pdf_inspect"),
			Usage: "Use this tool to preview the text layer and detected tables on the " +
				"first pages before running an extraction.",
			Parameters: "path (required): Full absolute path to the PDF file, " +
				"pages (optional): Number of leading pages to inspect",
		},
		{
			Name:        "pdf_validate",
			Description: descriptions.GetToolDescription("pdf_validate"),
			Usage:       "Use this tool to check if a file is a valid PDF before attempting to extract from it.",
			Parameters:  "path (required): Full absolute path to the PDF file",
		},
		{
			Name:        "pdf_search_directory",
			Description: descriptions.GetToolDescription("pdf_search_directory"),
			Usage: "Use this tool to find PDF files in the data directory or any specified " +
				"directory. Supports fuzzy search by filename.",
			Parameters: "directory (optional): Directory path to search (uses default if empty), " +
				"query (optional): Search query for fuzzy matching",
		},
		{
			Name:        "server_info",
			Description: descriptions.GetToolDescription("server_info"),
			Usage:       "Use this tool to see the server configuration, data directory contents, and tool guidance.",
			Parameters:  "none",
		},
	}
}

// usageGuidance returns the workflow guide shown in the server info report
func (s *Server) usageGuidance() string {
	return `Election Results Extraction Server Usage Guide:

1. START WITH DISCOVERY:
   - Use 'pdf_search_directory' to find available PDF files
   - Use 'server_info' to check the configured data directory

2. VALIDATE FILES:
   - Use 'pdf_validate' to check if a file is readable before processing

3. INSPECT LAYOUT:
   - Use 'pdf_inspect' to preview text and tables on the first pages
   - Check the per-page classification in the response:
     * "text": page has a dense text layer
     * "sparse_text": page has little extractable text
     * "empty": no extractable text (likely a scanned page)

4. EXTRACT RESULTS:
   - Use 'results_extract' once the layout looks like a detailed
     constituency-wise results document
   - The JSON document is schema-validated before it is written

IMPORTANT NOTES:
- Always use absolute file paths
- The server can handle files up to ` + fmt.Sprintf("%d", s.config.MaxFileSize/(1024*1024)) + `MB
- Scanned pages contribute nothing to extraction; there is no OCR
- Paths are restricted to the configured data directory`
}

// Formatting methods
func (s *Server) formatExtractResult(result *extract.ExtractResult) string {
	text := fmt.Sprintf("Extracted data for %d constituencies\n", result.Constituencies)
	text += fmt.Sprintf("Total candidates: %d\n", result.TotalCandidates)
	text += fmt.Sprintf("Saved to: %s\n", result.OutputPath)
	text += fmt.Sprintf("Engine: %s\n", result.Engine)
	if result.FallbackReason != "" {
		text += fmt.Sprintf("Fallback: %s\n", result.FallbackReason)
	}

	return text
}

func (s *Server) formatSearchDirectoryResult(result *pdf.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatServerInfoResult(result *pdf.ServerInfoResult) string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("📁 Default Directory: %s\n", result.DefaultDirectory)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n\n", result.MaxFileSize/(1024*1024))

	// Directory contents
	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("📂 Directory Contents (%d PDF files found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "📂 Directory Contents: No PDF files found in default directory\n\n"
	}

	// Available tools
	text += "🛠️  Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	// Usage guidance
	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server on the stdio transport
func (s *Server) Run(ctx context.Context) error {
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting results extraction MCP server in stdio mode")
		log.Printf("Data directory: %s", s.config.DataDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
