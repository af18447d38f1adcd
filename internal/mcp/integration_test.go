package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rsunkara/eci-extract/internal/extract"
	"github.com/rsunkara/eci-extract/internal/inspect"
)

func TestServerIntegration(t *testing.T) {
	// Create temp directory for test files
	tempDir, err := os.MkdirTemp("", "mcp_integration_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Create test PDF files
	testFiles := []string{"doc1.pdf", "doc2.pdf"}
	for _, filename := range testFiles {
		filePath := filepath.Join(tempDir, filename)
		if err := os.WriteFile(filePath, make([]byte, 1024), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", filename, err)
		}
	}

	cfg := testConfig(tempDir)
	cfg.ServerName = "integration-test-server"

	extractService, err := extract.NewService(cfg)
	if err != nil {
		t.Fatalf("failed to create extract service: %v", err)
	}
	inspector, err := inspect.NewInspector(cfg)
	if err != nil {
		t.Fatalf("failed to create inspector: %v", err)
	}

	server, err := NewServer(cfg, extractService, inspector)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	// Verify server properties
	if server.config != cfg {
		t.Error("server config not set correctly")
	}
	if server.extractService != extractService {
		t.Error("server extractService not set correctly")
	}
	if server.inspector != inspector {
		t.Error("server inspector not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
}

func TestServerToolsRegistration(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_integration_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	// Test that tools are properly registered by checking the MCP server
	if server.mcpServer == nil {
		t.Fatal("MCP server should be initialized")
	}

	// The mark3labs library doesn't expose registered tools directly,
	// but we can verify the server was created successfully
	// which means tools were registered without errors
}

func TestServerRunStdio(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_integration_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	// Test that the server can start (and quickly stop)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Start server in a goroutine
	done := make(chan error, 1)
	go func() {
		done <- server.runStdioMode(ctx)
	}()

	// Wait for timeout or completion
	select {
	case err := <-done:
		// Server should have stopped once test stdin was exhausted
		if err != nil {
			t.Logf("Server stopped with: %v (expected due to timeout)", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Server did not stop within expected time")
	}
}

func TestServerErrorHandling(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_integration_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := testConfig(tempDir)

	// Nil dependencies must be rejected without panicking
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Server creation with nil services caused panic: %v", r)
		}
	}()

	if _, err := NewServer(cfg, nil, nil); err == nil {
		t.Error("expected error with nil services")
	}
}
