package mcp

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestServer_Run_StdioMode(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_run_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	// Test with context that gets canceled immediately
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	// Run returns once stdin is exhausted; under go test stdin is empty
	err = server.Run(ctx)
	if err != nil {
		// Error is expected due to canceled context
		if !strings.Contains(err.Error(), "context") {
			t.Errorf("Run() error = %v, expected context-related error", err)
		}
	}
}

func TestServer_runStdioMode(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_run_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	tests := []struct {
		name           string
		contextTimeout time.Duration
	}{
		{
			name:           "canceled context",
			contextTimeout: 1 * time.Millisecond,
		},
		{
			name:           "quick timeout",
			contextTimeout: 10 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), tt.contextTimeout)
			defer cancel()

			err := server.runStdioMode(ctx)
			// Server should handle quick timeouts gracefully
			if err != nil && !strings.Contains(err.Error(), "context") {
				t.Errorf("runStdioMode() unexpected non-context error = %v", err)
			}
		})
	}
}

func TestServer_Run_ContextCancellation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_run_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	ctx, cancel := context.WithCancel(context.Background())

	// Run server in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(ctx)
	}()

	// Cancel context after a short delay
	time.Sleep(10 * time.Millisecond)
	cancel()

	// Wait for server to stop
	select {
	case err := <-errChan:
		// Error is expected due to context cancellation
		if err != nil && !strings.Contains(err.Error(), "context") {
			t.Errorf("Run() error = %v, expected context-related error", err)
		}
	case <-time.After(1 * time.Second):
		t.Error("Run() did not return after context cancellation")
	}
}

func TestServer_Run_MultipleShutdowns(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mcp_run_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	server := newTestServer(t, testConfig(tempDir))

	// Test multiple rapid shutdowns
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		err := server.Run(ctx)
		// Should handle multiple shutdowns gracefully
		if err != nil && strings.Contains(err.Error(), "panic") {
			t.Errorf("Run() iteration %d should not panic, got error: %v", i, err)
		}
	}
}
