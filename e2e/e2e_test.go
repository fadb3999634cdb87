//go:build e2e

package e2e

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

const e2eRegistryAddress = "127.0.0.1:18000"

func TestMain(m *testing.M) {
	log.SetPrefix("[e2e] ")
	log.SetFlags(log.Ltime)

	if _, err := os.Stat(resolveStudioBinaryPath()); err != nil {
		log.Fatalf("studio binary not found at %s\nBuild it first with: go build -o bin/studio ./cmd/studio", resolveStudioBinaryPath())
	}

	var cleanup func()

	if os.Getenv("E2E_SKIP_SETUP") == "true" {
		log.Printf("E2E_SKIP_SETUP=true, using an already running registry")
		registryURL = os.Getenv("STUDIO_API_BASE_URL")
		if registryURL == "" {
			log.Fatal("STUDIO_API_BASE_URL must be set when E2E_SKIP_SETUP=true")
		}
	} else {
		cleanup = startRegistry()
	}

	log.Printf("Configuration:")
	log.Printf("  STUDIO_API_BASE_URL: %s", registryURL)

	code := m.Run()

	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// resolveStudioBinaryPath returns the absolute path to the pre-built studio binary.
func resolveStudioBinaryPath() string {
	bin := os.Getenv("STUDIO_BINARY")
	if bin == "" {
		bin = filepath.Join("..", "bin", "studio")
	}
	abs, err := filepath.Abs(bin)
	if err != nil {
		log.Fatalf("Failed to resolve studio binary path %q: %v", bin, err)
	}
	return abs
}

// startRegistry runs "studio serve registry" with the builtin seed and waits
// for it to report healthy. Returns a cleanup function.
func startRegistry() func() {
	registryURL = "http://" + e2eRegistryAddress
	os.Setenv("STUDIO_API_BASE_URL", registryURL)

	cmd := exec.Command(resolveStudioBinaryPath(), "serve", "registry")
	cmd.Env = append(os.Environ(),
		"AGENT_STUDIO_REGISTRY_ADDRESS="+e2eRegistryAddress,
		"AGENT_STUDIO_SEED_BUILTIN=true",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start registry: %v", err)
	}

	if err := waitForHealth(registryURL+"/health", 30*time.Second); err != nil {
		_ = cmd.Process.Kill()
		log.Fatal(err)
	}

	return func() {
		log.Printf("Stopping registry...")
		_ = cmd.Process.Signal(syscall.SIGTERM)
		done := make(chan error, 1)
		go func() { done <- cmd.Wait() }()
		select {
		case <-done:
		case <-time.After(15 * time.Second):
			_ = cmd.Process.Kill()
		}
	}
}

func waitForHealth(url string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				log.Printf("Health check passed: %s", url)
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("health check timed out after %v: %s", timeout, url)
}
