//go:build e2e

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// registryURL is set during TestMain setup and used by all tests that need the registry.
var registryURL string

// StudioResult holds the output from running studio.
type StudioResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// RunStudio executes studio with the given args in the given working directory.
// It logs the full command for transparency.
func RunStudio(t *testing.T, workDir string, args ...string) StudioResult {
	t.Helper()
	bin := resolveStudioBinaryPath()
	t.Logf("Running: %s %s (in %s)", bin, strings.Join(args, " "), workDir)

	cmd := exec.Command(bin, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	result := StudioResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Err:      err,
	}

	t.Logf("Exit code: %d", result.ExitCode)
	if result.Stdout != "" {
		t.Logf("Stdout:\n%s", result.Stdout)
	}
	if result.Stderr != "" {
		t.Logf("Stderr:\n%s", result.Stderr)
	}

	return result
}

// RequireSuccess asserts the command succeeded (exit code 0).
func RequireSuccess(t *testing.T, result StudioResult) {
	t.Helper()
	if result.ExitCode != 0 {
		t.Fatalf("Expected exit code 0 but got %d.\nStdout: %s\nStderr: %s",
			result.ExitCode, result.Stdout, result.Stderr)
	}
}

// RequireFailure asserts the command failed (non-zero exit code).
func RequireFailure(t *testing.T, result StudioResult) {
	t.Helper()
	if result.ExitCode == 0 {
		t.Fatalf("Expected non-zero exit code but got 0.\nStdout: %s\nStderr: %s",
			result.Stdout, result.Stderr)
	}
}

// RequireOutputContains asserts stdout or stderr contains the given substring.
func RequireOutputContains(t *testing.T, result StudioResult, substr string) {
	t.Helper()
	combined := result.Stdout + result.Stderr
	if !strings.Contains(combined, substr) {
		t.Fatalf("Expected output to contain %q but got:\nStdout: %s\nStderr: %s",
			substr, result.Stdout, result.Stderr)
	}
}

// RequireFileContains asserts the file at path contains the given substring.
func RequireFileContains(t *testing.T, path, substr string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if !strings.Contains(string(content), substr) {
		t.Fatalf("Expected file %s to contain %q but content is:\n%s", path, substr, string(content))
	}
}

// UniqueAgentID generates an agent id unlikely to collide with earlier runs.
func UniqueAgentID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%100000)
}
