package runner_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const unformattedQuery = "query{  hello}\n"
const formattedQuery = "query {\n  hello\n}\n"

// binaryPath builds the prettygql binary and returns its path.
func binaryPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "prettygql")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.CommandContext(t.Context(), "go", "build", "-o", bin, "../../cmd/prettygql")
	cmd.Dir = filepath.Join(projectRoot(t), "internal", "runner")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

func TestIntegrationStdinFormat(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin)
	cmd.Stdin = strings.NewReader(unformattedQuery)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != formattedQuery {
		t.Errorf("stdin format: got %q, want %q", string(out), formattedQuery)
	}
}

func TestIntegrationCheckFormatted(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--check")
	cmd.Stdin = strings.NewReader(formattedQuery)
	err := cmd.Run()
	if err != nil {
		t.Errorf("check formatted: expected exit 0, got %v", err)
	}
}

func TestIntegrationCheckUnformatted(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--check")
	cmd.Stdin = strings.NewReader(unformattedQuery)
	err := cmd.Run()
	if err == nil {
		t.Error("check unformatted: expected exit 1, got 0")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() != 1 {
			t.Errorf("check unformatted: expected exit 1, got %d", exitErr.ExitCode())
		}
	}
}

func TestIntegrationDiff(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--diff")
	cmd.Stdin = strings.NewReader(unformattedQuery)
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Error("diff with changes: expected exit 1, got 0")
	}

	output := string(out)
	if !strings.Contains(output, "-query{  hello}") {
		t.Errorf("diff missing old line: %s", output)
	}
	if !strings.Contains(output, "+query {") {
		t.Errorf("diff missing new line: %s", output)
	}
}

func TestIntegrationWrite(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")

	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "-w", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("write: %v\n%s", err, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != formattedQuery {
		t.Errorf("file after write: got %q", string(data))
	}
}

func TestIntegrationFileDefaultsToStdout(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")

	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, path)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(out) != formattedQuery {
		t.Errorf("stdout: got %q, want %q", string(out), formattedQuery)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != unformattedQuery {
		t.Errorf("file should be unchanged without -w, got %q", string(data))
	}
}

func TestIntegrationVersion(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--version")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(string(out), "prettygql ") {
		t.Errorf("version: got %q", string(out))
	}
}

func TestIntegrationMissingFile(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "/nonexistent/file.graphql")
	err := cmd.Run()
	if err == nil {
		t.Error("missing file: expected exit 2, got 0")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() != 2 {
			t.Errorf("missing file: expected exit 2, got %d", exitErr.ExitCode())
		}
	}
}

func TestIntegrationExplicitConfig(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "custom.yml")
	cfg := "printWidth: 40\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "--config", configPath)
	cmd.Stdin = strings.NewReader(unformattedQuery)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if string(out) != formattedQuery {
		t.Errorf("config printWidth: got %q, want %q", string(out), formattedQuery)
	}
}

func TestIntegrationMultipleFiles(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.graphql")
	bad := filepath.Join(dir, "bad.graphql")
	if err := os.WriteFile(good, []byte(formattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "--check", good, bad)
	err := cmd.Run()
	if err == nil {
		t.Error("check with mixed files: expected exit 1")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() != 1 {
			t.Errorf("check mixed: expected exit 1, got %d", exitErr.ExitCode())
		}
	}
}
