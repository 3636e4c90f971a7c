package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const unformattedQuery = "query{  hello}\n"
const formattedQuery = "query {\n  hello\n}\n"

func TestRunFormatToStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")
	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if stdout.String() != formattedQuery {
		t.Errorf("stdout: got %q, want %q", stdout.String(), formattedQuery)
	}

	// Default (no -w) must not touch the file on disk.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != unformattedQuery {
		t.Errorf("file should be unchanged without -w, got %q", string(data))
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()

	unformatted := filepath.Join(dir, "bad.graphql")
	if err := os.WriteFile(unformatted, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{unformatted},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("check unformatted: got %d, want %d", code, ExitFormatDiff)
	}

	formatted := filepath.Join(dir, "good.graphql")
	if err := os.WriteFile(formatted, []byte(formattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout.Reset()
	stderr.Reset()
	code = Run(&Options{
		Files:  []string{formatted},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("check formatted: got %d, want %d", code, ExitOK)
	}
}

func TestRunDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")
	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}

	output := stdout.String()
	if output == "" {
		t.Error("expected non-empty diff")
	}
	if !bytes.Contains(stdout.Bytes(), []byte("-query{  hello}")) {
		t.Error("diff missing old line")
	}
	if !bytes.Contains(stdout.Bytes(), []byte("+query {")) {
		t.Error("diff missing new line")
	}
}

func TestRunWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")
	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Write:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != formattedQuery {
		t.Errorf("file content: got %q, want %q", string(data), formattedQuery)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout output in write mode, got: %s", stdout.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{"/nonexistent/path/test.graphql"},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.graphql")
	if err := os.WriteFile(path, []byte("query { "), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("syntax error")) {
		t.Errorf("expected syntax error message, got: %s", stderr.String())
	}
}

func TestRunAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")
	if err := os.WriteFile(path, []byte(formattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no diff output, got: %s", stdout.String())
	}
}

func TestRunMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.graphql")
	bad := filepath.Join(dir, "bad.graphql")

	if err := os.WriteFile(good, []byte(formattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{good, bad},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	// One file needs formatting, so exit code should be 1.
	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
}

func TestRunVerboseWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.graphql")
	if err := os.WriteFile(path, []byte(unformattedQuery), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	_ = Run(&Options{
		Files:   []string{path},
		Write:   true,
		Verbose: true,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	if !bytes.Contains(stderr.Bytes(), []byte("test.graphql")) {
		t.Errorf("verbose mode should print filename to stderr, got: %s", stderr.String())
	}
}
