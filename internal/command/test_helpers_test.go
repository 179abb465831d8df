package command

import (
	"bytes"
	"os"
	"testing"

	"github.com/poruru-code/keygen/internal/keygen"
)

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

type stubGenerator struct {
	key   string
	err   error
	calls []generateCall
}

type generateCall struct {
	n      int
	format keygen.Format
}

func (s *stubGenerator) Generate(n int, format keygen.Format) (string, error) {
	s.calls = append(s.calls, generateCall{n: n, format: format})
	return s.key, s.err
}

type recordingUI struct {
	info    []string
	warn    []string
	success []string
	errors  []string
}

func (r *recordingUI) Info(msg string)    { r.info = append(r.info, msg) }
func (r *recordingUI) Warn(msg string)    { r.warn = append(r.warn, msg) }
func (r *recordingUI) Success(msg string) { r.success = append(r.success, msg) }
func (r *recordingUI) Error(msg string)   { r.errors = append(r.errors, msg) }

// runCLI executes Run with buffered streams and returns exit code, stdout, stderr.
func runCLI(t *testing.T, args []string, deps Dependencies) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	deps.Out = &out
	deps.ErrOut = &errOut
	code := Run(args, deps)
	return code, out.String(), errOut.String()
}
