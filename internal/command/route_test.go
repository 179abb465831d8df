// Where: internal/command/route_test.go
// What: Tests for key output routing.
// Why: Each destination must receive exactly the documented content.
package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestRouter(t *testing.T, wd string) (Router, *bytes.Buffer, *recordingUI) {
	t.Helper()
	var out bytes.Buffer
	rec := &recordingUI{}
	return Router{
		Out:   &out,
		UI:    rec,
		Getwd: func() (string, error) { return wd, nil },
	}, &out, rec
}

func TestRouteStdoutOnly(t *testing.T) {
	router, out, rec := newTestRouter(t, t.TempDir())
	if err := router.Route("deadbeef", Request{EnvFile: DefaultEnvFile, EnvKey: DefaultEnvKey}); err != nil {
		t.Fatalf("route: %v", err)
	}
	if out.String() != "deadbeef\n" {
		t.Fatalf("stdout = %q", out.String())
	}
	if len(rec.success) != 0 || len(rec.warn) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rec)
	}
}

func TestRouteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.txt")
	if err := os.WriteFile(path, []byte("old key that is much longer\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router, out, rec := newTestRouter(t, dir)

	if err := router.Route("abc123", Request{OutputPath: path}); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := readFile(t, path); got != "abc123\n" {
		t.Fatalf("file content = %q", got)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout must stay empty, got %q", out.String())
	}
	if len(rec.success) != 1 || rec.success[0] != "Key written to "+path {
		t.Fatalf("success = %q", rec.success)
	}
}

func TestRouteEnvAppendsRelativeToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	router, out, rec := newTestRouter(t, dir)
	req := Request{AppendEnv: true, EnvFile: DefaultEnvFile, EnvKey: DefaultEnvKey}

	if err := router.Route("first", req); err != nil {
		t.Fatalf("first route: %v", err)
	}
	if err := router.Route("second", req); err != nil {
		t.Fatalf("second route: %v", err)
	}

	want := "\n# Secret Key\nSECRET_KEY=\"first\"\n\n# Secret Key\nSECRET_KEY=\"second\"\n"
	if got := readFile(t, filepath.Join(dir, ".env")); got != want {
		t.Fatalf("env content = %q, want %q", got, want)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout must stay empty, got %q", out.String())
	}
	if len(rec.warn) != 1 || !strings.Contains(rec.warn[0], "already defines SECRET_KEY") {
		t.Fatalf("expected one shadowing warning, got %q", rec.warn)
	}
}

func TestRouteFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.txt")
	router, _, rec := newTestRouter(t, dir)

	req := Request{OutputPath: keyPath, AppendEnv: true, EnvFile: DefaultEnvFile, EnvKey: DefaultEnvKey}
	if err := router.Route("k", req); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := readFile(t, keyPath); got != "k\n" {
		t.Fatalf("key file = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, ".env")); got != "\n# Secret Key\nSECRET_KEY=\"k\"\n" {
		t.Fatalf("env file = %q", got)
	}
	if len(rec.success) != 2 || !strings.HasPrefix(rec.success[0], "Key written to") {
		t.Fatalf("success order = %q", rec.success)
	}
}

func TestRouteFileFailureStopsBeforeEnv(t *testing.T) {
	dir := t.TempDir()
	router, _, _ := newTestRouter(t, dir)
	req := Request{
		OutputPath: filepath.Join(dir, "missing", "key.txt"),
		AppendEnv:  true,
		EnvFile:    DefaultEnvFile,
		EnvKey:     DefaultEnvKey,
	}

	err := router.Route("k", req)
	if err == nil || !strings.Contains(err.Error(), "write key to") {
		t.Fatalf("expected write error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".env")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("env file must not be created after a failed write: %v", statErr)
	}
}

func TestRouteEnvFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	router, _, _ := newTestRouter(t, dir)

	err := router.Route("k", Request{AppendEnv: true, EnvFile: DefaultEnvFile, EnvKey: DefaultEnvKey})
	if err == nil || !strings.Contains(err.Error(), "append key to") {
		t.Fatalf("expected append error, got %v", err)
	}
}

func TestRouteGetwdFailure(t *testing.T) {
	errNoWD := errors.New("no working directory")
	router := Router{
		Out:   &bytes.Buffer{},
		UI:    &recordingUI{},
		Getwd: func() (string, error) { return "", errNoWD },
	}
	err := router.Route("k", Request{AppendEnv: true, EnvFile: DefaultEnvFile, EnvKey: DefaultEnvKey})
	if !errors.Is(err, errNoWD) {
		t.Fatalf("expected getwd error, got %v", err)
	}
}

func TestRouteAbsoluteEnvFileIgnoresWorkingDir(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "secrets.env")
	router := Router{
		Out:   &bytes.Buffer{},
		UI:    &recordingUI{},
		Getwd: func() (string, error) { return "", errors.New("unused") },
	}
	if err := router.Route("k", Request{AppendEnv: true, EnvFile: envPath, EnvKey: "API_TOKEN"}); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := readFile(t, envPath); got != "\n# Secret Key\nAPI_TOKEN=\"k\"\n" {
		t.Fatalf("env file = %q", got)
	}
}
