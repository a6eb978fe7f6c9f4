package creds_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plexkit/seasonsort/internal/creds"
)

func writeEnv(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestResolver(t *testing.T) *creds.Resolver {
	t.Helper()
	t.Setenv("TVDB_API_KEY", "")
	return &creds.Resolver{
		LocalEnvPath:  filepath.Join(t.TempDir(), "missing-local.env"),
		GlobalEnvPath: filepath.Join(t.TempDir(), "missing-global.env"),
	}
}

func TestGetCLIWins(t *testing.T) {
	r := newTestResolver(t)
	t.Setenv("TVDB_API_KEY", "from-env")

	value, source, ok := r.Get("TVDB_API_KEY", "from-flag")
	if !ok || value != "from-flag" || source != "command line" {
		t.Errorf("Get() = %q, %q, %v; want from-flag via command line", value, source, ok)
	}
}

func TestGetEnvironment(t *testing.T) {
	r := newTestResolver(t)
	t.Setenv("TVDB_API_KEY", "from-env")

	value, source, ok := r.Get("TVDB_API_KEY", "")
	if !ok || value != "from-env" || source != "environment" {
		t.Errorf("Get() = %q, %q, %v; want from-env via environment", value, source, ok)
	}
}

func TestGetLocalEnvFile(t *testing.T) {
	r := newTestResolver(t)
	r.LocalEnvPath = writeEnv(t, t.TempDir(), "# comment\nTVDB_API_KEY=from-local\n")

	value, source, ok := r.Get("TVDB_API_KEY", "")
	if !ok || value != "from-local" || source != r.LocalEnvPath {
		t.Errorf("Get() = %q, %q, %v; want from-local via %s", value, source, ok, r.LocalEnvPath)
	}
}

func TestGetGlobalEnvFile(t *testing.T) {
	r := newTestResolver(t)
	r.GlobalEnvPath = writeEnv(t, t.TempDir(), "TVDB_API_KEY=from-global\n")

	value, source, ok := r.Get("TVDB_API_KEY", "")
	if !ok || value != "from-global" || source != r.GlobalEnvPath {
		t.Errorf("Get() = %q, %q, %v; want from-global via %s", value, source, ok, r.GlobalEnvPath)
	}
}

func TestGetLocalBeatsGlobal(t *testing.T) {
	r := newTestResolver(t)
	r.LocalEnvPath = writeEnv(t, t.TempDir(), "TVDB_API_KEY=local\n")
	r.GlobalEnvPath = writeEnv(t, t.TempDir(), "TVDB_API_KEY=global\n")

	value, _, _ := r.Get("TVDB_API_KEY", "")
	if value != "local" {
		t.Errorf("value = %q; want local", value)
	}
}

func TestEnvFileQuoteStripping(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{`TVDB_API_KEY="double quoted"`, "double quoted"},
		{`TVDB_API_KEY='single quoted'`, "single quoted"},
		{`TVDB_API_KEY= padded `, "padded"},
		{`TVDB_API_KEY=a=b=c`, "a=b=c"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r := newTestResolver(t)
			r.LocalEnvPath = writeEnv(t, t.TempDir(), tt.line+"\n")
			value, _, ok := r.Get("TVDB_API_KEY", "")
			if !ok || value != tt.want {
				t.Errorf("value = %q, %v; want %q", value, ok, tt.want)
			}
		})
	}
}

func TestRequireMissing(t *testing.T) {
	r := newTestResolver(t)

	if _, err := r.Require("TVDB_API_KEY", ""); err == nil {
		t.Error("Require() succeeded with nothing configured")
	}
}
