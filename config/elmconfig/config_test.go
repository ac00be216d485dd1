package elmconfig

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bioinfo/elmdb/elmapi"
)

func writeFile(t *testing.T, path, text string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if c.Endpoint != "" || c.Source != "" {
		t.Fatalf("unexpected endpoint %q from %q", c.Endpoint, c.Source)
	}
	if c.Namespace != elmapi.DefaultNamespace || c.Timeout != elmapi.DefaultClientTimeout {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Retries != 0 || c.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if *Default() != *c {
		t.Fatalf("Default() differs from Load(\"\"): %+v", Default())
	}
}

func TestReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, DefaultConfigPath(), `
endpoint: " http://localhost:8080/services/ELMdb "
timeout: 30s
retries: 2
log_level: debug
trace:
  file: ~/trace/elmdb.log
  max_size_mb: 1
`)

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Endpoint != "http://localhost:8080/services/ELMdb" {
		t.Errorf("endpoint %q", c.Endpoint)
	}
	if c.Timeout != 30*time.Second || c.Retries != 2 || c.LogLevel != "debug" {
		t.Errorf("unexpected %+v", c)
	}
	if c.Trace.File != filepath.Join(home, "trace", "elmdb.log") || c.Trace.MaxSizeMB != 1 || c.Trace.MaxBackups != 3 {
		t.Errorf("unexpected trace %+v", c.Trace)
	}
	if c.Source != DefaultConfigPath() {
		t.Errorf("source %q", c.Source)
	}
}

func TestExplicitPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	p := filepath.Join(dir, "elmdbrc")
	writeFile(t, p, "namespace: urn:test\n")
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Namespace != "urn:test" {
		t.Errorf("namespace %q", c.Namespace)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit config")
	}
}

func TestInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	for _, text := range []string{"retries: -1\n", "timeout: -5s\n", "endpoint: [unclosed\n"} {
		p := filepath.Join(dir, "bad.yaml")
		writeFile(t, p, text)
		if _, err := Load(p); err == nil {
			t.Errorf("expected error for %q", text)
		}
	}
}

func TestTraceWriter(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	c := &Config{}
	if w := c.TraceWriter(&stderr); w != &stderr {
		t.Fatal("expected stderr without a trace file")
	}

	c.Trace = TraceConfig{File: filepath.Join(dir, "logs", "trace.log"), MaxSizeMB: 1, MaxBackups: 1}
	w := c.TraceWriter(&stderr)
	if _, err := w.Write([]byte("*** Outgoing SOAP ***\n")); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(c.Trace.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Outgoing SOAP") || !strings.Contains(stderr.String(), "Outgoing SOAP") {
		t.Fatalf("trace not written to both: file %q, stderr %q", data, stderr.String())
	}
}
