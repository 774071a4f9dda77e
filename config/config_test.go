package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("BooleanComparison: legacy\nMaxCallDepth: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BooleanComparison != Legacy {
		t.Errorf("BooleanComparison = %q", cfg.BooleanComparison)
	}
	if cfg.MaxCallDepth != 10 {
		t.Errorf("MaxCallDepth = %d", cfg.MaxCallDepth)
	}
	if cfg.BinaryFallback != FallbackNull {
		t.Errorf("omitted BinaryFallback = %q, want default", cfg.BinaryFallback)
	}
}

func TestParseUnquotedNull(t *testing.T) {
	cfg, err := Parse([]byte("BinaryFallback: null\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BinaryFallback != FallbackNull {
		t.Errorf("BinaryFallback = %q", cfg.BinaryFallback)
	}
}

func TestParseRejects(t *testing.T) {
	for _, doc := range []string{
		"BooleanComparison: loose\n",
		"BinaryFallback: zero\n",
		"MaxCallDepth: 0\n",
		"MaxCallDepth: 20001\n",
		"Unknown: 1\n",
		"MaxCallDepth: [1]\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%q: expected an error", doc)
		}
	}
}

func TestWriteThenLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "bussin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	want := Default()
	want.BinaryFallback = FallbackError
	want.Trace = true

	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, FileName)
	if err := ioutil.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(os.TempDir(), "does-not-exist", FileName))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestMaxCallDepthLimit(t *testing.T) {
	cfg := Default()
	cfg.MaxCallDepth = MaxCallDepthLimit
	if err := cfg.Validate(); err != nil {
		t.Errorf("the limit itself should be valid: %v", err)
	}
	cfg.MaxCallDepth = 100000000
	if err := cfg.Validate(); err == nil {
		t.Error("expected a depth past the limit to be rejected")
	}
}
