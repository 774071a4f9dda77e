package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/interpreter"
	"github.com/pontaoski/bussin/runtime"
)

func writeSource(t *testing.T, src string) (dir, file string) {
	t.Helper()
	dir, err := ioutil.TempDir("", "bussin")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	file = filepath.Join(dir, "main"+config.SourceFileExt)
	if err := ioutil.WriteFile(file, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, file
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"bussin"}, args...))
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir, file := writeSource(t, "grimace x = 10; pluh f() { x }  buss(f())")
	missing := filepath.Join(dir, config.FileName)

	out, err := runApp(t, "run", "--config", missing, file)
	if err != nil {
		t.Fatal(err)
	}
	if out != "10\n" {
		t.Errorf("printed %q", out)
	}
}

func TestRunFlags(t *testing.T) {
	dir, file := writeSource(t, "fanum (nocap < cap) { buss(1) } tax { buss(2) }")
	missing := filepath.Join(dir, config.FileName)

	_, err := runApp(t, "run", "--config", missing, file)
	if !errors.Is(err, errors.TypeError) {
		t.Errorf("strict mode: expected a TypeError, got %v", err)
	}

	out, err := runApp(t, "run", "--config", missing, "--boolean-comparison", "legacy", file)
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n" {
		t.Errorf("legacy mode printed %q", out)
	}

	if _, err := runApp(t, "run", "--config", missing, "--binary-fallback", "maybe", file); err == nil {
		t.Error("expected an invalid flag value to fail")
	}
}

func TestRunReadsConfig(t *testing.T) {
	dir, file := writeSource(t, "buss(nocap + 1)")
	cfgPath := filepath.Join(dir, config.FileName)
	if err := ioutil.WriteFile(cfgPath, []byte("BinaryFallback: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runApp(t, "run", "--config", cfgPath, file)
	if !errors.Is(err, errors.TypeError) {
		t.Errorf("expected a TypeError, got %v", err)
	}
}

func TestRunReportsDiagnostics(t *testing.T) {
	dir, file := writeSource(t, "buss(missing)")

	_, err := runApp(t, "run", "--config", filepath.Join(dir, config.FileName), file)
	if !errors.Is(err, errors.BindingError) {
		t.Errorf("expected a BindingError, got %v", err)
	}

	if _, err := runApp(t, "run", filepath.Join(dir, "nope.bs")); err == nil {
		t.Error("expected a missing file to fail")
	}
	if _, err := runApp(t, "run"); err == nil {
		t.Error("expected a missing argument to fail")
	}
}

func TestDumpCommands(t *testing.T) {
	_, file := writeSource(t, "buss(\"hi\")")

	out, err := runApp(t, "tokens", file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "types.Token{") || !strings.Contains(out, `"buss"`) {
		t.Errorf("unexpected token dump:\n%s", out)
	}

	out, err = runApp(t, "ast", file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ast.CallExpression") {
		t.Errorf("unexpected ast dump:\n%s", out)
	}
}

func TestInitCommand(t *testing.T) {
	dir, _ := writeSource(t, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if _, err := runApp(t, "init"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Errorf("init wrote %+v", cfg)
	}
}

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", false},
		{"skibidi x = 1;", false},
		{"buss(1)", false},
		{"pluh f() {", true},
		{"skibidi x = ", true},
		{"buss(1,", true},
		{"fanum (1 < 2) { buss(1) } tax {", true},
		{"buss(1 & 2", false},
		{"skibidi 1", false},
	}

	for _, tt := range tests {
		if got := needsMoreInput(tt.src); got != tt.want {
			t.Errorf("needsMoreInput(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEvalInputKeepsScope(t *testing.T) {
	var out bytes.Buffer
	i := interpreter.New(config.Default())
	env := runtime.NewGlobalEnvironment(&out)

	evalInput(i, env, "skibidi x = 2;", &out)
	evalInput(i, env, "y", &out)
	evalInput(i, env, "pluh triple(n) { n * 3 }", &out)
	evalInput(i, env, "buss(triple(x))", &out)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got lines %q", lines)
	}
	if lines[0] != "2" {
		t.Errorf("declaration printed %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "BindingError: ") {
		t.Errorf("error printed %q", lines[1])
	}
	if lines[2] != "[Function: triple]" {
		t.Errorf("function printed %q", lines[2])
	}
	if lines[3] != "6" || lines[4] != "null" {
		t.Errorf("call printed %q", lines[3:])
	}
}

func TestNoArguments(t *testing.T) {
	exitWithError(nil, nil)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = exitWithError
	if err := app.Run([]string{"bussin"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "bussin") {
		t.Errorf("expected usage text, got %q", out.String())
	}
}
