package fennc

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.fenn.dev/pkg/must"
	"src.fenn.dev/pkg/prog"
)

const mainProgram = `
module: main
defs:
  - name: main
    body:
      call:
        fn: {var: "util:greet"}
        args: [{lit: '"world"'}]
`

const utilProgram = `
module: util
defs:
  - name: greet
    body:
      lambda:
        params: [who]
        body:
          call:
            fn: {foreign: print}
            args: [{var: who}]
`

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	devNull := must.OK1(os.Open(os.DevNull))
	defer devNull.Close()
	r, w := must.Pipe()
	exit := prog.Run([3]*os.File{devNull, w, w}, append([]string{"fennc"}, args...), Program{})
	w.Close()
	out := string(must.OK1(io.ReadAll(r)))
	r.Close()
	return exit, out
}

func TestBuild_PrintsLoweredModule(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "main.yaml")
	must.WriteFile(fname, mainProgram)

	exit, out := run(t, "build", fname)
	if exit != 0 {
		t.Fatalf("exit = %d, want 0; output:\n%s", exit, out)
	}
	for _, want := range []string{
		"module main",
		`main = util:greet("world")`,
		"# deps: util:greet",
		"# locals: main",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestBuild_RecordsAndReachQueries(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "deps.db")
	mainFile := filepath.Join(dir, "main.yaml")
	utilFile := filepath.Join(dir, "util.yaml")
	must.WriteFile(mainFile, mainProgram)
	must.WriteFile(utilFile, utilProgram)

	if exit, out := run(t, "-db", db, "build", mainFile, utilFile); exit != 0 {
		t.Fatalf("build: exit = %d, want 0; output:\n%s", exit, out)
	}

	exit, out := run(t, "-db", db, "reach", "main")
	if exit != 0 {
		t.Fatalf("reach: exit = %d, want 0; output:\n%s", exit, out)
	}
	if out != "main\nutil\n" {
		t.Errorf("reach output %q, want %q", out, "main\nutil\n")
	}
}

func TestBuild_BadProgram(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.yaml")
	must.WriteFile(fname, "defs: []\n")

	exit, out := run(t, "build", fname)
	if exit != 2 {
		t.Errorf("exit = %d, want 2; output:\n%s", exit, out)
	}
	if !strings.Contains(out, "no module name") {
		t.Errorf("output does not mention the missing module name:\n%s", out)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	exit, out := run(t, "frobnicate")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(out, "unknown command") {
		t.Errorf("output does not mention the unknown command:\n%s", out)
	}
}

func TestRun_Version(t *testing.T) {
	exit, out := run(t, "-version")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if strings.TrimSpace(out) != Version {
		t.Errorf("output %q, want version %q", out, Version)
	}
}

func TestParseProgram_ExprErrors(t *testing.T) {
	_, err := parseProgram([]byte(`
module: m
defs:
  - name: f
    body: {squint: x}
`))
	if err == nil || !strings.Contains(err.Error(), "unknown expression type") {
		t.Errorf("parseProgram -> error %v, want unknown expression type", err)
	}
}
