package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runExampleIntegrationTest regenerates the companion files of an example
// package with the CLI and runs the package tests against them.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/aliasgen", "gen", "./examples/"+exampleName)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump the companions for easier debugging.
		if entries, readErr := os.ReadDir(exampleDir); readErr == nil {
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), "_alias.go") {
					continue
				}

				p := filepath.Join(exampleDir, e.Name())
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	test := exec.CommandContext(t.Context(), "go", "test", "./examples/"+exampleName, "-count=1")
	test.Dir = repoRoot

	b, err = test.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}
