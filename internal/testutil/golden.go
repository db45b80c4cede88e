package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// UpdateEnv names the environment variable that rewrites golden files
// instead of comparing against them.
const UpdateEnv = "CASESHOP_GOLDEN_UPDATE"

// GoldenPath returns the testdata path for a golden file.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares rendered output against testdata/<name>.golden and
// reports the first line that differs.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()
	path := GoldenPath(name)

	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if bytes.Equal(got, want) {
		return
	}

	wantLines := bytes.Split(want, []byte("\n"))
	gotLines := bytes.Split(got, []byte("\n"))
	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var w, g []byte
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if !bytes.Equal(w, g) {
			t.Errorf("%s: line %d differs\nwant: %q\ngot:  %q\n\nfull output:\n%s", name, i+1, w, g, got)
			return
		}
	}
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
