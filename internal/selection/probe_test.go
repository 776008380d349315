package selection

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestParsePathsPlain(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mkv")
	b := filepath.Join(dir, "b.mp4")
	touch(t, a)
	touch(t, b)

	got := parsePaths(a + "\n" + b + "\n")
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("parsePaths = %v, want [%s %s]", got, a, b)
	}
}

func TestParsePathsFileURI(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "my movie.mkv")
	touch(t, name)

	raw := "file://" + dir + "/my%20movie.mkv"
	got := parsePaths(raw)
	if len(got) != 1 || got[0] != name {
		t.Fatalf("parsePaths(%q) = %v, want [%s]", raw, got, name)
	}
}

func TestParsePathsDropsMissingAndBlank(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mkv")
	touch(t, a)

	raw := "\n" + filepath.Join(dir, "gone.mkv") + "\n\n  \n" + a + "\n"
	got := parsePaths(raw)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("parsePaths = %v, want [%s]", got, a)
	}
}

func TestParsePathsEmpty(t *testing.T) {
	if got := parsePaths(""); got != nil {
		t.Fatalf("parsePaths(\"\") = %v, want nil", got)
	}
}
