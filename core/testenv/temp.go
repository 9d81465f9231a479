package testenv

import (
	"os"
	"path"
	"testing"
)

// TempName creates a temporary filename in a temporary directory.
// The temporary directory and contained files are automatically deleted during cleanup.
func TempName(t testing.TB, name ...string) (filename string) {
	dir := t.TempDir()
	switch len(name) {
	case 0:
		filename = "temp"
	default:
		filename = name[0]
	}
	return path.Join(dir, filename)
}

// WriteTemp writes content into a temporary file and returns its name.
func WriteTemp(t testing.TB, content []byte) (filename string) {
	filename = TempName(t)
	if e := os.WriteFile(filename, content, 0o644); e != nil {
		t.Fatal(e)
	}
	return filename
}
