package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteScript_Basic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "create_beads.sh")

	if err := WriteScript(path, "#!/bin/bash\necho ok\n"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#!/bin/bash\necho ok\n" {
		t.Fatalf("got %q", string(data))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Fatalf("script not executable: %v", info.Mode())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestWriteScript_OverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "create_beads.sh")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteScript(path, "new"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Fatalf("got %q, want %q", string(data), "new")
	}
}

func TestWriteScript_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "create_beads.sh")
	if err := WriteScript(path, "x"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
