package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwantia/namespace/data"
	"github.com/mwantia/namespace/scan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b.txt"), "beta")
	writeFile(t, filepath.Join(dir, "a", "c", "d.txt"), "delta")
	writeFile(t, filepath.Join(dir, "top.txt"), "top")

	root, err := scan.Directory(dir)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}

	if !root.IsRoot() || !root.IsDirectory() {
		t.Fatalf("expected a root directory node, got %s", root)
	}

	for _, path := range []string{"a.b.txt", "a.c.d.txt", "top.txt"} {
		node, found := root.GetNode(path)
		if !found {
			t.Errorf("expected node at %s", path)
			continue
		}
		if !node.IsFile() {
			t.Errorf("node at %s is not a file", path)
			continue
		}

		// Filesystem-sourced resources always carry the sentinel version.
		latest, found := node.Latest()
		if !found || !latest.Version().Equal(data.LatestVersion) {
			t.Errorf("node at %s is missing its LatestVersion resource", path)
		}
		if latest.Descriptor().Kind() != data.DescriptorKindLocalFile {
			t.Errorf("node at %s has descriptor kind %q", path, latest.Descriptor().Kind())
		}
	}
}

func TestDirectory_Empty(t *testing.T) {
	root, err := scan.Directory(t.TempDir())
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}

	if len(root.Subdirectories()) != 0 || len(root.Files()) != 0 {
		t.Errorf("expected an empty subtree, got %s", root)
	}
}

func TestDirectory_Invalid(t *testing.T) {
	if _, err := scan.Directory(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("Directory(missing) = %v, expected ErrInvalidArgument", err)
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "not a directory")
	if _, err := scan.Directory(file); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("Directory(file) = %v, expected ErrInvalidArgument", err)
	}
}
