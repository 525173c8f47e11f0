package pack_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/mwantia/namespace/data"
	"github.com/mwantia/namespace/loader/pack"
)

func writeArchive(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()

	output, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer output.Close()

	writer := cpio.NewWriter(output)
	for name, content := range entries {
		header := &cpio.Header{
			Name: name,
			Mode: cpio.TypeReg | 0o644,
			Size: int64(len(content)),
		}
		if err := writer.WriteHeader(header); err != nil {
			t.Fatalf("WriteHeader failed: %v", err)
		}
		if _, err := writer.Write(content); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestPackLoader(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "assets.nspkg")
	writeArchive(t, archive, map[string][]byte{
		"dir1/file1.txt": []byte("embedded content"),
		"readme.md":      []byte("readme"),
	})

	l := pack.NewPackLoader()
	if l.Kind() != data.DescriptorKindPackageFile {
		t.Errorf("Kind() = %q, expected %q", l.Kind(), data.DescriptorKindPackageFile)
	}

	content, err := l.Load(t.Context(), data.NewPackageFileDescriptor(archive, "dir1/file1.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(content) != "embedded content" {
		t.Errorf("Load = %q, expected %q", content, "embedded content")
	}
}

func TestPackLoader_Missing(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "assets.nspkg")
	writeArchive(t, archive, map[string][]byte{"readme.md": []byte("readme")})

	l := pack.NewPackLoader()

	cases := map[string]data.ResourceDescriptor{
		"missing entry":   data.NewPackageFileDescriptor(archive, "dir1/file1.txt"),
		"missing archive": data.NewPackageFileDescriptor(filepath.Join(t.TempDir(), "gone.nspkg"), "readme.md"),
	}

	for name, descriptor := range cases {
		t.Run(name, func(tst *testing.T) {
			if _, err := l.Load(tst.Context(), descriptor); !errors.Is(err, data.ErrUnavailable) {
				tst.Errorf("Load = %v, expected ErrUnavailable", err)
			}
		})
	}
}

func TestPackLoader_UnboundDescriptor(t *testing.T) {
	l := pack.NewPackLoader()

	if _, err := l.Load(t.Context(), data.NewPackageFileDescriptor("", "readme.md")); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("Load(unbound descriptor) = %v, expected ErrInvalidArgument", err)
	}
}
