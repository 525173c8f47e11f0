package pack_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/mwantia/namespace/data"
	"github.com/mwantia/namespace/pack"
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

func TestBuildAndReadPackage(t *testing.T) {
	source := t.TempDir()
	writeFile(t, filepath.Join(source, "dir1", "file1.txt"), "packaged content")
	writeFile(t, filepath.Join(source, "readme.md"), "readme")

	archive := filepath.Join(t.TempDir(), "assets.nspkg")
	if err := pack.BuildPackage(source, archive); err != nil {
		t.Fatalf("BuildPackage failed: %v", err)
	}

	root, err := pack.ReadPackage(archive)
	if err != nil {
		t.Fatalf("ReadPackage failed: %v", err)
	}

	node, found := root.GetNode("dir1.file1.txt")
	if !found {
		t.Fatal("expected node at dir1.file1.txt")
	}

	resource, found := node.Latest()
	if !found || resource.Version().Value() != 1 {
		t.Fatalf("Latest() = %v/%v, expected version 1", resource, found)
	}

	embedded, ok := resource.Descriptor().(*data.PackageFileDescriptor)
	if !ok {
		t.Fatalf("descriptor is %T, expected *PackageFileDescriptor", resource.Descriptor())
	}
	if embedded.Package != archive {
		t.Errorf("Package = %q, expected the archive path %q", embedded.Package, archive)
	}
	if embedded.Entry != "dir1/file1.txt" {
		t.Errorf("Entry = %q, expected %q", embedded.Entry, "dir1/file1.txt")
	}

	if !root.HasNode("readme.md") {
		t.Error("expected node at readme.md")
	}
}

func TestReadPackage_ManifestOnly(t *testing.T) {
	// A package may describe resources living entirely outside the
	// archive, e.g. in an object store.
	manifest := `{
		"name": "ROOT",
		"type": "directory",
		"files": {
			"logo.png": {
				"name": "logo.png",
				"type": "file",
				"resource": [
					{"version": 2, "descriptor": {"type": "s3object", "bucket": "assets", "key": "logo-v2.png"}},
					{"version": 1, "descriptor": {"type": "s3object", "bucket": "assets", "key": "logo-v1.png"}}
				]
			}
		}
	}`

	archive := filepath.Join(t.TempDir(), "external.nspkg")
	writeArchive(t, archive, map[string][]byte{pack.ManifestName: []byte(manifest)})

	root, err := pack.ReadPackage(archive)
	if err != nil {
		t.Fatalf("ReadPackage failed: %v", err)
	}

	node, found := root.GetNode("logo.png")
	if !found {
		t.Fatal("expected node at logo.png")
	}
	if len(node.Resources()) != 2 {
		t.Fatalf("len(Resources) = %d, expected 2", len(node.Resources()))
	}

	latest, _ := node.Latest()
	if latest.Version().Value() != 2 {
		t.Errorf("Latest() version = %s, expected 2", latest.Version())
	}
	if latest.Descriptor().Kind() != data.DescriptorKindS3Object {
		t.Errorf("descriptor kind = %q, expected s3object", latest.Descriptor().Kind())
	}
}

func TestReadPackage_Malformed(t *testing.T) {
	cases := map[string]map[string][]byte{
		"no manifest entry": {
			"dir1/file1.txt": []byte("content"),
		},
		"invalid json": {
			pack.ManifestName: []byte("{not json"),
		},
		"root not a directory": {
			pack.ManifestName: []byte(`{"name": "ROOT", "type": "file"}`),
		},
		"file without resources": {
			pack.ManifestName: []byte(`{
				"name": "ROOT", "type": "directory",
				"files": {"a.txt": {"name": "a.txt", "type": "file", "resource": []}}
			}`),
		},
		"invalid version": {
			pack.ManifestName: []byte(`{
				"name": "ROOT", "type": "directory",
				"files": {"a.txt": {"name": "a.txt", "type": "file",
					"resource": [{"version": 0, "descriptor": {"type": "localfile", "path": "/x"}}]}}
			}`),
		},
		"unknown descriptor": {
			pack.ManifestName: []byte(`{
				"name": "ROOT", "type": "directory",
				"files": {"a.txt": {"name": "a.txt", "type": "file",
					"resource": [{"version": 1, "descriptor": {"type": "carrierpigeon"}}]}}
			}`),
		},
	}

	for name, entries := range cases {
		t.Run(name, func(tst *testing.T) {
			archive := filepath.Join(tst.TempDir(), "broken.nspkg")
			writeArchive(tst, archive, entries)

			if _, err := pack.ReadPackage(archive); !errors.Is(err, data.ErrInvalidArgument) {
				tst.Errorf("ReadPackage = %v, expected ErrInvalidArgument", err)
			}
		})
	}
}

func TestBuildPackage_InvalidSource(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.nspkg")

	if err := pack.BuildPackage(filepath.Join(t.TempDir(), "missing"), out); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("BuildPackage(missing) = %v, expected ErrInvalidArgument", err)
	}
}
