package pack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/cpio"
	"github.com/mwantia/namespace/data"
)

const builderFileMode = cpio.TypeReg | 0o644

// BuildPackage packages the contents of a directory into an archive at
// the given output path. The manifest is written as the first entry,
// followed by one content entry per file; every file is declared as a
// single packagefile resource at version 1. The resulting archive can be
// registered as a package source.
func BuildPackage(dir, out string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", data.ErrInvalidPath, dir)
	}

	manifest, entries, err := buildManifest(filepath.Clean(dir), "")
	if err != nil {
		return err
	}
	manifest.Name = data.RootName

	output, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create package %s: %w", out, err)
	}
	defer output.Close()

	writer := cpio.NewWriter(output)

	if err := writeManifest(writer, manifest); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := writeEntry(writer, entry); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close package %s: %w", out, err)
	}

	return nil
}

// packEntry names one content file to embed, keyed by its archive entry
// name.
type packEntry struct {
	name   string
	source string
}

func buildManifest(dir, prefix string) (*Manifest, []packEntry, error) {
	manifest := &Manifest{
		Type: ManifestTypeDirectory,
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", data.ErrInvalidPath, dir, err)
	}

	var entries []packEntry

	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		entryName := name
		if prefix != "" {
			entryName = prefix + "/" + name
		}

		if dirEntry.IsDir() {
			child, childEntries, err := buildManifest(filepath.Join(dir, name), entryName)
			if err != nil {
				return nil, nil, err
			}
			child.Name = name

			if manifest.Subdirectories == nil {
				manifest.Subdirectories = make(map[string]*Manifest)
			}
			manifest.Subdirectories[name] = child
			entries = append(entries, childEntries...)

			continue
		}

		if !dirEntry.Type().IsRegular() {
			continue
		}

		if manifest.Files == nil {
			manifest.Files = make(map[string]*FileEntry)
		}
		manifest.Files[name] = &FileEntry{
			Name: name,
			Type: ManifestTypeFile,
			Resource: []ResourceEntry{
				{
					Version:    1,
					Descriptor: data.NewPackageFileDescriptor("", entryName).Serialize(),
				},
			},
		}

		entries = append(entries, packEntry{
			name:   entryName,
			source: filepath.Join(dir, name),
		})
	}

	return manifest, entries, nil
}

func writeManifest(writer *cpio.Writer, manifest *Manifest) error {
	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	header := &cpio.Header{
		Name: ManifestName,
		Mode: builderFileMode,
		Size: int64(len(encoded)),
	}
	if err := writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", ManifestName, err)
	}

	if _, err := writer.Write(encoded); err != nil {
		return fmt.Errorf("write body for %s: %w", ManifestName, err)
	}

	return nil
}

func writeEntry(writer *cpio.Writer, entry packEntry) error {
	content, err := os.ReadFile(entry.source)
	if err != nil {
		return fmt.Errorf("read %s: %w", entry.source, err)
	}

	header := &cpio.Header{
		Name: entry.name,
		Mode: builderFileMode,
		Size: int64(len(content)),
	}
	if err := writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", entry.name, err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write body for %s: %w", entry.name, err)
	}

	return nil
}
