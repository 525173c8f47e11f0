package data

// DescriptorKindPackageFile identifies resources embedded as an entry of
// a package archive.
const DescriptorKindPackageFile = "packagefile"

func init() {
	RegisterDescriptor(DescriptorKindPackageFile, func() ResourceDescriptor {
		return &PackageFileDescriptor{}
	})
}

// PackageFileDescriptor points at a named entry inside a package archive.
// Package is left empty inside a manifest and filled in by the package
// reader, which knows the archive it is decoding.
type PackageFileDescriptor struct {
	Package string
	Entry   string
}

// NewPackageFileDescriptor creates a descriptor for the given archive
// entry.
func NewPackageFileDescriptor(pkg, entry string) *PackageFileDescriptor {
	return &PackageFileDescriptor{Package: pkg, Entry: entry}
}

func (d *PackageFileDescriptor) Kind() string {
	return DescriptorKindPackageFile
}

func (d *PackageFileDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindPackageFile,
		"package":       d.Package,
		"entry":         d.Entry,
	}
}

func (d *PackageFileDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindPackageFile); err != nil {
		return err
	}

	entry, err := stringField(data, "entry", DescriptorKindPackageFile)
	if err != nil {
		return err
	}

	// Optional inside manifests; the reader resolves it to the archive path.
	if pkg, ok := data["package"].(string); ok {
		d.Package = pkg
	}

	d.Entry = entry
	return nil
}
