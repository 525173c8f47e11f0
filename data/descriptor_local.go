package data

// DescriptorKindLocalFile identifies resources backed by a plain file on
// the local filesystem.
const DescriptorKindLocalFile = "localfile"

func init() {
	RegisterDescriptor(DescriptorKindLocalFile, func() ResourceDescriptor {
		return &LocalFileDescriptor{}
	})
}

// LocalFileDescriptor points at a file on the local filesystem.
type LocalFileDescriptor struct {
	Path string
}

// NewLocalFileDescriptor creates a descriptor for the given filesystem path.
func NewLocalFileDescriptor(path string) *LocalFileDescriptor {
	return &LocalFileDescriptor{Path: path}
}

func (d *LocalFileDescriptor) Kind() string {
	return DescriptorKindLocalFile
}

func (d *LocalFileDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindLocalFile,
		"path":          d.Path,
	}
}

func (d *LocalFileDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindLocalFile); err != nil {
		return err
	}

	path, err := stringField(data, "path", DescriptorKindLocalFile)
	if err != nil {
		return err
	}

	d.Path = path
	return nil
}
