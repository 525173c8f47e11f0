package data

// Descriptor kinds for resources stored as rows in a SQL content table.
const (
	DescriptorKindSQLiteBlob   = "sqliteblob"
	DescriptorKindPostgresBlob = "postgresblob"
)

func init() {
	RegisterDescriptor(DescriptorKindSQLiteBlob, func() ResourceDescriptor {
		return &SQLiteBlobDescriptor{}
	})
	RegisterDescriptor(DescriptorKindPostgresBlob, func() ResourceDescriptor {
		return &PostgresBlobDescriptor{}
	})
}

// SQLiteBlobDescriptor points at a row of the namespace_content table in
// a SQLite database.
type SQLiteBlobDescriptor struct {
	Key string
}

// NewSQLiteBlobDescriptor creates a descriptor for the given content key.
func NewSQLiteBlobDescriptor(key string) *SQLiteBlobDescriptor {
	return &SQLiteBlobDescriptor{Key: key}
}

func (d *SQLiteBlobDescriptor) Kind() string {
	return DescriptorKindSQLiteBlob
}

func (d *SQLiteBlobDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindSQLiteBlob,
		"key":           d.Key,
	}
}

func (d *SQLiteBlobDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindSQLiteBlob); err != nil {
		return err
	}

	key, err := stringField(data, "key", DescriptorKindSQLiteBlob)
	if err != nil {
		return err
	}

	d.Key = key
	return nil
}

// PostgresBlobDescriptor points at a row of the namespace_content table
// in a PostgreSQL database.
type PostgresBlobDescriptor struct {
	Key string
}

// NewPostgresBlobDescriptor creates a descriptor for the given content key.
func NewPostgresBlobDescriptor(key string) *PostgresBlobDescriptor {
	return &PostgresBlobDescriptor{Key: key}
}

func (d *PostgresBlobDescriptor) Kind() string {
	return DescriptorKindPostgresBlob
}

func (d *PostgresBlobDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindPostgresBlob,
		"key":           d.Key,
	}
}

func (d *PostgresBlobDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindPostgresBlob); err != nil {
		return err
	}

	key, err := stringField(data, "key", DescriptorKindPostgresBlob)
	if err != nil {
		return err
	}

	d.Key = key
	return nil
}
