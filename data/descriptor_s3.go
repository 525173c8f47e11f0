package data

// DescriptorKindS3Object identifies resources stored as an object in an
// S3-compatible bucket.
const DescriptorKindS3Object = "s3object"

func init() {
	RegisterDescriptor(DescriptorKindS3Object, func() ResourceDescriptor {
		return &S3ObjectDescriptor{}
	})
}

// S3ObjectDescriptor points at an object in an S3-compatible store.
type S3ObjectDescriptor struct {
	Bucket string
	Key    string
}

// NewS3ObjectDescriptor creates a descriptor for the given bucket and key.
func NewS3ObjectDescriptor(bucket, key string) *S3ObjectDescriptor {
	return &S3ObjectDescriptor{Bucket: bucket, Key: key}
}

func (d *S3ObjectDescriptor) Kind() string {
	return DescriptorKindS3Object
}

func (d *S3ObjectDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindS3Object,
		"bucket":        d.Bucket,
		"key":           d.Key,
	}
}

func (d *S3ObjectDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindS3Object); err != nil {
		return err
	}

	bucket, err := stringField(data, "bucket", DescriptorKindS3Object)
	if err != nil {
		return err
	}

	key, err := stringField(data, "key", DescriptorKindS3Object)
	if err != nil {
		return err
	}

	d.Bucket = bucket
	d.Key = key
	return nil
}
