package data

// DescriptorKindConsulKey identifies resources stored as a value in the
// Consul KV store.
const DescriptorKindConsulKey = "consulkey"

func init() {
	RegisterDescriptor(DescriptorKindConsulKey, func() ResourceDescriptor {
		return &ConsulKeyDescriptor{}
	})
}

// ConsulKeyDescriptor points at a key in the Consul KV store. Consul
// limits values to 512KB, which suits configuration files and small
// assets.
type ConsulKeyDescriptor struct {
	Key string
}

// NewConsulKeyDescriptor creates a descriptor for the given KV key.
func NewConsulKeyDescriptor(key string) *ConsulKeyDescriptor {
	return &ConsulKeyDescriptor{Key: key}
}

func (d *ConsulKeyDescriptor) Kind() string {
	return DescriptorKindConsulKey
}

func (d *ConsulKeyDescriptor) Serialize() map[string]any {
	return map[string]any{
		DescriptorField: DescriptorKindConsulKey,
		"key":           d.Key,
	}
}

func (d *ConsulKeyDescriptor) Deserialize(data map[string]any) error {
	if err := checkDiscriminator(data, DescriptorKindConsulKey); err != nil {
		return err
	}

	key, err := stringField(data, "key", DescriptorKindConsulKey)
	if err != nil {
		return err
	}

	d.Key = key
	return nil
}
