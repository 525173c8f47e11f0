// Package consul loads resource content from the HashiCorp Consul KV
// store. Consul limits values to 512KB, which suits configuration files
// and small assets.
package consul

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/namespace/data"
)

type ConsulLoader struct {
	mu     sync.RWMutex
	client *api.Client
	kv     *api.KV

	config *ConsulLoaderConfig
}

// ConsulLoaderConfig contains configuration options for the Consul loader.
type ConsulLoaderConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Prefix prepended to all descriptor keys (optional)
	Prefix string
}

// NewConsulLoader creates a loader for consulkey descriptors.
func NewConsulLoader(config *ConsulLoaderConfig) (*ConsulLoader, error) {
	if config == nil {
		config = &ConsulLoaderConfig{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulLoader{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Kind returns the descriptor discriminator handled by this loader.
func (*ConsulLoader) Kind() string {
	return data.DescriptorKindConsulKey
}

// Load fetches the KV pair the descriptor points at. A missing key or an
// unreachable server surfaces as data.ErrUnavailable.
func (cl *ConsulLoader) Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	kvd, ok := descriptor.(*data.ConsulKeyDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: expected a consulkey descriptor", data.ErrInvalidArgument)
	}

	cl.mu.RLock()
	defer cl.mu.RUnlock()

	key := kvd.Key
	if cl.config.Prefix != "" {
		key = strings.TrimSuffix(cl.config.Prefix, "/") + "/" + strings.TrimPrefix(key, "/")
	}

	pair, _, err := cl.kv.Get(key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: consul key %s: %v", data.ErrUnavailable, key, err)
	}

	if pair == nil {
		return nil, fmt.Errorf("%w: consul key %s does not exist", data.ErrUnavailable, key)
	}

	return pair.Value, nil
}
