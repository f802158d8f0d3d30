package conf

import (
	"io/ioutil"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/lomakv/storetune/internal/store"
)

// DefaultMaxManifestFileSize matches the engine's own manifest bound.
const DefaultMaxManifestFileSize = 1 << 30

type Config struct {
	Container Container        `yaml:"container"`
	Stores    map[string]Store `yaml:"stores"`
}

type Container struct {
	TaskCount            int    `yaml:"task_count"`
	WriteBufferSizeBytes int64  `yaml:"write_buffer_size_bytes"`
	CacheSizeBytes       int64  `yaml:"cache_size_bytes"`
	MaxManifestFileSize  int64  `yaml:"max_manifest_file_size"`
	HttpAddr             string `yaml:"http_addr"`
}

type Store struct {
	Path   string            `yaml:"path"`
	Mode   string            `yaml:"mode"`
	Config map[string]string `yaml:"config"`
}

func Load(path string) (*Config, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var c Config
	if err = yaml.Unmarshal(bs, &c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if c.Container.TaskCount <= 0 {
		c.Container.TaskCount = 1
	}
	if c.Container.MaxManifestFileSize <= 0 {
		c.Container.MaxManifestFileSize = DefaultMaxManifestFileSize
	}
	return &c, nil
}

// StoreConfig builds the per-store view: container-wide budgets merged in
// under their container-scoped keys, store-specific keys on top.
func (c *Config) StoreConfig(name string) (store.MapConfig, bool) {
	s, ok := c.Stores[name]
	if !ok {
		return nil, false
	}
	m := store.MapConfig{}
	if c.Container.WriteBufferSizeBytes > 0 {
		m[store.KeyContainerWriteBufferSizeBytes] = strconv.FormatInt(c.Container.WriteBufferSizeBytes, 10)
	}
	if c.Container.CacheSizeBytes > 0 {
		m[store.KeyContainerCacheSizeBytes] = strconv.FormatInt(c.Container.CacheSizeBytes, 10)
	}
	for k, v := range s.Config {
		m[k] = v
	}
	return m, true
}

// LoadMode maps the yaml mode string; anything but "bulk-load" is a normal
// open.
func (s Store) LoadMode() store.LoadMode {
	if s.Mode == "bulk-load" {
		return store.LoadModeBulkLoad
	}
	return store.LoadModeNormal
}
