package conf

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomakv/storetune/internal/store"
)

const sampleConf = `
container:
  task_count: 4
  write_buffer_size_bytes: 67108864
  cache_size_bytes: 134217728

stores:
  orders:
    path: ./data/orders
    config:
      wal.enabled: "true"
      compression: lz4
  sessions:
    path: ./data/sessions
    mode: bulk-load
`

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "container.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConf(t, sampleConf))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Container.TaskCount)
	assert.Equal(t, int64(DefaultMaxManifestFileSize), cfg.Container.MaxManifestFileSize)
	assert.Len(t, cfg.Stores, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadDefaultsTaskCount(t *testing.T) {
	cfg, err := Load(writeConf(t, "stores: {}"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Container.TaskCount)
}

func TestStoreConfigMergesContainerBudgets(t *testing.T) {
	cfg, err := Load(writeConf(t, sampleConf))
	require.NoError(t, err)

	sc, ok := cfg.StoreConfig("orders")
	require.True(t, ok)
	assert.Equal(t, int64(67108864), sc.GetLong(store.KeyContainerWriteBufferSizeBytes, 0))
	assert.Equal(t, int64(134217728), sc.GetLong(store.KeyContainerCacheSizeBytes, 0))
	assert.True(t, sc.GetBool(store.KeyWALEnabled, false))
	assert.Equal(t, "lz4", sc.Get(store.KeyCompression, "snappy"))

	_, ok = cfg.StoreConfig("unknown")
	assert.False(t, ok)
}

func TestStoreKeysWinOverContainer(t *testing.T) {
	cfg := &Config{
		Container: Container{CacheSizeBytes: 1024},
		Stores: map[string]Store{
			"s": {Config: map[string]string{store.KeyContainerCacheSizeBytes: "2048"}},
		},
	}
	sc, ok := cfg.StoreConfig("s")
	require.True(t, ok)
	assert.Equal(t, int64(2048), sc.GetLong(store.KeyContainerCacheSizeBytes, 0))
}

func TestLoadMode(t *testing.T) {
	cfg, err := Load(writeConf(t, sampleConf))
	require.NoError(t, err)
	assert.Equal(t, store.LoadModeNormal, cfg.Stores["orders"].LoadMode())
	assert.Equal(t, store.LoadModeBulkLoad, cfg.Stores["sessions"].LoadMode())
}
