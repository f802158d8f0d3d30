package store

import "strconv"

// Config resolves typed values for named tuning keys. An absent key yields the
// caller's default.
type Config interface {
	Get(key, def string) string
	GetBool(key string, def bool) bool
	GetInt(key string, def int) int
	GetLong(key string, def int64) int64
	Contains(key string) bool
}

// MapConfig is a read-only string-map Config. A value that fails to parse for
// the requested type counts as absent.
type MapConfig map[string]string

func (m MapConfig) Get(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func (m MapConfig) GetBool(key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (m MapConfig) GetInt(key string, def int) int {
	v, ok := m[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (m MapConfig) GetLong(key string, def int64) int64 {
	v, ok := m[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func (m MapConfig) Contains(key string) bool {
	_, ok := m[key]
	return ok
}
