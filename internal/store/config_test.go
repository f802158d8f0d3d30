package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapConfigGet(t *testing.T) {
	cfg := MapConfig{"compression": "lz4"}
	assert.Equal(t, "lz4", cfg.Get("compression", "snappy"))
	assert.Equal(t, "snappy", cfg.Get("missing", "snappy"))
}

func TestMapConfigTypedGetters(t *testing.T) {
	cfg := MapConfig{
		"bool": "true",
		"int":  "42",
		"long": "21600000000",
		"bad":  "not-a-number",
	}
	assert.True(t, cfg.GetBool("bool", false))
	assert.False(t, cfg.GetBool("missing", false))
	assert.Equal(t, 42, cfg.GetInt("int", 0))
	assert.Equal(t, int64(21600000000), cfg.GetLong("long", 0))

	// Malformed values count as absent.
	assert.Equal(t, 7, cfg.GetInt("bad", 7))
	assert.Equal(t, int64(7), cfg.GetLong("bad", 7))
	assert.True(t, cfg.GetBool("bad", true))
}

func TestMapConfigContains(t *testing.T) {
	cfg := MapConfig{"present": ""}
	assert.True(t, cfg.Contains("present"))
	assert.False(t, cfg.Contains("absent"))
}
