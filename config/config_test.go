package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Table.Capacity)
	assert.Equal(t, "djb2", cfg.Table.Hash)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[table]
capacity = 16
hash = "xxhash"

[log]
level = "debug"
format = "json"

[bench]
num-data = 1000
read-ratio = 90
`)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Table.Capacity)
	assert.Equal(t, "xxhash", cfg.Table.Hash)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep their defaults
	assert.Equal(t, 512, cfg.Log.MaxSize)
	assert.Equal(t, 1000, cfg.Bench.NumData)
	assert.Equal(t, 90, cfg.Bench.ReadRatio)

	opts, err := cfg.TableOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "zero capacity", doc: "[table]\ncapacity = 0"},
		{name: "negative capacity", doc: "[table]\ncapacity = -3"},
		{name: "unknown hash", doc: "[table]\nhash = \"md5\""},
		{name: "no data", doc: "[bench]\nnum-data = 0"},
		{name: "ratio", doc: "[bench]\nread-ratio = 101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "chainhash.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\ncapacity = 8\n"), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Table.Capacity)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[table\n"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
}
