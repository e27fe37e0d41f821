package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"chainhash/chainhash"
	"chainhash/logutil"
)

var ErrInvalidConfig = errors.New("invalid config")

type TableConfig struct {
	Capacity int    `toml:"capacity"`
	Hash     string `toml:"hash"`
}

// BenchConfig drives `chainhash bench`. MaxLoadFactor lets the driver
// resize once the load factor exceeds it; zero disables resizing.
type BenchConfig struct {
	NumData       int     `toml:"num-data"`
	ReadRatio     int     `toml:"read-ratio"`
	MaxLoadFactor float64 `toml:"max-load-factor"`
	Seed          int64   `toml:"seed"`
}

// Config is the driver configuration file.
type Config struct {
	Table TableConfig       `toml:"table"`
	Log   logutil.LogConfig `toml:"log"`
	Bench BenchConfig       `toml:"bench"`
}

func Default() *Config {
	return &Config{
		Table: TableConfig{
			Capacity: 2,
			Hash:     "djb2",
		},
		Log: logutil.DefaultLogConfig(),
		Bench: BenchConfig{
			NumData:       100000,
			ReadRatio:     50,
			MaxLoadFactor: 0.75,
			Seed:          1,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Table.Capacity < chainhash.MinCapacity {
		return errors.Wrapf(ErrInvalidConfig, "table.capacity %d must be at least %d", c.Table.Capacity, chainhash.MinCapacity)
	}
	if _, err := chainhash.ParseHashFunc(c.Table.Hash); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "table.hash: %v", err)
	}
	if c.Bench.NumData < 1 {
		return errors.Wrapf(ErrInvalidConfig, "bench.num-data %d must be positive", c.Bench.NumData)
	}
	if c.Bench.ReadRatio < 0 || c.Bench.ReadRatio > 100 {
		return errors.Wrapf(ErrInvalidConfig, "bench.read-ratio %d out of [0, 100]", c.Bench.ReadRatio)
	}
	if c.Bench.MaxLoadFactor < 0 {
		return errors.Wrapf(ErrInvalidConfig, "bench.max-load-factor %v must not be negative", c.Bench.MaxLoadFactor)
	}
	return nil
}

// TableOptions turns the table section into chainhash options.
func (c *Config) TableOptions() ([]chainhash.Option, error) {
	fn, err := chainhash.ParseHashFunc(c.Table.Hash)
	if err != nil {
		return nil, err
	}
	return []chainhash.Option{chainhash.WithHashFunc(fn)}, nil
}
