package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sketchlab/sketchcast/pkg/cache"
	"github.com/sketchlab/sketchcast/pkg/pipeline"
)

// DefaultConfigFile is the project config file looked up in the working
// directory.
const DefaultConfigFile = "sketchcast.toml"

// Cache backends selectable in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the optional per-project configuration.
type Config struct {
	// OutDir is the artifact output directory.
	OutDir string `toml:"out_dir"`

	// Quality is the default render profile (low, medium, high).
	Quality string `toml:"quality"`

	// Formats are the default artifact formats.
	Formats []string `toml:"formats"`

	// Cache selects and configures the cache backend.
	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	// Backend is one of file (default), redis, none.
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory (default: XDG cache dir).
	Dir string `toml:"dir"`

	// Redis configures the redis backend.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LoadConfig reads a TOML config file. A missing file is not an error and
// yields the zero config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.OutDir == "" {
		c.OutDir = pipeline.DefaultOutDir
	}
	if c.Quality == "" {
		c.Quality = pipeline.DefaultQuality
	}
	if len(c.Formats) == 0 {
		c.Formats = pipeline.DefaultFormats
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendFile
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	return c
}

// openCache opens the configured cache backend. File backend failures fall
// back to a null cache so a broken cache never blocks a build.
func (c Config) openCache() (cache.Cache, error) {
	switch c.Cache.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
	default:
		dir := c.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}
