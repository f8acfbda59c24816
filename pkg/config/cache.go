package config

import (
	"context"

	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Cache selects and configures the cache backend.
type Cache struct {
	Backend       string `toml:"backend" yaml:"backend"`
	Dir           string `toml:"dir" yaml:"dir"`
	RedisAddr     string `toml:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int    `toml:"redis_db" yaml:"redis_db"`
	KeyPrefix     string `toml:"key_prefix" yaml:"key_prefix"`
	// Namespace scopes the keys of this project within a shared backend.
	Namespace string `toml:"namespace" yaml:"namespace"`
}

// Validate checks the backend name and its required settings.
func (c Cache) Validate() error {
	switch c.Backend {
	case "", BackendFile, BackendNone:
		return nil
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidOption, "cache.redis_addr is required for the redis backend")
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidOption, "unknown cache backend %q (want file, redis or none)", c.Backend)
}

// Keyer returns the key generator for the configured namespace. Entries
// written under one namespace are never served to another.
func (c Cache) Keyer() cache.Keyer {
	if c.Namespace == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Namespace+":")
}

// Open creates the configured backend. The file backend is the default and
// lives in cache.DefaultDir unless Dir is set.
func (c Cache) Open(ctx context.Context) (cache.Cache, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:      c.RedisAddr,
			Password:  c.RedisPassword,
			DB:        c.RedisDB,
			KeyPrefix: c.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir := c.Dir
	if dir == "" {
		var err error
		if dir, err = cache.DefaultDir(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}
