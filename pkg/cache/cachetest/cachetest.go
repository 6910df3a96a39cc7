// Package cachetest provides an in-process cache.Cache for tests.
package cachetest

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"time"

	"movie-catalog/pkg/cache"
)

// ErrUnavailable is returned by every write when Map.Fail is set.
var ErrUnavailable = errors.New("cache unavailable")

// Map stores JSON payloads in a map and counts lookups. TTLs are ignored.
type Map struct {
	mu      sync.Mutex
	entries map[string][]byte

	Gets int
	Hits int

	// Fail makes Set and Delete return ErrUnavailable.
	Fail bool
}

var _ cache.Cache = (*Map)(nil)

func New() *Map {
	return &Map{entries: make(map[string][]byte)}
}

func (c *Map) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Gets++
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(data, dest)
}

func (c *Map) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return ErrUnavailable
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *Map) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return ErrUnavailable
	}
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *Map) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return ErrUnavailable
	}
	for k := range c.entries {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *Map) Ping(context.Context) error {
	if c.Fail {
		return ErrUnavailable
	}
	return nil
}

// Has reports whether key is cached.
func (c *Map) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}
