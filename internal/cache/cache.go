// Package cache provides an on-disk key/value cache with per-entry TTL,
// backed by BoltDB. It stores API responses so repeated lookups for the same
// show do not hit the network.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultTTL is how long entries stay valid unless configured otherwise.
const DefaultTTL = 14 * 24 * time.Hour

var bucketName = []byte("entries")

var keyClean = regexp.MustCompile(`[^\w\s-]`)

// entry is the stored envelope: payload plus write time.
type entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Cache is a TTL key/value store. Safe for concurrent use; BoltDB serializes
// writers internally.
type Cache struct {
	db  *bolt.DB
	ttl time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

// Open creates or opens the cache file at path.
func Open(path string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache bucket: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Close releases the underlying database file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key normalizes a lookup string into a stable cache key: punctuation
// stripped, whitespace trimmed, lower-cased.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(keyClean.ReplaceAllString(s, "")))
}

// Get unmarshals the cached payload for key into v. The second return is
// false when the key is absent or expired; expired entries are removed on
// the spot.
func (c *Cache) Get(key string, v any) (bool, error) {
	k := []byte(Key(key))
	var raw []byte
	if err := c.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketName).Get(k); data != nil {
			raw = append([]byte(nil), data...)
		}
		return nil
	}); err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// Corrupt entry: drop it and report a miss.
		_ = c.delete(k)
		return false, nil
	}
	if c.now().Sub(e.Timestamp) > c.ttl {
		if err := c.delete(k); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

// Set stores v under key with the current timestamp.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	raw, err := json.Marshal(entry{Timestamp: c.now(), Data: data})
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(Key(key)), raw)
	})
}

func (c *Cache) delete(k []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete(k)
	})
}

// CleanupExpired removes every expired entry and returns how many were
// dropped.
func (c *Cache) CleanupExpired() (int, error) {
	removed := 0
	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		cur := b.Cursor()
		var stale [][]byte
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var e entry
			if err := json.Unmarshal(v, &e); err != nil || c.now().Sub(e.Timestamp) > c.ttl {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// Stats describes the cache contents.
type Stats struct {
	TotalEntries   int
	ExpiredEntries int
}

// Stats counts live and expired entries without modifying anything.
func (c *Cache) Stats() (Stats, error) {
	var s Stats
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(_, v []byte) error {
			s.TotalEntries++
			var e entry
			if err := json.Unmarshal(v, &e); err != nil || c.now().Sub(e.Timestamp) > c.ttl {
				s.ExpiredEntries++
			}
			return nil
		})
	})
	return s, err
}

// Clear drops every entry.
func (c *Cache) Clear() error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
}
