// SPDX-License-Identifier: MIT

package maxmatch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyKey indicates LoadRedis was called without a set key.
	ErrEmptyKey = errors.New("maxmatch: redis key must be non-empty")

	// ErrNilClient indicates LoadRedis was called with a nil client.
	ErrNilClient = errors.New("maxmatch: redis client is nil")
)

// MembersReader is the slice of the go-redis API LoadRedis needs.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient all satisfy it.
type MembersReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// ReadSet parses one word per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func ReadSet(r io.Reader) (*Set, error) {
	set := NewSet()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maxmatch: read dictionary: %w", err)
	}

	return set, nil
}

// LoadFile memory-maps path and parses it like ReadSet.
// The mapping is released before LoadFile returns.
func LoadFile(path string) (set *Set, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maxmatch: open dictionary: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("maxmatch: stat dictionary: %w", err)
	}
	if info.Size() == 0 {
		// zero-length files cannot be mapped
		return NewSet(), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("maxmatch: mmap dictionary: %w", err)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && err == nil {
			set, err = nil, fmt.Errorf("maxmatch: unmap dictionary: %w", uerr)
		}
	}()

	return ReadSet(bytes.NewReader(m))
}

// LoadRedis snapshots the Redis set stored at key into a Set.
func LoadRedis(ctx context.Context, client MembersReader, key string) (*Set, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		return nil, ErrEmptyKey
	}

	members, err := client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("maxmatch: smembers %q: %w", key, err)
	}

	set := NewSet()
	for _, w := range members {
		set.Add(strings.TrimSpace(w))
	}

	return set, nil
}
