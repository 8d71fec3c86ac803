// Package jsonfile persists each collection as one human-readable JSON
// document under a data directory. Documents are read and rewritten
// wholesale: there are no partial updates and the last writer wins.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/domain/user"
)

const (
	settingsFile = "settings.json"
	classesFile  = "classes.json"
	vehiclesFile = "vehicles.json"
	bookingsFile = "bookings.json"
	usersFile    = "users.json"
)

// Store hands out the per-collection repositories. A single mutex guards
// file access so concurrent frontends within one process cannot interleave
// a read with a rewrite; multiple processes remain unsupported.
type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Settings() settings.Repository {
	return collection[settings.Settings]{store: s, file: settingsFile}
}

func (s *Store) Classes() catalog.ClassRepository {
	return collection[catalog.VehicleClass]{store: s, file: classesFile}
}

func (s *Store) Vehicles() catalog.VehicleRepository {
	return collection[catalog.Vehicle]{store: s, file: vehiclesFile}
}

func (s *Store) Bookings() booking.Repository {
	return collection[booking.Booking]{store: s, file: bookingsFile}
}

func (s *Store) Users() user.Repository {
	return collection[user.User]{store: s, file: usersFile}
}

type collection[T any] struct {
	store *Store
	file  string
}

// LoadAll reads the whole document. A missing file or a top-level shape
// that is not a sequence yields an empty collection; individual records
// that fail to decode are skipped rather than failing the load.
func (c collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(c.store.dir, c.file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", c.file, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// SaveAll rewrites the whole document with 2-space indentation, leaving
// non-ASCII text unescaped.
func (c collection[T]) SaveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	f, err := os.Create(filepath.Join(c.store.dir, c.file))
	if err != nil {
		return fmt.Errorf("jsonfile: create %s: %w", c.file, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		f.Close()
		return fmt.Errorf("jsonfile: encode %s: %w", c.file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("jsonfile: close %s: %w", c.file, err)
	}
	return nil
}
