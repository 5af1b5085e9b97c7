package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/santa/internal/santa/store"
)

var _ store.Store = (*Store)(nil)

// emptyDocument is what a freshly created collection file holds.
var emptyDocument = []byte("{}\n")

// Load creates the data directory if needed, proves it is writable, makes
// sure every collection file exists, and reads them into memory.
//
// An unwritable directory is returned as store.ErrUnwritable. A file that
// cannot be read or parsed is logged and its collection starts empty; the
// remaining collections are unaffected.
func (s *Store) Load(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Join(s.dir, backupDirName), 0o750); err != nil {
		return fmt.Errorf("%w: %s: %v", store.ErrUnwritable, s.dir, err)
	}
	if err := s.probe(); err != nil {
		return fmt.Errorf("%w: %s: %v", store.ErrUnwritable, s.dir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range s.resources() {
		s.loadResource(res)
	}
	return nil
}

func (s *Store) loadResource(res resource) {
	path := s.path(res)
	log := s.logger.With("resource", res.name(), "path", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeFileAtomic(path, emptyDocument); err != nil {
			log.Error("failed to create resource file", "error", err)
		} else {
			log.Info("created empty resource file")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read resource, starting empty", "error", err)
		s.discard(res)
		return
	}

	if err := res.decode(data); err != nil {
		log.Error("resource is corrupt, starting empty", "error", err, "bytes", len(data))
		s.quarantine(res, data)
		s.discard(res)
		return
	}

	log.Info("resource loaded")
}

// discard empties a collection that could not be loaded and marks the
// store dirty so the next save replaces the unreadable file.
func (s *Store) discard(res resource) {
	s.metrics.corrupt.WithLabelValues(res.name()).Inc()
	res.reset()
	s.gen++
}

// probe writes and removes a scratch file in the data directory. Each call
// uses its own file so concurrent probes do not collide.
func (s *Store) probe() error {
	f, err := os.CreateTemp(s.dir, ".write-probe-*")
	if err != nil {
		return err
	}
	_, werr := f.Write([]byte("ok"))
	cerr := f.Close()
	rerr := os.Remove(f.Name())
	return errors.Join(werr, cerr, rerr)
}

func (s *Store) path(res resource) string {
	return filepath.Join(s.dir, res.name()+".json")
}

func (c *collection[T]) encode() ([]byte, error) {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.label, err)
	}
	return append(data, '\n'), nil
}

// decode replaces the collection with the document in data. The document
// must be a JSON object; a null document is treated as empty.
func (c *collection[T]) decode(data []byte) error {
	var items map[string]T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode %s: %w", c.label, err)
	}
	if items == nil {
		items = make(map[string]T)
	}
	c.items = items
	return nil
}
