package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// Save persists every collection. See store.Store for the single-flight
// contract: an overlapping call is dropped and returns nil.
//
// A save with nothing new since the last successful one, and every file
// still in place, neither backs up nor writes.
func (s *Store) Save(ctx context.Context) error {
	if !s.saveMu.TryLock() {
		s.metrics.saves.WithLabelValues(saveDropped).Inc()
		s.logger.Debug("save already in flight, dropping request")
		return nil
	}
	defer s.saveMu.Unlock()

	return s.save()
}

type snapshot struct {
	res  resource
	path string
	data []byte
}

// save does the work of Save. The caller must hold saveMu.
func (s *Store) save() error {
	start := time.Now()

	if s.unchanged() {
		s.metrics.saves.WithLabelValues(saveUnchanged).Inc()
		return nil
	}

	snaps, gen, err := s.snapshot()
	if err != nil {
		s.logger.Error("failed to encode collections, nothing written", "error", err)
		s.metrics.saves.WithLabelValues(saveFailed).Inc()
		return err
	}

	s.backup(snaps)

	if s.beforeWrite != nil {
		s.beforeWrite()
	}

	errs := make([]error, len(snaps))
	var g errgroup.Group
	for i, snap := range snaps {
		g.Go(func() error {
			if err := writeFileAtomic(snap.path, snap.data); err != nil {
				s.logger.Error("failed to write resource",
					"resource", snap.res.name(),
					"path", snap.path,
					"error", err,
				)
				errs[i] = fmt.Errorf("write %s: %w", snap.res.name(), err)
				return errs[i]
			}
			return nil
		})
	}
	_ = g.Wait()

	s.verify(snaps)

	s.metrics.saveDuration.Observe(time.Since(start).Seconds())
	if err := errors.Join(errs...); err != nil {
		s.metrics.saves.WithLabelValues(saveFailed).Inc()
		return err
	}

	s.savedGen = gen
	s.metrics.saves.WithLabelValues(saveOK).Inc()
	s.logger.Debug("collections saved", "duration", time.Since(start))
	return nil
}

// unchanged reports whether memory matches the last successful save and
// every collection file is still on disk. The caller must hold saveMu.
func (s *Store) unchanged() bool {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	if gen != s.savedGen {
		return false
	}
	for _, res := range s.resources() {
		if _, err := os.Stat(s.path(res)); err != nil {
			return false
		}
	}
	return true
}

// snapshot encodes every collection and returns the generation the encoded
// data corresponds to.
func (s *Store) snapshot() ([]snapshot, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := s.resources()
	snaps := make([]snapshot, 0, len(resources))
	for _, res := range resources {
		data, err := res.encode()
		if err != nil {
			return nil, 0, err
		}
		snaps = append(snaps, snapshot{res: res, path: s.path(res), data: data})
	}
	return snaps, s.gen, nil
}

// verify stats each file after writing. A missing file means something
// outside this process interfered. Memory stays authoritative and the next
// save rewrites it.
func (s *Store) verify(snaps []snapshot) {
	for _, snap := range snaps {
		info, err := os.Stat(snap.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			s.logger.Error("CRITICAL: resource file missing after save",
				"resource", snap.res.name(),
				"path", snap.path,
			)
		case err != nil:
			s.logger.Warn("could not stat resource after save",
				"resource", snap.res.name(),
				"error", err,
			)
		default:
			s.logger.Debug("resource written",
				"resource", snap.res.name(),
				"bytes", info.Size(),
			)
		}
	}
}

// writeFileAtomic writes data to a temp file beside path, syncs it, and
// renames it into place so a crash never leaves a half-written file.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
