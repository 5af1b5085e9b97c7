package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// backupStampLayout sorts lexically in time order.
const backupStampLayout = "20060102T150405.000000000Z"

// backup copies the current on-disk content of each collection into the
// backups directory. It is best effort: a missing source file is skipped
// and any other failure is logged without stopping the save.
func (s *Store) backup(snaps []snapshot) {
	stamp := s.now().UTC().Format(backupStampLayout)
	seq := s.backupSeq.Add(1)

	for _, snap := range snaps {
		data, err := os.ReadFile(snap.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			s.logger.Warn("failed to read resource for backup",
				"resource", snap.res.name(),
				"error", err,
			)
			continue
		}

		dst := filepath.Join(s.dir, backupDirName, backupName(snap.res.name(), stamp, seq))
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			s.logger.Warn("failed to write backup",
				"resource", snap.res.name(),
				"path", dst,
				"error", err,
			)
			continue
		}
		s.metrics.backups.Inc()
	}
}

func backupName(resource, stamp string, seq uint64) string {
	return fmt.Sprintf("%s-%s-%06d.json", resource, stamp, seq)
}

// corruptTag marks preserved copies of unparseable files. PruneBackups
// never removes them.
const corruptTag = "corrupt"

// quarantine keeps the raw bytes of a collection file that failed to parse
// as backups/<name>-corrupt-<stamp>.json.
func (s *Store) quarantine(res resource, data []byte) {
	stamp := s.now().UTC().Format(backupStampLayout)
	name := fmt.Sprintf("%s-%s-%s.json", res.name(), corruptTag, stamp)
	dst := filepath.Join(s.dir, backupDirName, name)

	if err := os.WriteFile(dst, data, 0o600); err != nil {
		s.logger.Error("failed to preserve corrupt resource",
			"resource", res.name(),
			"path", dst,
			"error", err,
		)
		return
	}
	s.logger.Warn("preserved corrupt resource", "resource", res.name(), "path", dst)
}

// Quarantined lists the preserved corrupt copies of the named collection,
// oldest first.
func (s *Store) Quarantined(resource string) ([]string, error) {
	return s.listBackups(resource+"-"+corruptTag+"-", "")
}

// Backups lists the backup files of the named collection, oldest first.
// Preserved corrupt copies are not included.
func (s *Store) Backups(resource string) ([]string, error) {
	return s.listBackups(resource+"-", resource+"-"+corruptTag+"-")
}

func (s *Store) listBackups(prefix, exclude string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, backupDirName))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		if exclude != "" && strings.HasPrefix(name, exclude) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(s.dir, backupDirName, n)
	}
	return paths, nil
}

// PruneBackups keeps the newest keep backups per collection. keep <= 0
// disables pruning.
func (s *Store) PruneBackups(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	var (
		removed int
		errs    []error
	)
	for _, res := range s.resources() {
		paths, err := s.Backups(res.name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(paths) <= keep {
			continue
		}
		for _, p := range paths[:len(paths)-keep] {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}
	return removed, errors.Join(errs...)
}
