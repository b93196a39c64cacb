// Package voicedir implements the voice catalog over a flat directory of
// audio files. The directory is both the index and the payload store: one
// <name>.wav per voice, no manifest.
package voicedir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const voiceExt = ".wav"

type Catalog struct {
	dir string
	log *zap.Logger
}

func New(dir string, log *zap.Logger) *Catalog {
	return &Catalog{
		dir: dir,
		log: log,
	}
}

func (c *Catalog) List() []string {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Warn("could not list voice directory",
				zap.String("dir", c.dir), zap.Error(err))
		}
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), voiceExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return names
}

// Exists checks only the canonical <name>.wav path that Save produces. A
// hand-dropped file with an uppercase extension shows up in List but does
// not reserve its name here.
func (c *Catalog) Exists(name string) bool {
	info, err := os.Stat(c.voicePath(name))
	return err == nil && info.Mode().IsRegular()
}

// Save writes the sample to a temp file first and renames it into place, so
// a half-written voice never shows up in List.
func (c *Catalog) Save(name string, payload []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create voice directory: %w", err)
	}

	tmp := filepath.Join(c.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write voice sample: %w", err)
	}

	if err := os.Rename(tmp, c.voicePath(name)); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			c.log.Warn("could not remove temp voice file",
				zap.String("path", tmp), zap.Error(rmErr))
		}
		return fmt.Errorf("rename voice sample: %w", err)
	}
	return nil
}

func (c *Catalog) voicePath(name string) string {
	return filepath.Join(c.dir, name+voiceExt)
}
