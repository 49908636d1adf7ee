package assets

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Manifest maps asset names to paths inside the loader's filesystem
type Manifest struct {
	Images map[string]string `yaml:"images"`
	Audio  map[string]string `yaml:"audio"`
}

// Len returns the number of entries in the manifest
func (m Manifest) Len() int {
	return len(m.Images) + len(m.Audio)
}

// ParseManifest decodes a YAML manifest:
//
//	images:
//	  player: sprites/player.png
//	audio:
//	  jump: sfx/jump.wav
func ParseManifest(r io.Reader) (Manifest, error) {
	var m Manifest

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// maxParallelLoads bounds the number of files decoded at once
const maxParallelLoads = 8

// LoadManifest loads every entry of m concurrently and returns the first error.
// Entries that finished before a failure stay loaded.
func (l *Loader) LoadManifest(ctx context.Context, m Manifest) error {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelLoads)

	for name, path := range m.Images {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := l.LoadImage(name, path)
			return err
		})
	}

	for name, path := range m.Audio {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := l.LoadAudio(name, path)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		l.logger.Warn("manifest load failed", zap.Error(err))
		return err
	}

	l.logger.Info("manifest loaded", zap.Int("assets", m.Len()))
	return nil
}
