// Package assets loads named images and sounds from a filesystem.
//
// Images decode through the standard image registry (PNG, JPEG, GIF) plus BMP and WebP.
// Audio is WAV, decoded once into an in-memory beep buffer so it can be replayed freely.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when a name has not been loaded
var ErrNotFound = errors.New("asset not found")

// Option configures a Loader
type Option func(*Loader)

// WithLogger logs every completed load at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader is a registry of decoded assets. It is safe for concurrent use.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger

	mu     sync.RWMutex
	images map[string]image.Image
	audio  map[string]*beep.Buffer
}

// NewLoader creates a loader reading from fsys
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:   fsys,
		logger: zap.NewNop(),
		images: make(map[string]image.Image),
		audio:  make(map[string]*beep.Buffer),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadImage decodes the image at path and stores it under name, replacing any previous entry
func (l *Loader) LoadImage(name, path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load image %q: decode %s: %w", name, path, err)
	}

	l.mu.Lock()
	l.images[name] = img
	l.mu.Unlock()

	b := img.Bounds()
	l.logger.Debug("image loaded",
		zap.String("name", name),
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return img, nil
}

// LoadAudio decodes the WAV file at path into a buffer stored under name
func (l *Loader) LoadAudio(name, path string) (*beep.Buffer, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load audio %q: %w", name, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load audio %q: decode %s: %w", name, path, err)
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("load audio %q: stream %s: %w", name, path, err)
	}

	l.mu.Lock()
	l.audio[name] = buffer
	l.mu.Unlock()

	l.logger.Debug("audio loaded",
		zap.String("name", name),
		zap.String("path", path),
		zap.Int("samples", buffer.Len()),
		zap.Int("sample_rate", int(format.SampleRate)),
	)
	return buffer, nil
}

// Image returns a loaded image
func (l *Loader) Image(name string) (image.Image, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	img, ok := l.images[name]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrNotFound)
	}
	return img, nil
}

// Audio returns a loaded sound buffer
func (l *Loader) Audio(name string) (*beep.Buffer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	buf, ok := l.audio[name]
	if !ok {
		return nil, fmt.Errorf("audio %q: %w", name, ErrNotFound)
	}
	return buf, nil
}

// MustImage is Image for callers that have already loaded a manifest
func (l *Loader) MustImage(name string) image.Image {
	img, err := l.Image(name)
	if err != nil {
		panic(err)
	}
	return img
}
