// Package sound plays named, preloaded sounds through a single beep mixer.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// ErrUnknownSound is returned when a name has not been loaded
var ErrUnknownSound = errors.New("unknown sound")

// resampleQuality is used for buffers whose rate differs from the manager's
const resampleQuality = 4

// Option configures a Manager
type Option func(*Manager)

// WithLogger reports unknown sounds as warnings
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager mixes every loaded sound into one stream. It implements beep.Streamer
// and is normally handed to the speaker with Start; all methods are safe to call
// while the speaker is pulling samples.
type Manager struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	tracks     map[string]*track
	logger     *zap.Logger
}

var _ beep.Streamer = (*Manager)(nil)

// NewManager creates a manager producing samples at sampleRate
func NewManager(sampleRate beep.SampleRate, opts ...Option) *Manager {
	m := &Manager{
		sampleRate: sampleRate,
		mixer:      &beep.Mixer{},
		tracks:     make(map[string]*track),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start initializes the speaker at the manager's sample rate and starts playback
func (m *Manager) Start(bufferSize time.Duration) error {
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m)
	return nil
}

// Load registers buf under name. Loading an existing name replaces it and stops the old sound.
func (m *Manager) Load(name string, buf *beep.Buffer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.tracks[name]; ok {
		t.buffer = buf
		t.stop()
		return
	}

	t := &track{buffer: buf, sampleRate: m.sampleRate}
	m.tracks[name] = t
	m.mixer.Add(t)
}

// Play restarts the sound from the beginning
func (m *Manager) Play(name string) error {
	return m.with(name, func(t *track) { t.start(false) })
}

// Loop plays the sound from the beginning, repeating until stopped
func (m *Manager) Loop(name string) error {
	return m.with(name, func(t *track) { t.start(true) })
}

// Stop pauses the sound and rewinds it
func (m *Manager) Stop(name string) error {
	return m.with(name, func(t *track) { t.stop() })
}

// Pause holds the sound at its current position
func (m *Manager) Pause(name string) error {
	return m.with(name, func(t *track) { t.pause(true) })
}

// Resume continues a paused sound
func (m *Manager) Resume(name string) error {
	return m.with(name, func(t *track) { t.pause(false) })
}

// StopAll silences every sound
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tracks {
		t.stop()
	}
}

// Playing reports whether the sound is currently audible
func (m *Manager) Playing(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tracks[name]
	return ok && t.playing()
}

// Stream mixes the active sounds into samples
func (m *Manager) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, _ := m.mixer.Stream(samples)
	clear(samples[n:])
	return len(samples), true
}

func (m *Manager) Err() error {
	return nil
}

func (m *Manager) with(name string, fn func(t *track)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tracks[name]
	if !ok {
		m.logger.Warn("sound not found", zap.String("name", name))
		return fmt.Errorf("sound %q: %w", name, ErrUnknownSound)
	}

	fn(t)
	return nil
}

// track is a permanent mixer input. It emits silence while stopped so the
// mixer never drops it.
type track struct {
	buffer     *beep.Buffer
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
}

func (t *track) start(loop bool) {
	var s beep.Streamer = t.buffer.Streamer(0, t.buffer.Len())
	if loop {
		s = beep.Loop(-1, t.buffer.Streamer(0, t.buffer.Len()))
	}
	if from := t.buffer.Format().SampleRate; from != t.sampleRate {
		s = beep.Resample(resampleQuality, from, t.sampleRate, s)
	}

	t.ctrl = &beep.Ctrl{Streamer: s}
}

func (t *track) stop() {
	t.ctrl = nil
}

func (t *track) pause(paused bool) {
	if t.ctrl != nil {
		t.ctrl.Paused = paused
	}
}

func (t *track) playing() bool {
	return t.ctrl != nil && !t.ctrl.Paused
}

func (t *track) Stream(samples [][2]float64) (int, bool) {
	if t.ctrl == nil {
		clear(samples)
		return len(samples), true
	}

	n, ok := t.ctrl.Stream(samples)
	if !ok || n < len(samples) {
		clear(samples[n:])
		t.ctrl = nil
	}
	return len(samples), true
}

func (t *track) Err() error {
	return nil
}
