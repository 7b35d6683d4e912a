// Package audio plays background music and short sound effects.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// BGM
	bgmStreamer beep.StreamSeekCloser
	bgmCtrl     *beep.Ctrl
	bgmVolume   *effects.Volume
	bgmName     string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	bgmVolLevel  float64
	sfxVolLevel  float64

	// Decoded sound effects by name, mixed concurrently
	sounds   map[string]*beep.Buffer
	sfxMixer *beep.Mixer
}

// New creates a new audio manager. Nothing plays until Init.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		bgmVolLevel:  0.7,
		sfxVolLevel:  1.0,
		sounds:       make(map[string]*beep.Buffer),
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopBGMInternal()
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateBGMVolume()
}

// SetBGMVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetBGMVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bgmVolLevel = clamp(vol, 0, 1)
	m.updateBGMVolume()
}

// SetSFXVolume sets the sound effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// Volumes returns the master, music and effect volumes.
func (m *Manager) Volumes() (master, bgm, sfx float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume, m.bgmVolLevel, m.sfxVolLevel
}

func (m *Manager) updateBGMVolume() {
	if m.bgmVolume == nil {
		return
	}
	m.bgmVolume.Volume, m.bgmVolume.Silent = level(m.masterVolume * m.bgmVolLevel)
}

// level converts a 0-1 volume to the decibel setting of effects.Volume.
func level(vol float64) (db float64, silent bool) {
	if vol <= 0 {
		return volumeToDb(vol), true
	}
	return volumeToDb(vol), false
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0 dB, 0.5 about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// decode reads WAV data and resamples it to the output rate.
func (m *Manager) decode(data []byte) (beep.StreamSeekCloser, beep.Streamer, beep.Format, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("decode wav: %w", err)
	}
	if format.SampleRate == m.sampleRate {
		return streamer, streamer, format, nil
	}
	return streamer, beep.Resample(4, format.SampleRate, m.sampleRate, streamer), format, nil
}

// LoadSFX decodes a WAV sound effect and keeps it under name. Loading does
// not need an open device.
func (m *Manager) LoadSFX(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	src, resampled, format, err := m.decode(data)
	if err != nil {
		return fmt.Errorf("sound %s: %w", name, err)
	}
	defer src.Close()

	format.SampleRate = m.sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(resampled)
	m.sounds[name] = buf
	return nil
}

// HasSFX reports whether a sound effect is loaded.
func (m *Manager) HasSFX(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sounds[name]
	return ok
}

// SFXLength returns the duration of a loaded sound effect.
func (m *Manager) SFXLength(name string) (time.Duration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	buf, ok := m.sounds[name]
	if !ok {
		return 0, false
	}
	return m.sampleRate.D(buf.Len()), true
}

// PlaySFX mixes a loaded sound effect into the output.
func (m *Manager) PlaySFX(name string) error {
	m.mu.RLock()
	initialized := m.initialized
	buf, ok := m.sounds[name]
	vol := m.masterVolume * m.sfxVolLevel
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}
	if !ok {
		return fmt.Errorf("sound %s not loaded", name)
	}

	db, silent := level(vol)
	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   db,
		Silent:   silent,
	})
	speaker.Unlock()
	return nil
}

// PlayBGM plays background music from WAV data, looping if loop is set.
func (m *Manager) PlayBGM(data []byte, name string, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopBGMInternal()

	streamer, resampled, _, err := m.decode(data)
	if err != nil {
		return fmt.Errorf("music %s: %w", name, err)
	}

	var s beep.Streamer = resampled
	if loop {
		s = &loopStreamer{streamer: streamer, resampled: resampled}
	}

	m.bgmCtrl = &beep.Ctrl{Streamer: s}
	m.bgmVolume = &effects.Volume{Streamer: m.bgmCtrl, Base: 2}
	m.updateBGMVolume()
	m.bgmStreamer = streamer
	m.bgmName = name

	speaker.Play(m.bgmVolume)
	return nil
}

// StopBGM stops the current background music.
func (m *Manager) StopBGM() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopBGMInternal()
}

func (m *Manager) stopBGMInternal() {
	if m.bgmCtrl == nil {
		return
	}
	speaker.Lock()
	m.bgmCtrl.Paused = true
	m.bgmCtrl.Streamer = nil
	speaker.Unlock()

	if m.bgmStreamer != nil {
		m.bgmStreamer.Close()
		m.bgmStreamer = nil
	}
	m.bgmCtrl = nil
	m.bgmVolume = nil
	m.bgmName = ""
}

// BGM returns the name of the current music, or "".
func (m *Manager) BGM() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bgmName
}

// loopStreamer rewinds its source when it runs out.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.streamer.Seek(0); err != nil {
				return filled, filled > 0
			}
			if n == 0 && l.streamer.Len() == 0 {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
