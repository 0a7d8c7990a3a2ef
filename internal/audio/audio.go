// Package audio plays one-shot sounds panned by where they happen in the
// level relative to the camera.
package audio

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Source represents an audio source in the world
type Source struct {
	ID          uint64
	Position    rl.Vector2
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	Spatial     bool
	playing     bool
}

// Manager handles audio playback
type Manager struct {
	mu       sync.Mutex
	listener rl.Vector2
	sources  map[uint64]*Source
	nextID   uint64
}

var globalManager *Manager

// Init opens the audio device. Every other call is a no-op until it has run.
func Init() {
	rl.InitAudioDevice()
	globalManager = &Manager{
		sources: make(map[uint64]*Source),
		nextID:  1,
	}
}

// Close shuts down the audio system
func Close() {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	for _, src := range globalManager.sources {
		rl.UnloadSound(src.Sound)
	}
	globalManager.sources = nil
	globalManager.mu.Unlock()
	globalManager = nil
	rl.CloseAudioDevice()
}

// SetListener moves the point sounds are heard from.
func SetListener(pos rl.Vector2) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.listener = pos
}

// LoadSound loads audio from a file and returns a source ID
func LoadSound(path string) (uint64, bool) {
	if globalManager == nil {
		return 0, false
	}

	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return 0, false
	}

	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	id := globalManager.nextID
	globalManager.nextID++

	globalManager.sources[id] = &Source{
		ID:          id,
		Sound:       sound,
		Volume:      1.0,
		MaxDistance: 30.0,
		Spatial:     true,
	}

	return id, true
}

// PlayAt moves a source to pos and plays it from the start.
func PlayAt(id uint64, pos rl.Vector2) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	src, ok := globalManager.sources[id]
	if !ok {
		return
	}
	src.Position = pos
	apply(src, globalManager.listener)
	rl.PlaySound(src.Sound)
	src.playing = true
}

// Update re-pans playing sources after the listener moved.
func Update() {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	for _, src := range globalManager.sources {
		if !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}
		apply(src, globalManager.listener)
	}
}

func apply(src *Source, listener rl.Vector2) {
	volume, pan := src.Volume, float32(0.5)
	if src.Spatial {
		volume, pan = Spatialize(listener, src.Position, src.Volume, src.MaxDistance)
	}
	rl.SetSoundVolume(src.Sound, volume)
	rl.SetSoundPan(src.Sound, pan)
}

// Spatialize returns volume and pan for a sound at pos. Volume falls off
// linearly to zero at maxDistance. Pan follows raylib's mixer: 1 is the left
// speaker, 0 the right.
func Spatialize(listener, pos rl.Vector2, volume, maxDistance float32) (float32, float32) {
	to := rl.Vector2Subtract(pos, listener)
	distance := rl.Vector2Length(to)
	if maxDistance <= 0 || distance >= maxDistance {
		return 0, 0.5
	}
	volume *= 1 - distance/maxDistance

	pan := float32(0.5)
	if distance > 0.001 {
		pan = rl.Clamp(0.5-to.X/distance*0.5, 0, 1)
	}
	return volume, pan
}
