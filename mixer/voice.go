// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"sync"
)

// Params are the initial playback settings of a voice. The zero value is
// a silent, frozen voice; callers normally want Volume and Pitch at 1.
type Params struct {
	Volume float64
	Pitch  float64
	Pan    float64
	Loop   bool
}

// Voice is one playback cursor over a Store. Each block it generates is
// one crossfade segment: volume and pitch ramp from the value they had
// when the previous block was generated to their current value, so
// control changes between device callbacks never produce steps in the
// output.
//
// ReadFrames runs on the mixing goroutine. The setters, Stop, Time and
// Finished may be called from any goroutine; they touch only the control
// parameters under a short lock and never block frame generation.
type Voice struct {
	store      *Store
	deviceRate int
	id         string

	mtx        sync.Mutex
	cursor     float64 // fractional position in source frames
	volume     float64
	prevVolume float64
	pitch      float64
	prevPitch  float64
	pan        float64
	loop       bool
	removed    bool
}

// NewVoice creates a voice over store at cursor zero, generating for
// deviceRate. id does not have to be unique; the mixer addresses voices
// by id in groups.
func NewVoice(store *Store, deviceRate int, id string, p Params) *Voice {
	return &Voice{
		store:      store,
		deviceRate: deviceRate,
		id:         id,
		volume:     p.Volume,
		prevVolume: p.Volume,
		pitch:      p.Pitch,
		prevPitch:  p.Pitch,
		pan:        p.Pan,
		loop:       p.Loop,
	}
}

// ID returns the voice id given at creation.
func (v *Voice) ID() string { return v.id }

// Store returns the sample store the voice plays.
func (v *Voice) Store() *Store { return v.store }

// Loop reports whether the voice wraps around at the end of its store.
func (v *Voice) Loop() bool { return v.loop }

// SetVolume sets the volume the next block ramps to. Negative values are
// treated as zero at generation time.
func (v *Voice) SetVolume(volume float64) {
	v.mtx.Lock()
	v.volume = volume
	v.mtx.Unlock()
}

// Volume returns the current volume target.
func (v *Voice) Volume() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.volume
}

// SetPitch sets the playback speed the next block ramps to. 1 plays the
// store at its native rate.
func (v *Voice) SetPitch(pitch float64) {
	v.mtx.Lock()
	v.pitch = pitch
	v.mtx.Unlock()
}

// Pitch returns the current pitch target.
func (v *Voice) Pitch() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.pitch
}

// SetPan sets the stereo balance in [-1, 1]; 0 leaves both channels
// untouched.
func (v *Voice) SetPan(pan float64) {
	v.mtx.Lock()
	v.pan = pan
	v.mtx.Unlock()
}

// Pan returns the current pan value.
func (v *Voice) Pan() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.pan
}

// Stop marks the voice for removal. The voice ramps to silence across
// the next generated block and is reaped by the mixer's sweep after that
// block has been mixed; frames already generated are not silenced. With
// very large device blocks the single-block fade can still be audible as
// a quick dip rather than a cut.
func (v *Voice) Stop() {
	v.mtx.Lock()
	v.volume = 0
	v.removed = true
	v.mtx.Unlock()
}

// Time returns the elapsed playback time in seconds at the store's
// native rate.
func (v *Voice) Time() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.cursor / float64(v.store.Rate())
}

// Finished reports whether the voice can be removed: it was stopped, or
// it is not looping and its cursor has passed the last readable frame.
func (v *Voice) Finished() bool {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.finishedLocked()
}

func (v *Voice) finishedLocked() bool {
	if v.removed {
		return true
	}
	return !v.loop && v.cursor > float64(v.store.Len()-1)
}

// ReadFrames generates the next len(dst)/2 stereo frames of the voice
// into dst. The previous-to-current parameter snapshots form the ramp
// endpoints for this block; after generation the snapshots roll forward
// so the next block starts where this one ended.
func (v *Voice) ReadFrames(dst []float32) {
	v.mtx.Lock()
	blk := Block{
		VolumeFrom: v.prevVolume,
		VolumeTo:   v.volume,
		PitchFrom:  v.prevPitch,
		PitchTo:    v.pitch,
		Pan:        v.pan,
		Loop:       v.loop,
		DeviceRate: v.deviceRate,
	}
	cursor := v.cursor
	v.prevVolume = v.volume
	v.prevPitch = v.pitch
	v.mtx.Unlock()

	// Generation math runs without the lock; the cursor is owned by the
	// mixing goroutine between the snapshot above and the store below.
	cursor = v.store.ReadFrames(dst, cursor, blk)
	if blk.Loop {
		length := float64(v.store.Len())
		if length > 0 {
			cursor = math.Mod(cursor, length)
			if cursor < 0 {
				cursor += length
			}
		}
	}

	v.mtx.Lock()
	v.cursor = cursor
	v.mtx.Unlock()
}
