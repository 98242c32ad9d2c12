// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"sync"
)

// Mixer composes the active voices into one stereo output stream. Tick is
// driven by the output device callback; the control operations may be
// called concurrently from application goroutines.
type Mixer struct {
	rate int

	mtx    sync.Mutex
	voices []*Voice

	// Reused by Tick; sized on first use and grown only when a larger
	// block is requested.
	snapshot []*Voice
	out      []float32
	scratch  []float32
}

// NewMixer creates a mixer producing output for deviceRate.
func NewMixer(deviceRate int) *Mixer {
	return &Mixer{rate: deviceRate}
}

// Rate returns the output sample rate in Hz.
func (m *Mixer) Rate() int { return m.rate }

// Play starts a new voice over store at cursor zero and returns it.
// Multiple voices may share an id; Stop and Query address them as a
// group.
func (m *Mixer) Play(store *Store, id string, p Params) *Voice {
	v := NewVoice(store, m.rate, id, p)

	m.mtx.Lock()
	m.voices = append(m.voices, v)
	m.mtx.Unlock()

	return v
}

// Stop marks every active voice with the given id for removal. The
// voices fade across one more block and are reaped on the next Tick.
func (m *Mixer) Stop(id string) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	for _, v := range m.voices {
		if v.id == id {
			v.Stop()
		}
	}
}

// Query returns all active voices with the given id, oldest first. The
// result is empty when none match.
func (m *Mixer) Query(id string) []*Voice {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	var matched []*Voice
	for _, v := range m.voices {
		if v.id == id {
			matched = append(matched, v)
		}
	}
	return matched
}

// QueryOne returns the oldest active voice with the given id, or
// ErrNotFound when there is none.
func (m *Mixer) QueryOne(id string) (*Voice, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	for _, v := range m.voices {
		if v.id == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Len returns the number of active voices.
func (m *Mixer) Len() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.voices)
}

// Tick generates and mixes one output block of the given frame count and
// returns it as interleaved stereo samples (valid until the next Tick).
//
// The voice set is snapshotted under the lock, so voices added or stopped
// concurrently are picked up on a block boundary and no voice is skipped
// or mixed twice. Each voice is mixed additively with incremental
// clipping, and finished voices are swept from the set afterwards. Tick
// never fails; a malformed voice contributes silence at worst.
func (m *Mixer) Tick(frames int) []float32 {
	need := frames * 2
	if cap(m.out) < need {
		m.out = make([]float32, need)
		m.scratch = make([]float32, need)
	}
	m.out = m.out[:need]
	m.scratch = m.scratch[:need]
	for i := range m.out {
		m.out[i] = 0
	}

	m.mtx.Lock()
	m.snapshot = append(m.snapshot[:0], m.voices...)
	m.mtx.Unlock()

	for _, v := range m.snapshot {
		v.ReadFrames(m.scratch)
		mixClipped(m.out, m.scratch)
	}

	m.mtx.Lock()
	kept := m.voices[:0]
	for _, v := range m.voices {
		if !v.Finished() {
			kept = append(kept, v)
		}
	}
	// Drop the tail references so reaped voices can be collected.
	for i := len(kept); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = kept
	m.mtx.Unlock()

	return m.out
}

// mixClipped adds src into dst, clipping only the contribution being
// added so the result stays in [-1, 1] without a loud source eating
// headroom already claimed by a quieter one.
func mixClipped(dst, src []float32) {
	for i := range dst {
		add := src[i]
		if add > 1-dst[i] {
			add = 1 - dst[i]
		} else if add < -1-dst[i] {
			add = -1 - dst[i]
		}
		dst[i] += add
	}
}
