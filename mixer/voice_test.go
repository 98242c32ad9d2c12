// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"testing"

	"github.com/ik5/soundmix/internal/audiotest"
)

// constStore builds a store of frames all holding (value, value).
func constStore(t *testing.T, frames, rate int, value float32) *Store {
	t.Helper()

	data := make([]float32, 2*frames)
	for i := range data {
		data[i] = value
	}
	store, err := NewStore(data, rate)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func unityParams() Params {
	return Params{Volume: 1, Pitch: 1}
}

func TestVoice_FirstBlockIsFlat(t *testing.T) {
	t.Parallel()

	store := constStore(t, 100, 8000, 0.5)
	v := NewVoice(store, 8000, "fx", unityParams())

	dst := make([]float32, 20)
	v.ReadFrames(dst)

	// No parameter changed yet, so the first block must not ramp
	for i, s := range dst {
		if !approxEqual(s, 0.5) {
			t.Errorf("dst[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestVoice_VolumeChangeCrossfadesOneBlock(t *testing.T) {
	t.Parallel()

	store := constStore(t, 1000, 8000, 0.5)
	v := NewVoice(store, 8000, "fx", unityParams())

	dst := make([]float32, 20)
	v.ReadFrames(dst)

	// The block after a change ramps from the old value to the new one
	v.SetVolume(0)
	v.ReadFrames(dst)

	if !approxEqual(dst[0], 0.5) {
		t.Errorf("fade start = %v, want 0.5", dst[0])
	}
	if dst[18] >= dst[0] {
		t.Errorf("fade did not descend: start %v, end %v", dst[0], dst[18])
	}
	if !approxEqual(dst[18], 0) {
		t.Errorf("fade end = %v, want ≈0", dst[18])
	}

	// The block after that holds the new value
	v.ReadFrames(dst)
	for i, s := range dst {
		if s != 0 {
			t.Errorf("post-fade dst[%d] = %v, want 0", i, s)
		}
	}
}

func TestVoice_PitchChangeCrossfadesOneBlock(t *testing.T) {
	t.Parallel()

	store := rampStore(t, 1000, 8000, 0.001)
	v := NewVoice(store, 8000, "fx", unityParams())

	dst := make([]float32, 20)
	v.ReadFrames(dst)
	if got, want := v.Time(), 10.0/8000; !approxEqual(float32(got), float32(want)) {
		t.Fatalf("Time() = %v, want %v", got, want)
	}

	// Doubling pitch ramps the advance across the next block, so the
	// cursor lands between 1x and 2x of a plain block
	v.SetPitch(2)
	v.ReadFrames(dst)

	cursorFrames := v.Time() * 8000
	if cursorFrames <= 20 || cursorFrames >= 30 {
		t.Errorf("cursor after pitch ramp = %v frames, want within (20, 30)", cursorFrames)
	}

	// From here on the full doubled rate applies
	v.ReadFrames(dst)
	after := v.Time() * 8000
	if !approxEqual(float32(after-cursorFrames), 20) {
		t.Errorf("steady advance = %v frames, want 20", after-cursorFrames)
	}
}

func TestVoice_LoopKeepsCursorInBounds(t *testing.T) {
	t.Parallel()

	store := constStore(t, 15, 8000, 0.1)
	v := NewVoice(store, 8000, "music", Params{Volume: 1, Pitch: 1, Loop: true})

	dst := make([]float32, 20)
	for range 10 {
		v.ReadFrames(dst)

		frames := v.Time() * 8000
		if frames < 0 || frames >= 15 {
			t.Fatalf("looping cursor out of bounds: %v frames", frames)
		}
		if v.Finished() {
			t.Fatal("looping voice reported finished")
		}
	}
}

func TestVoice_FinishedAfterEndOfData(t *testing.T) {
	t.Parallel()

	store := constStore(t, 5, 8000, 0.1)
	v := NewVoice(store, 8000, "fx", unityParams())

	if v.Finished() {
		t.Fatal("new voice reported finished")
	}

	dst := make([]float32, 20)
	v.ReadFrames(dst)

	if !v.Finished() {
		t.Error("voice not finished after playing past end of data")
	}
}

func TestVoice_StopMarksAndFades(t *testing.T) {
	t.Parallel()

	store := constStore(t, 1000, 8000, 0.5)
	v := NewVoice(store, 8000, "fx", unityParams())

	dst := make([]float32, 20)
	v.ReadFrames(dst)

	v.Stop()

	if !v.Finished() {
		t.Error("stopped voice must report finished")
	}
	if v.Volume() != 0 {
		t.Errorf("Volume() after Stop = %v, want 0", v.Volume())
	}

	// The final block fades to silence instead of cutting
	v.ReadFrames(dst)
	if !approxEqual(dst[0], 0.5) {
		t.Errorf("fade start = %v, want 0.5", dst[0])
	}
	for i := 1; i < 10; i++ {
		if dst[2*i] > dst[2*(i-1)] {
			t.Errorf("fade rises at frame %d", i)
		}
	}
	if !approxEqual(dst[18], 0) {
		t.Errorf("fade end = %v, want ≈0", dst[18])
	}
}

func TestVoice_Accessors(t *testing.T) {
	t.Parallel()

	store := constStore(t, 10, 8000, 0.1)
	v := NewVoice(store, 48000, "steps", Params{Volume: 0.7, Pitch: 1.5, Pan: -0.25, Loop: true})

	if v.ID() != "steps" {
		t.Errorf("ID() = %q, want %q", v.ID(), "steps")
	}
	if v.Store() != store {
		t.Error("Store() returned a different store")
	}
	if !v.Loop() {
		t.Error("Loop() = false, want true")
	}
	if v.Volume() != 0.7 || v.Pitch() != 1.5 || v.Pan() != -0.25 {
		t.Errorf("params = (%v, %v, %v), want (0.7, 1.5, -0.25)",
			v.Volume(), v.Pitch(), v.Pan())
	}

	v.SetVolume(0.2)
	v.SetPitch(0.5)
	v.SetPan(1)
	if v.Volume() != 0.2 || v.Pitch() != 0.5 || v.Pan() != 1 {
		t.Errorf("params after set = (%v, %v, %v), want (0.2, 0.5, 1)",
			v.Volume(), v.Pitch(), v.Pan())
	}
}

func TestVoice_TimeUsesNativeRate(t *testing.T) {
	t.Parallel()

	// 30 device frames of a 16kHz store on an 8kHz device advance the
	// cursor 60 source frames
	store := audiotestStore(t, 16000, 1000)
	v := NewVoice(store, 8000, "fx", unityParams())

	dst := make([]float32, 60)
	v.ReadFrames(dst)

	want := 60.0 / 16000
	if got := v.Time(); !approxEqual(float32(got), float32(want)) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

// audiotestStore drains a silent fixture into a store.
func audiotestStore(t *testing.T, rate, frames int) *Store {
	t.Helper()

	store, err := NewStore(audiotest.StereoRamp(frames, 0, 0), rate)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}
