// SPDX-License-Identifier: EPL-2.0

// Package mixer implements real-time mixing of independent playback voices
// into a single stereo output stream.
//
// This package contains the core playback building blocks:
//   - Store: an immutable decoded sample buffer shared by voices
//   - Voice: one playback cursor with click-free volume/pitch crossfades
//   - Mixer: the per-callback mixing loop over the active voice set
//
// # Sample Format
//
// All buffers are interleaved stereo float32 in the range [-1.0, 1.0].
// One frame is a left/right pair, so a buffer holding n frames has 2*n
// values. This matches the format the output device consumes and keeps
// the mixing loop free of per-sample conversions.
//
// # Stores and Voices
//
// A Store is created once per decoded sound and never mutated:
//
//	store, err := mixer.NewStore(samples, 44100)
//
// Any number of voices may play the same store concurrently, each with
// its own cursor, volume, pitch, pan and loop setting:
//
//	m := mixer.NewMixer(48000)
//	v := m.Play(store, "explosion", mixer.Params{Volume: 0.8, Pitch: 1})
//
// # Crossfade Ramps
//
// Volume and pitch changes never jump. Each voice remembers the value a
// parameter had at the start of the previous block and ramps linearly to
// the current value across the next block, so control automation from a
// game loop produces no clicks regardless of when it happens relative to
// the device callback.
//
// # The Tick Loop
//
// Mixer.Tick is the real-time entry point, called once per device block:
//
//	block := m.Tick(frameCount)
//
// It mixes every active voice additively with incremental clipping and
// then removes finished voices. Tick never fails and performs no
// allocation after the first call at a steady block size.
//
// # Concurrency
//
// Tick is expected to run on the device callback goroutine. Play, Stop,
// Query and the per-voice setters may be called from any other goroutine;
// they synchronize with Tick only around the voice collection and each
// voice's control parameters, never across the frame generation math.
package mixer
