// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decode-side source abstraction feeding the
// player's sample stores.
//
// # Source Interface
//
// The Source interface is the foundation of the loading pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing the library to
// drain any supported file into an in-memory store without knowing its
// format.
//
// # Channel Conversion
//
// Sample stores are always stereo. StereoMixer adapts any Source to two
// channels:
//
//	stereo := audio.NewStereoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// Mono input is duplicated, stereo passes through, and anything wider is
// averaged into a downmix on both channels.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The library seeds a registry with every built-in format and selects
// the decoder from the file extension.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll drains a
// source to a slice and folds the io.EOF away:
//
//	samples, err := audio.ReadAll(stereo, 4096)
package audio
