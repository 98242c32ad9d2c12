// SPDX-License-Identifier: EPL-2.0

package mixer

import "time"

// Store is an immutable decoded sound: interleaved stereo float32 frames
// plus the native sample rate of the source material. A Store may be
// referenced by any number of voices at once; it is never copied per
// voice and never mutated after construction.
type Store struct {
	data []float32 // interleaved L/R, len == 2*frames
	rate int
}

// NewStore copies samples into a new Store. samples is interleaved stereo,
// so its length must be even; rate is the native sample rate in Hz.
func NewStore(samples []float32, rate int) (*Store, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(samples)%2 != 0 {
		return nil, ErrOddFrameData
	}

	data := make([]float32, len(samples))
	copy(data, samples)

	return &Store{data: data, rate: rate}, nil
}

// Len returns the number of stereo frames.
func (s *Store) Len() int { return len(s.data) / 2 }

// Rate returns the native sample rate in Hz.
func (s *Store) Rate() int { return s.rate }

// Duration returns the playing time of the store at its native rate and
// unity pitch.
func (s *Store) Duration() time.Duration {
	return time.Duration(float64(s.Len()) / float64(s.rate) * float64(time.Second))
}

// frame returns the stereo pair at index i. The caller guarantees
// 0 <= i < Len().
func (s *Store) frame(i int) (left, right float32) {
	return s.data[2*i], s.data[2*i+1]
}
