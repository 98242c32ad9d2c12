// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts a source of any channel count to stereo. Mono input
// is duplicated to both channels, stereo passes through untouched, and
// sources with more channels are averaged into a downmix fed to both
// sides.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 2 {
		// Pass-through: already stereo
		return m.src.ReadSamples(dst)
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	maxFrames := len(dst) / 2
	samplesNeeded := maxFrames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 1: // Mono: duplicate to both sides
		for f := range frames {
			idx := f << 1 // f * 2
			dst[idx] = m.tmp[f]
			dst[idx+1] = m.tmp[f]
		}
	default: // Generic path: average everything into both sides
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += m.tmp[baseIdx+c]
			}
			idx := f << 1
			dst[idx] = sum * invChannels
			dst[idx+1] = sum * invChannels
		}
	}

	return frames * 2, err
}
