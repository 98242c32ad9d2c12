// SPDX-License-Identifier: EPL-2.0

package soundmix

import (
	"fmt"
	"io"

	"github.com/ik5/soundmix/formats/wav"
	"github.com/ik5/soundmix/mixer"
	"github.com/ik5/soundmix/utils"
)

// Render drives the mixer offline for totalFrames frames, blockSize at a
// time, and writes the mix as a 16-bit stereo WAV to w. Useful for
// bouncing a mix to disk or inspecting output in tests; the mixer must
// not be driven by a device stream at the same time.
func Render(w io.Writer, m *mixer.Mixer, totalFrames, blockSize int) error {
	if blockSize <= 0 {
		blockSize = 4096
	}

	pcm16 := make([]int16, 0, totalFrames*2)

	for remaining := totalFrames; remaining > 0; remaining -= blockSize {
		n := min(blockSize, remaining)
		block := m.Tick(n)
		for _, s := range block {
			pcm16 = append(pcm16, utils.Float32ToInt16(s))
		}
	}

	if err := wav.WritePCM16(w, m.Rate(), 2, pcm16); err != nil {
		return fmt.Errorf("writing render: %w", err)
	}

	return nil
}
