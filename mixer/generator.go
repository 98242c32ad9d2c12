// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// Block describes the control ramps applied across one generated block.
// VolumeFrom/PitchFrom are the values at the start of the block and
// VolumeTo/PitchTo the values at its end; both ramp linearly per frame.
// DeviceRate is the output sample rate the block is generated for.
type Block struct {
	VolumeFrom float64
	VolumeTo   float64
	PitchFrom  float64
	PitchTo    float64
	Pan        float64
	Loop       bool
	DeviceRate int
}

// ReadFrames generates exactly len(dst)/2 stereo frames from the store,
// starting at the fractional cursor position, and returns the advanced
// cursor.
//
// The pitch ramp scales the rate of cursor advance per frame, so pitch
// automation changes speed smoothly instead of clicking. Each generated
// position is resolved by linear interpolation between its two
// neighbouring source frames. The volume ramp runs across the produced
// frames and pan redistributes energy between the channels afterwards.
//
// When Loop is set every position is wrapped into [0, Len); otherwise
// positions past the last frame are discarded and the tail of dst is
// padded with silence. The returned cursor is never wrapped — a looping
// caller applies the modulo itself, so one block can straddle the loop
// boundary.
func (s *Store) ReadFrames(dst []float32, cursor float64, blk Block) float64 {
	n := len(dst) / 2
	if n == 0 {
		return cursor
	}
	if s.Len() == 0 {
		zeroFrames(dst, 0)
		return cursor
	}

	length := float64(s.Len())
	last := length - 1 // highest readable position

	// Pitch in source frames per output frame.
	scale := 1.0
	if blk.DeviceRate > 0 {
		scale = float64(s.rate) / float64(blk.DeviceRate)
	}
	p0 := blk.PitchFrom * scale
	p1 := blk.PitchTo * scale

	// First pass: count the positions that survive the end guard, so the
	// volume ramp can run across the produced frames only.
	produced := n
	if !blk.Loop {
		produced = 0
		offset := 0.0
		for i := range n {
			if cursor+offset <= last {
				produced++
			}
			offset += pitchStep(p0, p1, i, n)
		}
	}

	// Negative volume has no meaning; clamp before ramping.
	v0 := math.Max(0, blk.VolumeFrom)
	v1 := math.Max(0, blk.VolumeTo)

	pan := blk.Pan

	// Second pass: resolve, scale and write the surviving positions.
	written := 0
	offset := 0.0
	for i := range n {
		pos := cursor + offset
		offset += pitchStep(p0, p1, i, n)

		if blk.Loop {
			pos = math.Mod(pos, length)
			if pos < 0 {
				pos += length
			}
		} else if pos > last {
			continue
		}

		floor := math.Floor(pos)
		i0 := int(floor)
		i1 := i0 + 1
		if blk.Loop {
			// Interpolate across the loop seam.
			if i1 >= s.Len() {
				i1 = 0
			}
		} else if i1 >= s.Len() {
			i1 = s.Len() - 1
		}
		frac := float32(pos - floor)

		l0, r0 := s.frame(i0)
		l1, r1 := s.frame(i1)
		left := l0 + (l1-l0)*frac
		right := r0 + (r1-r0)*frac

		vol := float32(rampAt(v0, v1, written, produced))
		left *= vol
		right *= vol

		if pan > 0 {
			right += left * float32(pan)
			left *= float32(1 - pan)
		} else if pan < 0 {
			left += right * float32(-pan)
			right *= float32(1 + pan)
		}

		dst[2*written] = left
		dst[2*written+1] = right
		written++
	}

	zeroFrames(dst, written)

	return cursor + offset
}

// pitchStep is the cursor advance for output frame i of n, ramping
// linearly from p0 to p1 across the block. Reverse playback is not
// supported, so a negative step degrades to a hold.
func pitchStep(p0, p1 float64, i, n int) float64 {
	step := rampAt(p0, p1, i, n)
	if step < 0 {
		return 0
	}
	return step
}

// rampAt linearly interpolates from a to b over total points, endpoints
// inclusive. A single-point ramp is just a.
func rampAt(a, b float64, i, total int) float64 {
	if total <= 1 {
		return a
	}
	return a + (b-a)*float64(i)/float64(total-1)
}

// zeroFrames silences dst from frame index from onward.
func zeroFrames(dst []float32, from int) {
	for i := 2 * from; i < len(dst); i++ {
		dst[i] = 0
	}
}
