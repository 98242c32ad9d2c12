// SPDX-License-Identifier: EPL-2.0

package soundmix_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/soundmix"
	"github.com/ik5/soundmix/mixer"
)

// Example_offlineMix composes voices without an output device and
// bounces the result to a WAV in memory.
func Example_offlineMix() {
	samples := make([]float32, 2*48000)
	for i := range samples {
		samples[i] = 0.2
	}
	store, _ := mixer.NewStore(samples, 48000)

	m := mixer.NewMixer(48000)
	m.Play(store, "pad", mixer.Params{Volume: 1, Pitch: 1})
	m.Play(store, "pad", mixer.Params{Volume: 0.5, Pitch: 1, Pan: 0.5})

	out := new(bytes.Buffer)
	if err := soundmix.Render(out, m, 4800, 1024); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Printf("rendered %d bytes\n", out.Len())
	// Output: rendered 19244 bytes
}

// Example_options shows the playback settings for one Play call.
func Example_options() {
	opts := soundmix.DefaultOptions()
	opts.Volume = 0.8
	opts.Pitch = 1.25
	opts.Pan = -0.3
	opts.ID = "footsteps"
	opts.Loop = true

	fmt.Printf("%+v\n", *opts)
	// Output: {Volume:0.8 Pitch:1.25 Pan:-0.3 ID:footsteps Loop:true}
}
