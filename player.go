// SPDX-License-Identifier: EPL-2.0

package soundmix

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/soundmix/mixer"
)

// DefaultSampleRate is the output device rate in Hz. Every store is
// resampled against this rate at mix time, so files of any native rate
// play correctly.
const DefaultSampleRate = 48000

// Options are the playback settings for one Play call. The zero value
// is silent and frozen; start from DefaultOptions and override fields,
// or pass nil to Play for the defaults.
type Options struct {
	// Volume is the amplitude scale, 1 plays the file as decoded.
	Volume float64
	// Pitch is the playback speed, 1 plays at the native rate.
	Pitch float64
	// Pan is the stereo balance in [-1, 1], 0 keeps both channels as-is.
	Pan float64
	// ID addresses the voice in Stop/Query; empty means the source path.
	ID string
	// Loop wraps playback around at the end of the file.
	Loop bool
}

// DefaultOptions returns {Volume: 1, Pitch: 1, Pan: 0, ID: "", Loop: false}.
func DefaultOptions() *Options {
	return &Options{Volume: 1, Pitch: 1}
}

// Player ties the sample library, the mixer and the output device
// together. One Player owns one device stream; create it once at
// startup and Close it at teardown.
//
// If the output device cannot be opened the Player still works as a
// control surface — Play, Stop and Query behave normally, no audio is
// produced, and Enabled reports false. That keeps a game running on a
// machine with no audio hardware.
type Player struct {
	lib *Library
	mix *mixer.Mixer

	ctx       *oto.Context
	stream    *oto.Player
	deviceErr error

	mtx     sync.Mutex
	started bool
}

// NewPlayer opens the output device at DefaultSampleRate (stereo,
// float32) and starts the stream. Device failure degrades to a disabled
// player, see Player.
func NewPlayer() *Player {
	p := &Player{
		lib: NewLibrary(),
		mix: mixer.NewMixer(DefaultSampleRate),
	}

	op := &oto.NewContextOptions{
		SampleRate:   DefaultSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		p.deviceErr = err
		return p
	}
	<-ready

	p.ctx = ctx
	p.stream = ctx.NewPlayer(&mixerReader{mix: p.mix})
	p.stream.Play()
	p.started = true

	return p
}

// Enabled reports whether the output device was opened.
func (p *Player) Enabled() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.stream != nil
}

// DeviceErr returns the device open error when the player is disabled.
func (p *Player) DeviceErr() error { return p.deviceErr }

// Play loads path (cached after the first call) and starts a voice with
// the given options; nil means DefaultOptions. The returned voice can be
// automated directly, or addressed later through Stop and Query by its
// id. Several voices may play the same id at once.
func (p *Player) Play(path string, opts *Options) (*mixer.Voice, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	store, err := p.lib.Load(path)
	if err != nil {
		return nil, err
	}

	id := opts.ID
	if id == "" {
		id = path
	}

	v := p.mix.Play(store, id, mixer.Params{
		Volume: opts.Volume,
		Pitch:  opts.Pitch,
		Pan:    opts.Pan,
		Loop:   opts.Loop,
	})
	return v, nil
}

// Stop fades out and removes every voice with the given id.
func (p *Player) Stop(id string) {
	p.mix.Stop(id)
}

// Query returns all active voices with the given id.
func (p *Player) Query(id string) []*mixer.Voice {
	return p.mix.Query(id)
}

// QueryOne returns the oldest active voice with the given id.
func (p *Player) QueryOne(id string) (*mixer.Voice, error) {
	return p.mix.QueryOne(id)
}

// Mixer exposes the underlying mixer, mainly for offline rendering and
// diagnostics.
func (p *Player) Mixer() *mixer.Mixer { return p.mix }

// Library exposes the sample library, e.g. to register extra decoders
// or preload files during a loading screen.
func (p *Player) Library() *Library { return p.lib }

// Close stops the device stream. Control calls keep working afterwards
// but produce no output.
func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.stream == nil {
		return nil
	}

	err := p.stream.Close()
	p.stream = nil
	p.started = false
	return err
}

// mixerReader is the device callback: oto pulls little-endian float32
// bytes from it on the stream goroutine, and every Read is one mixer
// tick.
type mixerReader struct {
	mix *mixer.Mixer
}

const bytesPerFrame = 8 // 2 channels * 4 bytes

func (r *mixerReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	block := r.mix.Tick(frames)
	for i, s := range block {
		binary.LittleEndian.PutUint32(p[4*i:4*i+4], math.Float32bits(s))
	}

	return frames * bytesPerFrame, nil
}
