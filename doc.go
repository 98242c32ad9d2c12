// SPDX-License-Identifier: EPL-2.0

// Package soundmix plays many independent sounds at once through a
// single real-time stereo output stream, aimed at games and other
// interactive applications.
//
// # Supported Formats
//
// The library decodes the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
//	player := soundmix.NewPlayer()
//	defer player.Close()
//
//	// Fire-and-forget effect with default settings
//	player.Play("jump.wav", nil)
//
//	// Looping ambience, quiet and panned left
//	opts := soundmix.DefaultOptions()
//	opts.Volume = 0.4
//	opts.Pan = -0.5
//	opts.Loop = true
//	opts.ID = "ambience"
//	player.Play("wind.ogg", opts)
//
//	// Later
//	player.Stop("ambience")
//
// Files are decoded on first use and cached; playing the same file a
// hundred times shares one decoded buffer.
//
// # Live Control
//
// Play returns the voice, whose volume, pitch and pan can be automated
// from the game loop. Changes are crossfaded over the next device block,
// so stepping a value every frame produces smooth sweeps:
//
//	v, _ := player.Play("engine.wav", opts)
//	v.SetPitch(1 + speed*0.5)
//
// # Music and Tempo
//
// MusicPlayer loops one soundtrack and reports elapsed musical beats:
//
//	music := soundmix.NewMusicPlayer(player)
//	music.Play("theme.ogg", 128, nil)
//	beats, _ := music.Beats()
//
// # Offline Rendering
//
// Render drives a mixer without a device and writes the mix as a WAV
// file, which is also how the output path is tested:
//
//	m := mixer.NewMixer(48000)
//	m.Play(store, "fx", mixer.Params{Volume: 1, Pitch: 1})
//	soundmix.Render(f, m, 48000, 4096)
//
// The core building blocks live in the mixer subpackage; decoding lives
// in audio and formats. See those packages for the low-level API.
package soundmix
