// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio streams.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// The decoder always produces stereo 16-bit PCM at the file's sample
// rate, exposed as an audio.Source of float32 samples.
package mp3
