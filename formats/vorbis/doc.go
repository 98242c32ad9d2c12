// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio streams.
//
// This package uses github.com/jfreymuth/oggvorbis, which already
// produces float32 samples, so decoding is a thin adapter to the
// audio.Source interface.
package vorbis
