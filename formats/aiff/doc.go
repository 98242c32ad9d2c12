// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio files.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Only 16-bit PCM is supported.
package aiff
