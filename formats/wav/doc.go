// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM 16-bit WAV files.
//
// It uses the github.com/go-audio library for robust WAV file handling
// on the decode side; WritePCM16 writes canonical 44-byte-header PCM
// files directly.
package wav
