// SPDX-License-Identifier: EPL-2.0

package soundmix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/soundmix/audio"
	"github.com/ik5/soundmix/formats/aiff"
	"github.com/ik5/soundmix/formats/mp3"
	"github.com/ik5/soundmix/formats/vorbis"
	"github.com/ik5/soundmix/formats/wav"
	"github.com/ik5/soundmix/mixer"
)

// Library loads sound files into sample stores and caches them by path.
// A file is decoded once on first use; every later Play of the same path
// shares the cached store. Entries live until the library is dropped.
type Library struct {
	registry *audio.Registry

	mtx    sync.Mutex
	stores map[string]*mixer.Store
}

// NewLibrary creates a library with decoders registered for wav, mp3,
// ogg and aiff files.
func NewLibrary() *Library {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return &Library{
		registry: reg,
		stores:   make(map[string]*mixer.Store),
	}
}

// Register adds or replaces the decoder used for a file extension
// (without the dot).
func (l *Library) Register(format string, d audio.Decoder) {
	l.registry.Register(format, d)
}

// Load returns the store for path, decoding the file on the first call.
// The decoder is selected by file extension. Whatever the file's channel
// count, the store holds stereo frames at the file's native rate.
func (l *Library) Load(path string) (*mixer.Store, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if store, ok := l.stores[path]; ok {
		return store, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := l.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(audio.NewStereoMixer(src), 4096)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	store, err := mixer.NewStore(samples, src.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.stores[path] = store
	return store, nil
}

// Store returns the cached store for path without loading anything.
func (l *Library) Store(path string) (*mixer.Store, bool) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	store, ok := l.stores[path]
	return store, ok
}
