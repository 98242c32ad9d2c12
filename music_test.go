// SPDX-License-Identifier: EPL-2.0

package soundmix

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/soundmix/mixer"
)

func TestMusicPlayer_BeatsFollowPlayback(t *testing.T) {
	t.Parallel()

	// 8000 frames at 8000 Hz = 1 second of music
	path := writeWavFixture(t, "theme.wav", 8000, make([]int16, 8000))
	p := newOfflinePlayer(8000)
	music := NewMusicPlayer(p)

	if err := music.Play(path, 120, nil); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if music.BPM() != 120 {
		t.Errorf("BPM() = %v, want 120", music.BPM())
	}

	// Half a second of playback at 120 BPM is one beat
	p.Mixer().Tick(4000)

	beats, err := music.Beats()
	if err != nil {
		t.Fatalf("Beats() error = %v", err)
	}
	if math.Abs(beats-1.0) > 1e-6 {
		t.Errorf("Beats() = %v, want 1.0", beats)
	}
}

func TestMusicPlayer_PlayReplacesTrack(t *testing.T) {
	t.Parallel()

	first := writeWavFixture(t, "first.wav", 8000, make([]int16, 1000))
	second := writeWavFixture(t, "second.wav", 8000, make([]int16, 1000))
	p := newOfflinePlayer(8000)
	music := NewMusicPlayer(p)

	if err := music.Play(first, 100, nil); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := music.Play(second, 140, nil); err != nil {
		t.Fatalf("second Play() error = %v", err)
	}

	// The first track is fading out, the second playing; after one tick
	// only the second remains
	p.Mixer().Tick(64)

	voices := p.Query("music")
	if len(voices) != 1 {
		t.Fatalf("Query(music) returned %d voices, want 1", len(voices))
	}
	if voices[0].Store() != mustStore(t, p, second) {
		t.Error("remaining music voice does not play the new track")
	}
	if music.BPM() != 140 {
		t.Errorf("BPM() = %v, want 140", music.BPM())
	}
}

func TestMusicPlayer_BeatsWithoutTrack(t *testing.T) {
	t.Parallel()

	music := NewMusicPlayer(newOfflinePlayer(8000))

	_, err := music.Beats()
	if !errors.Is(err, mixer.ErrNotFound) {
		t.Errorf("Beats() error = %v, want ErrNotFound", err)
	}
}

func TestMusicPlayer_PlayFailureKeepsTempo(t *testing.T) {
	t.Parallel()

	p := newOfflinePlayer(8000)
	music := NewMusicPlayer(p)

	if err := music.Play("broken.flac", 90, nil); err == nil {
		t.Fatal("Play() succeeded for an unsupported file")
	}
	if music.BPM() != 120 {
		t.Errorf("BPM() = %v, want the untouched default 120", music.BPM())
	}
}

// mustStore fetches the cached store for path.
func mustStore(t *testing.T, p *Player, path string) *mixer.Store {
	t.Helper()

	store, ok := p.Library().Store(path)
	if !ok {
		t.Fatalf("store for %s not cached", path)
	}
	return store
}
