// SPDX-License-Identifier: EPL-2.0

package soundmix

import "sync"

// musicID is the voice id the music player claims for itself.
const musicID = "music"

// MusicPlayer plays one looping music track and converts its elapsed
// playback time into musical beats, so game logic can sync animations
// or events to the soundtrack.
type MusicPlayer struct {
	player *Player

	mtx sync.Mutex
	bpm float64
}

// NewMusicPlayer wraps an existing Player. The music voice plays under
// the id "music"; avoid using that id for effects.
func NewMusicPlayer(p *Player) *MusicPlayer {
	return &MusicPlayer{player: p, bpm: 120}
}

// Play replaces the current track: the previous music voice fades out
// and path starts looping from the beginning at the given tempo. Volume,
// pitch and pan are taken from opts; id and loop are overridden.
func (m *MusicPlayer) Play(path string, bpm float64, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	o.ID = musicID
	o.Loop = true

	m.player.Stop(musicID)
	if _, err := m.player.Play(path, &o); err != nil {
		return err
	}

	m.mtx.Lock()
	m.bpm = bpm
	m.mtx.Unlock()

	return nil
}

// Stop fades out the current track.
func (m *MusicPlayer) Stop() {
	m.player.Stop(musicID)
}

// BPM returns the tempo of the current track.
func (m *MusicPlayer) BPM() float64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.bpm
}

// Beats returns the elapsed musical beats of the current track, or
// mixer.ErrNotFound when no music is playing. A looping track's beat
// count restarts with the track.
func (m *MusicPlayer) Beats() (float64, error) {
	v, err := m.player.QueryOne(musicID)
	if err != nil {
		return 0, err
	}

	m.mtx.Lock()
	bpm := m.bpm
	m.mtx.Unlock()

	return v.Time() * bpm / 60, nil
}
