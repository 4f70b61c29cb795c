// This file is part of Mockingboard.
//
// Mockingboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mockingboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mockingboard.  If not, see <https://www.gnu.org/licenses/>.

// Package otoplayer plays the output of the sound card using the oto library.
// oto pulls audio from the source as the device requires it, so the source is
// read from a goroutine owned by oto.
package otoplayer

import (
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/logger"
)

// the amount of audio buffered by the device. short buffers reduce latency
// but risk underruns
const bufferSize = 40 * time.Millisecond

// Player pulls 16 bit stereo samples from a reader and plays them.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The source must produce little-endian, signed 16 bit, interleaved stereo
// samples at the sample rate. Playback starts immediately.
//
// Only one Player should be created in the lifetime of the program.
func NewPlayer(src io.Reader, sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, curated.Errorf("otoplayer: %v", err)
	}

	<-ready

	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(src),
	}
	p.player.Play()

	logger.Logf(logger.Allow, "otoplayer", "playing at %dHz", sampleRate)

	return p, nil
}

// Suspend playback. The source is not read while playback is suspended.
func (p *Player) Suspend() error {
	if err := p.ctx.Suspend(); err != nil {
		return curated.Errorf("otoplayer: %v", err)
	}
	return nil
}

// Resume playback after a call to Suspend().
func (p *Player) Resume() error {
	if err := p.ctx.Resume(); err != nil {
		return curated.Errorf("otoplayer: %v", err)
	}
	return nil
}

// Close the player.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return curated.Errorf("otoplayer: %v", err)
	}
	return nil
}
