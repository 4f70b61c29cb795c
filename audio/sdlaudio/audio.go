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

// Package sdlaudio plays the output of the sound card using SDL. Unlike oto,
// SDL is pushed to: a goroutine reads from the source and queues the audio
// whenever the amount of queued audio falls below a threshold.
package sdlaudio

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. unfortunately, there's no
// special way (that I know of) that can tells us what the ideal value is. we
// don't want it to be long because we introduce unnecessary lag. by the same
// token we don't want it too short because we will end up queueing too often.
//
// the following value has been discovered through trial and error. the precise
// value is not critical. measured in frames
const bufferLength = 1024

// bytes in a frame of 16 bit stereo audio
const frameSize = 4

// more audio is queued when the amount of queued audio falls below this number
// of buffers
const queueThreshold = 2

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	src    io.Reader
	buffer []uint8

	done    chan bool
	stopped chan bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// source must produce little-endian, signed 16 bit, interleaved stereo
// samples at the sample rate.
func NewAudio(src io.Reader, sampleRate int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		src:     src,
		buffer:  make([]uint8, bufferLength*frameSize),
		done:    make(chan bool),
		stopped: make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	if aud.spec.Freq != spec.Freq {
		logger.Logf(logger.Allow, "sdlaudio", "device frequency is %dHz not %dHz", aud.spec.Freq, spec.Freq)
	}

	go aud.service(sampleRate)

	sdl.PauseAudioDevice(aud.id, false)

	logger.Logf(logger.Allow, "sdlaudio", "playing at %dHz", aud.spec.Freq)

	return aud, nil
}

// service the audio queue. check the queue twice for every buffer played
func (aud *Audio) service(sampleRate int) {
	defer func() {
		aud.stopped <- true
	}()

	rate := float64(bufferLength) / float64(sampleRate) / 2
	dur, _ := time.ParseDuration(fmt.Sprintf("%fs", rate))
	tck := time.NewTicker(dur)
	defer tck.Stop()

	for {
		select {
		case <-aud.done:
			return
		case <-tck.C:
			for sdl.GetQueuedAudioSize(aud.id) < uint32(queueThreshold*len(aud.buffer)) {
				if err := aud.queue(); err != nil {
					logger.Logf(logger.Allow, "sdlaudio", "%v", err)
					break // for loop
				}
			}
		}
	}
}

func (aud *Audio) queue() error {
	n, err := io.ReadFull(aud.src, aud.buffer)
	if err != nil {
		return err
	}
	return sdl.QueueAudio(aud.id, aud.buffer[:n])
}

// Close stops playback and closes the audio device.
func (aud *Audio) Close() error {
	aud.done <- true
	<-aud.stopped
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
