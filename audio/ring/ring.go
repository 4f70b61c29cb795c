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

// Package ring implements a looping buffer of stereo frames with a play
// cursor and a write cursor, in the manner of a hardware sound buffer.
//
// The play cursor advances as frames are consumed by an audio device (via
// Read() or ReadFrames()). The write cursor is a fixed number of frames ahead
// of the play cursor and marks the earliest position that is safe to write to.
// Frames are written by locking a region of the buffer, copying into the
// returned slices and unlocking. A region that crosses the end of the buffer
// is returned as two slices.
//
// Consumed frames are cleared so that a producer that falls behind results in
// silence rather than a repeat of old audio.
package ring

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jetsetilly/mockingboard/audio/mix"
	"github.com/jetsetilly/mockingboard/curated"
)

// Sentinel error patterns.
const (
	RingError = "ring: %v"
)

// number of values in a frame
const channels = 2

// Ring is the looping buffer. Size and cursor positions are measured in
// frames.
type Ring struct {
	crit sync.Mutex

	data []int16
	size int
	play int
	lead int

	// a region is locked between Lock() and Unlock(). the lock is on the
	// critical section
	locked bool

	volume float64
	muted  bool

	// the number of frames consumed since creation
	consumed uint64
}

// NewRing is the preferred method of initialisation for the Ring type. The
// size is the number of frames in the buffer and lead is the distance in
// frames of the write cursor from the play cursor.
func NewRing(size int, lead int) (*Ring, error) {
	if size <= 0 {
		return nil, curated.Errorf(RingError, fmt.Sprintf("illegal size (%d)", size))
	}
	if lead < 0 || lead >= size {
		return nil, curated.Errorf(RingError, fmt.Sprintf("illegal write cursor lead (%d)", lead))
	}
	return &Ring{
		data:   make([]int16, size*channels),
		size:   size,
		lead:   lead,
		volume: 1.0,
	}, nil
}

func (r *Ring) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return fmt.Sprintf("play=%d write=%d size=%d", r.play, (r.play+r.lead)%r.size, r.size)
}

// Size returns the number of frames in the buffer.
func (r *Ring) Size() int {
	return r.size
}

// Cursors returns the positions of the play cursor and the write cursor.
func (r *Ring) Cursors() (int, int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()
	if r.locked {
		return 0, 0, curated.Errorf(RingError, "buffer is locked")
	}
	return r.play, (r.play + r.lead) % r.size, nil
}

// Lock a region of n frames starting at offset. The returned slices are
// interleaved stereo values and are only valid until Unlock() is called. The
// second slice is empty unless the region crosses the end of the buffer.
//
// The play cursor does not advance while a region is locked.
func (r *Ring) Lock(offset int, n int) ([]int16, []int16, error) {
	if offset < 0 || offset >= r.size {
		return nil, nil, curated.Errorf(RingError, fmt.Sprintf("offset out of range (%d)", offset))
	}
	if n < 0 || n > r.size {
		return nil, nil, curated.Errorf(RingError, fmt.Sprintf("length out of range (%d)", n))
	}

	r.crit.Lock()
	if r.locked {
		r.crit.Unlock()
		return nil, nil, curated.Errorf(RingError, "buffer is already locked")
	}
	r.locked = true

	end := offset + n
	if end <= r.size {
		return r.data[offset*channels : end*channels], r.data[:0], nil
	}
	return r.data[offset*channels:], r.data[:(end-r.size)*channels], nil
}

// Unlock a region previously returned by Lock().
func (r *Ring) Unlock(a []int16, b []int16) error {
	if !r.locked {
		return curated.Errorf(RingError, "buffer is not locked")
	}
	r.locked = false
	r.crit.Unlock()
	return nil
}

// SetVolume of frames as they are consumed. Clamped to the range 0.0 to 1.0.
func (r *Ring) SetVolume(v float64) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.volume = min(1.0, max(0.0, v))
}

// Mute causes consumed frames to be silent. Frames in the buffer are still
// consumed.
func (r *Ring) Mute(muted bool) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.muted = muted
}

// Consumed returns the number of frames consumed since the ring was created.
func (r *Ring) Consumed() uint64 {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.consumed
}

// ReadFrames copies frames at the play cursor into dst and advances the play
// cursor. The number of frames read is returned.
func (r *Ring) ReadFrames(dst []int16) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := len(dst) / channels
	for i := 0; i < n; i++ {
		p := r.play * channels
		dst[i*channels] = r.data[p]
		dst[i*channels+1] = r.data[p+1]
		r.data[p] = 0
		r.data[p+1] = 0
		r.play++
		if r.play >= r.size {
			r.play = 0
		}
	}
	r.consumed += uint64(n)

	if r.muted {
		clear(dst[:n*channels])
	} else {
		mix.Volume(dst[:n*channels], r.volume)
	}

	return n
}

// Read implements the io.Reader interface. Frames are encoded as signed
// 16bit little-endian values, left channel first. Read never fails and
// always fills p to a whole number of frames.
func (r *Ring) Read(p []byte) (int, error) {
	frames := make([]int16, len(p)/(channels*2)*channels)
	n := r.ReadFrames(frames)
	for i, v := range frames[:n*channels] {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(v))
	}
	return n * channels * 2, nil
}
