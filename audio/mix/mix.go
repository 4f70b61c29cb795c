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

// Package mix combines the voices of the sound generators into an interleaved
// stereo signal.
//
// The voices of the first and third generators are summed for the left
// channel and the voices of the second and fourth generators are summed for
// the right channel. The Phasor drives four generators into the same output
// stage as the Mockingboard drives two and so the sum is attenuated by a
// third.
package mix

import "math"

// PhasorAttenuation is applied to the mixed signal of a Phasor card.
const PhasorAttenuation = 2.0 / 3.0

// NoAttenuation is applied to the mixed signal of a Mockingboard.
const NoAttenuation = 1.0

// Clip an accumulated sample value to the range of an int16.
func Clip(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Stereo sums the voices in left and the voices in right for n samples and
// interleaves them into dst. The dst slice must have room for 2*n values and
// every voice must have at least n samples.
func Stereo(dst []int16, left [][]int16, right [][]int16, n int, attenuation float64) {
	for i := 0; i < n; i++ {
		var l, r int
		for _, v := range left {
			l += int(v[i])
		}
		for _, v := range right {
			r += int(v[i])
		}
		if attenuation != NoAttenuation {
			l = int(math.Round(float64(l) * attenuation))
			r = int(math.Round(float64(r) * attenuation))
		}
		dst[i*2] = Clip(l)
		dst[i*2+1] = Clip(r)
	}
}

// Volume scales every value in the interleaved signal. The volume is in the
// range 0.0 to 1.0.
func Volume(sig []int16, volume float64) {
	if volume >= 1.0 {
		return
	}
	if volume <= 0.0 {
		clear(sig)
		return
	}
	for i := range sig {
		sig[i] = int16(float64(sig[i]) * volume)
	}
}
