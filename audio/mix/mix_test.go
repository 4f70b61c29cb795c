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

package mix_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/mockingboard/audio/mix"
	"github.com/jetsetilly/mockingboard/test"
)

func TestClip(t *testing.T) {
	test.ExpectEquality(t, mix.Clip(100), int16(100))
	test.ExpectEquality(t, mix.Clip(math.MaxInt16+1), int16(math.MaxInt16))
	test.ExpectEquality(t, mix.Clip(math.MinInt16-1), int16(math.MinInt16))
}

func TestStereo(t *testing.T) {
	left := [][]int16{{1, 2}, {10, 20}}
	right := [][]int16{{-1, -2}, {30000, 30000}}

	dst := make([]int16, 4)
	mix.Stereo(dst, left, right, 2, mix.NoAttenuation)
	test.ExpectEquality(t, dst[0], int16(11))
	test.ExpectEquality(t, dst[1], int16(29999))
	test.ExpectEquality(t, dst[2], int16(22))
	test.ExpectEquality(t, dst[3], int16(29998))

	// clipping
	right = [][]int16{{30000, 30000}, {30000, 30000}}
	mix.Stereo(dst, left, right, 2, mix.NoAttenuation)
	test.ExpectEquality(t, dst[1], int16(math.MaxInt16))
}

func TestPhasorAttenuation(t *testing.T) {
	left := [][]int16{{300}, {300}}
	right := [][]int16{{30000}, {30000}}

	dst := make([]int16, 2)
	mix.Stereo(dst, left, right, 1, mix.PhasorAttenuation)
	test.ExpectEquality(t, dst[0], int16(400))

	// the sum is attenuated before it is clipped
	test.ExpectEquality(t, dst[1], int16(math.MaxInt16))

	right = [][]int16{{15000}, {15000}}
	mix.Stereo(dst, left, right, 1, mix.PhasorAttenuation)
	test.ExpectEquality(t, dst[1], int16(20000))
}

func TestVolume(t *testing.T) {
	sig := []int16{100, -100}
	mix.Volume(sig, 1.0)
	test.ExpectEquality(t, sig[0], int16(100))
	mix.Volume(sig, 0.5)
	test.ExpectEquality(t, sig[0], int16(50))
	test.ExpectEquality(t, sig[1], int16(-50))
	mix.Volume(sig, 0.0)
	test.ExpectEquality(t, sig[0], int16(0))
}
