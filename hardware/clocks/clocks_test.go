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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/test"
)

func TestCyclesPerSecond(t *testing.T) {
	test.ExpectApproximate(t, clocks.CyclesPerSecond(clocks.NTSC), 1020484.0, 0.5)
	test.ExpectApproximate(t, clocks.CyclesPerSecond(clocks.NTSC)/10, 102048.4, 0.5)
}
