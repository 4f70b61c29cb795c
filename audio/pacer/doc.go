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

// Package pacer converts the register writes made to the sound generators
// into blocks of samples and keeps the blocks flowing into a sound buffer at
// the rate the buffer is being played.
//
// The pacer is pumped whenever timer 1 of a 6522 underflows, or periodically
// when no timer is running. The number of samples produced by a pump is
// derived from the time since the previous pump. An error term nudges the
// number of samples up or down so that the distance between the pacer's
// write position and the play cursor of the buffer stays between a quarter
// and a half of the buffer.
package pacer
