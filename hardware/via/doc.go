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

// Package via emulates the timers and interrupt logic of the 6522 Versatile
// Interface Adapter, as found on the Mockingboard and Phasor sound cards.
//
// Only the parts of the 6522 that the sound cards make use of are emulated.
// The output register B is used to drive the control lines of the AY-3-8910
// and output register A is connected to the data bus of the AY-3-8910. The
// two timers are used by music players as a periodic interrupt source. The
// shift register is not emulated and the handshaking lines are only used as
// interrupt inputs for the speech chips.
//
// Time is advanced with the Update() function. The timer counters are
// decremented by the number of elapsed cycles and the interrupt flags are
// updated accordingly.
//
// Timer underflow is not detected by Update() alone. When a timer is started
// an event is inserted into the Scheduler to fire when the timer is due to
// underflow. The owner of the VIA is expected to call OnTimer1Event() and
// OnTimer2Event() when those events fire.
//
// Register reads and writes are adjusted by the number of cycles used by the
// CPU instruction performing the access. This is provided by the AccessTiming
// collaborator.
package via
