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

// Package irq combines the interrupt outputs of every 6522 on the card(s) into
// the single IRQ line of the host CPU. The 6522 IRQ outputs are open-drain and
// are wired together, so the CPU line is asserted if any source is asserting.
//
// A source that stops asserting must not deassert the line if another source
// is still asserting. For this reason Recompute() always consults every
// source.
package irq
