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

// Package ssi263 models the register interface and phoneme timing of the
// speech chips fitted to the Mockingboard and Phasor cards. Two chips are
// supported: the SSI263, connected directly to the address and data bus of the
// card, and the Votrax SC-01, connected to output register B of the first
// 6522.
//
// No speech is synthesised. A phoneme occupies the chip for a length of time
// that depends on the phoneme and, for the SSI263, on the rate and duration
// settings. When a phoneme completes, the chip requests the next phoneme by
// raising an interrupt on the handshake line of the 6522 that owns it.
package ssi263
