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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are typed (Bool, Int, Float and String). A
// String may have a hook function that can reject a new value.
//
// The Disk type stores preference values to a file in the following format:
//
//	*** do not edit this file by hand while the emulator is running ***
//	mockingboard.pacer.errorinc :: 20
//	mockingboard.variant :: PHASOR
//
// Preference values can also be set on the command line. The command line
// stack is pushed with a string of key/value pairs and any value matching a
// key added to a Disk will override the value in the file:
//
//	prefs.PushCommandLineStack("mockingboard.volume::0.5; mockingboard.variant::PHASOR")
//
// Keys are dot separated and by convention begin with the name of the
// component.
package prefs
