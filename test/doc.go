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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test. Demand functions should be
// used when a value is used in further tests and so must be correct.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The supported types are bool and error. For the error
// type, nil is a success value. This may not be how we want to interpret nil
// in all situations but because of how errors usually work we need to
// interpret nil in this way.
//
// All Expect and Demand functions accept optional tags. The tags are printed
// at the start of a failure message and are useful when a test is performed
// inside a loop:
//
//	for i := range 4 {
//		test.ExpectEquality(t, via[i].IER(), 0x80, "via", i)
//	}
//
// The RingWriter type implements io.Writer and is useful for capturing the
// most recent output of a logger.
package test
