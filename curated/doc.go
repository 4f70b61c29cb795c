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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns should be
// stored as exported constants in the package that raises them. For example,
// the mockingboard package raises snapshot errors with:
//
//	const SnapshotError = "snapshot: %v"
//
//	return curated.Errorf(SnapshotError, "wrong version")
//
// The caller can then test for the pattern with Is() or, when the error may
// have been wrapped by other curated errors, with Has():
//
//	err := card.LoadSnapshot(r, 4)
//	if curated.Has(err, mockingboard.SnapshotError) {
//		...
//	}
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// a function can wrap an error with its own prefix without worrying about
// whether the error has already been prefixed in the same way. So:
//
//	e := curated.Errorf("wav: %v", curated.Errorf("wav: %v", "file exists"))
//
// will print as:
//
//	wav: file exists
//
// IsAny() answers whether the error was created by Errorf() at all. We think
// of curated errors as 'expected' errors and uncurated errors as
// 'unexpected'.
package curated
