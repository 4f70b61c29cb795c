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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be split into modes, each mode having its own set of
// flags. For example:
//
//	mockingboard -log PLAY -card phasor -seconds 10 tune.yaml
//
// In the above, -log is a flag of the top level, PLAY is a sub-mode and
// -card and -seconds are flags of the PLAY mode.
//
// Usage is similar to the flag package except that arguments are given with
// NewArgs() and each mode is started with NewMode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "DUMP")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		card := md.AddEnum("card", "mockingboard", []string{"mockingboard", "phasor"}, "sound card")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default and is selected if
// the next argument is not one of the listed sub-modes. Sub-mode comparison is
// case insensitive.
//
// Help is printed automatically when the -help flag is encountered. The help
// message lists the flags for the current mode and the available sub-modes.
package modalflag
