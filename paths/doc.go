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

// Package paths prepares paths to mockingboard resources, such as the
// preferences file and snapshot files.
//
// The ResourcePath() function prepends the resource with the appropriate
// base directory:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory named ".mockingboard" is present in the current directory
// then that is the base path. Otherwise the base path is "mockingboard" in the
// user's config directory, as returned by os.UserConfigDir(). On a modern
// Linux system the above example returns:
//
//	/home/user/.config/mockingboard/preferences
//
// The directory part of the resource is created if it does not exist.
package paths
