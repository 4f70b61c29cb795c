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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/mockingboard/paths"
	"github.com/jetsetilly/mockingboard/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	test.DemandSuccess(t, os.Mkdir(".mockingboard", 0o700))

	pth, err := paths.ResourcePath("snapshots", "tune.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mockingboard", "snapshots", "tune.yaml"))

	// sub-path has been created
	fi, err := os.Stat(filepath.Join(".mockingboard", "snapshots"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mockingboard", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "phasor")
	test.ExpectSuccess(t, regexp.MustCompile(`^wav_phasor_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("snapshot", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_"))
	test.ExpectSuccess(t, regexp.MustCompile(`^snapshot_\d{8}_\d{6}$`).MatchString(fn))
}
