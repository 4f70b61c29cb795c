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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mockingboard/test"
)

// launchArgs runs the launch function with the arguments. returns the output
// and the exit value requested by launch()
func launchArgs(t *testing.T, args ...string) (string, int) {
	t.Helper()

	// preferences are read from a temporary config directory
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	sync := &mainSync{
		state: make(chan stateRequest, 4),
	}

	var output strings.Builder
	launch(sync, &output, args)

	for {
		state := <-sync.state
		if state.req == reqQuit {
			if state.args == nil {
				return output.String(), 0
			}
			return output.String(), state.args.(int)
		}
	}
}

func TestHelp(t *testing.T) {
	_, exit := launchArgs(t, "-help")
	test.ExpectEquality(t, exit, 0)
}

func TestVersion(t *testing.T) {
	out, exit := launchArgs(t, "-version")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.HasPrefix(out, "Mockingboard"), true)
}

func TestPerformance(t *testing.T) {
	out, exit := launchArgs(t, "PERFORMANCE", "-duration", "100ms")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.Contains(out, "MHz"), true)
}

func TestDump(t *testing.T) {
	out, exit := launchArgs(t, "DUMP", "-cycles", "20000")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.Contains(out, "MOCKINGBOARD"), true)
	test.ExpectEquality(t, strings.Contains(out, "timer device"), true)
}

func TestDumpPhasor(t *testing.T) {
	out, exit := launchArgs(t, "DUMP", "-card", "phasor", "-phasormode", "echo")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.Contains(out, "phasor mode: Echo+"), true)
}

func TestMemviz(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "card.dot")
	_, exit := launchArgs(t, "DUMP", "-cycles", "1000", "-memviz", pth)
	test.ExpectEquality(t, exit, 0)

	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "digraph"), true)
}

func TestSnapshot(t *testing.T) {
	out, exit := launchArgs(t, "SNAPSHOT", "-cycles", "20000")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.Contains(out, "Card: Mockingboard C"), true)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")

	_, exit = launchArgs(t, "SNAPSHOT", "-out", first)
	test.ExpectEquality(t, exit, 0)

	_, exit = launchArgs(t, "SNAPSHOT", "-in", first, "-cycles", "1000", "-out", second)
	test.ExpectEquality(t, exit, 0)

	b, err := os.ReadFile(second)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "Version: 7"), true)

	// snapshot of a mockingboard cannot be loaded into a phasor
	_, exit = launchArgs(t, "SNAPSHOT", "-card", "phasor", "-in", first)
	test.ExpectEquality(t, exit, 20)
}

func TestPlayWav(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "tune.wav")
	out, exit := launchArgs(t, "PLAY", "-output", "wav", "-wav", pth, "-seconds", "0.25")
	test.ExpectEquality(t, exit, 0)
	test.ExpectEquality(t, strings.Contains(out, "playing"), true)

	fi, err := os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fi.Size() > 44, true)
}

func TestErrors(t *testing.T) {
	_, exit := launchArgs(t, "DUMP", "-card", "nonsense")
	test.ExpectEquality(t, exit, 20)

	_, exit = launchArgs(t, "DUMP", "-nonsense")
	test.ExpectEquality(t, exit, 20)

	_, exit = launchArgs(t, "SNAPSHOT", "extra")
	test.ExpectEquality(t, exit, 20)

	_, exit = launchArgs(t, "PLAY", "-output", "speaker")
	test.ExpectEquality(t, exit, 20)
}
