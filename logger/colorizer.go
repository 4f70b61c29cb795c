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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic colouring rules to logging output. The tag is
// rendered in bold and entries that report a failure are rendered in red.
type Colorizer struct {
	out  io.Writer
	tag  lipgloss.Style
	fail lipgloss.Style
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:  out,
		tag:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		fail: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1)),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		_, err := io.WriteString(c.out, s+"\n")
		return len(p), err
	}

	if strings.Contains(detail, "error") || strings.Contains(detail, "failed") {
		detail = c.fail.Render(detail)
	}

	_, err := io.WriteString(c.out, c.tag.Render(tag)+": "+detail+"\n")
	return len(p), err
}
