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

package dump

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	status  lipgloss.Style
	border  lipgloss.Style
	active  lipgloss.Style
}

// colours are from the basic ANSI set
//
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 8	Bright Black (Gray)
func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		status:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		border:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
	}
}
