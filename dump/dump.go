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

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/hardware/mockingboard"
	"github.com/jetsetilly/mockingboard/hardware/ssi263"
	"github.com/jetsetilly/mockingboard/hardware/via"
)

// the rows of the VIA table
var viaRows = []string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1 counter", "T1 latch", "T2 counter", "T2 latch",
	"SR", "ACR", "PCR", "IFR", "IER",
	"T1 active", "T2 active",
}

// the rows of the speech table
var speechRows = []string{
	"DURPHON", "INFLECT", "RATEINF", "CTTRAMP", "FILFREQ", "mode", "speaking",
}

// Dump writes the state of the card to w.
func Dump(w io.Writer, card *mockingboard.Card) error {
	st := newStyles()

	var s strings.Builder
	s.WriteString(st.title.Render(card.Variant().String()))
	s.WriteString("\n")

	if card.Variant() == mockingboard.Empty {
		_, err := io.WriteString(w, s.String())
		return err
	}

	units := units(card)

	s.WriteString(viaTable(st, card, units))
	s.WriteString("\n")
	s.WriteString(generatorTable(st, card, units))
	s.WriteString("\n")
	s.WriteString(busTable(st, card, units))
	s.WriteString("\n")
	s.WriteString(speechTable(st, card, units))
	s.WriteString("\n")
	s.WriteString(status(st, card))

	_, err := io.WriteString(w, s.String())
	return err
}

// units returns the units fitted to the card. the Phasor has two units and
// the Mockingboard has two units in each of the two slots.
func units(card *mockingboard.Card) []int {
	if card.Variant() == mockingboard.Phasor {
		return []int{0, 1}
	}
	u := make([]int, mockingboard.NumUnits)
	for i := range u {
		u[i] = i
	}
	return u
}

// generators returns the generators fitted to the card.
func generators(card *mockingboard.Card, units []int) []int {
	if card.Variant() == mockingboard.Phasor {
		return []int{0, 2, 1, 3}
	}
	return units
}

func unitLabel(card *mockingboard.Card, unit int) string {
	v := card.VIA(unit)
	if card.Variant() == mockingboard.Phasor {
		return v.Label()
	}
	return fmt.Sprintf("slot%d %s", mockingboard.Slot4+unit/2, v.Label())
}

func generatorLabel(card *mockingboard.Card, gen int) string {
	if card.Variant() == mockingboard.Phasor {
		return fmt.Sprintf("AY%d-%c", gen%2, 'A'+rune(gen/2))
	}
	return fmt.Sprintf("AY%d", gen)
}

func newTable(st styles, headers []string, rows [][]string) string {
	for i := range headers {
		headers[i] = st.heading.Render(headers[i])
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func viaTable(st styles, card *mockingboard.Card, units []int) string {
	headers := []string{"VIA"}
	for _, u := range units {
		headers = append(headers, unitLabel(card, u))
	}

	rows := make([][]string, len(viaRows))
	for i := range rows {
		rows[i] = []string{viaRows[i]}
	}

	for _, u := range units {
		v := card.VIA(u)
		r := v.Registers
		col := []string{
			fmt.Sprintf("%02x", r.ORB),
			fmt.Sprintf("%02x", r.ORA),
			fmt.Sprintf("%02x", r.DDRB),
			fmt.Sprintf("%02x", r.DDRA),
			fmt.Sprintf("%04x", r.Timer1Counter),
			fmt.Sprintf("%04x", r.Timer1Latch),
			fmt.Sprintf("%04x", r.Timer2Counter),
			fmt.Sprintf("%04x", r.Timer2Latch),
			fmt.Sprintf("%02x", r.SerialShift),
			fmt.Sprintf("%02x", r.ACR),
			fmt.Sprintf("%02x", r.PCR),
			ifr(st, r.IFR),
			fmt.Sprintf("%02x", r.IER),
			yesNo(v.Timer1Active()),
			yesNo(v.Timer2Active()),
		}
		for i := range rows {
			rows[i] = append(rows[i], col[i])
		}
	}

	return newTable(st, headers, rows)
}

// ifr is highlighted when the VIA is asserting an interrupt
func ifr(st styles, v uint8) string {
	s := fmt.Sprintf("%02x", v)
	if v&via.IxrSummary == via.IxrSummary {
		return st.active.Render(s)
	}
	return s
}

func generatorTable(st styles, card *mockingboard.Card, units []int) string {
	gens := generators(card, units)

	headers := []string{"AY-3-8910"}
	for _, g := range gens {
		headers = append(headers, generatorLabel(card, g))
	}

	rows := make([][]string, ay8910.NumRegisters)
	for reg := range rows {
		rows[reg] = []string{ay8910.RegisterNames[reg]}
		for _, g := range gens {
			rows[reg] = append(rows[reg], fmt.Sprintf("%02x", card.Generator(g).ReadRegister(uint8(reg))))
		}
	}

	return newTable(st, headers, rows)
}

func busTable(st styles, card *mockingboard.Card, units []int) string {
	headers := []string{"bus"}
	for _, u := range units {
		headers = append(headers, unitLabel(card, u))
	}

	rowA := []string{"first"}
	rowB := []string{"second"}
	for _, u := range units {
		a, b := card.BusState(u)
		rowA = append(rowA, a.String())
		rowB = append(rowB, b.String())
	}

	rows := [][]string{rowA}
	if card.Variant() == mockingboard.Phasor {
		rows = append(rows, rowB)
	}

	return newTable(st, headers, rows)
}

func speechTable(st styles, card *mockingboard.Card, units []int) string {
	headers := []string{"SSI263"}
	for _, u := range units {
		headers = append(headers, unitLabel(card, u))
	}

	rows := make([][]string, len(speechRows))
	for i := range rows {
		rows[i] = []string{speechRows[i]}
	}

	for _, u := range units {
		sp := card.Speech(u)
		col := speechColumn(sp)
		for i := range rows {
			rows[i] = append(rows[i], col[i])
		}
	}

	return newTable(st, headers, rows)
}

func speechColumn(sp *ssi263.Speech) []string {
	r := sp.Registers
	speaking := "no"
	if sp.IsPhonemeActive() {
		speaking = sp.Phoneme().String()
	}
	return []string{
		fmt.Sprintf("%02x", r.DurPhon),
		fmt.Sprintf("%02x", r.Inflect),
		fmt.Sprintf("%02x", r.RateInf),
		fmt.Sprintf("%02x", r.CttRamp),
		fmt.Sprintf("%02x", r.FilFreq),
		fmt.Sprintf("%x", r.Mode),
		speaking,
	}
}

func status(st styles, card *mockingboard.Card) string {
	var s strings.Builder

	irq := card.IRQDescription()
	if irq == "" {
		irq = "none"
	}
	s.WriteString(st.status.Render(fmt.Sprintf("IRQ: %s", irq)))
	s.WriteString("\n")

	if dev, ok := card.TimerDevice(); ok {
		s.WriteString(st.status.Render(fmt.Sprintf("timer device: %s", unitLabel(card, dev))))
	} else {
		s.WriteString(st.status.Render("timer device: none"))
	}
	s.WriteString("\n")

	if card.Variant() == mockingboard.Phasor {
		s.WriteString(st.status.Render(fmt.Sprintf("phasor mode: %s", card.PhasorMode())))
		s.WriteString("\n")
	}

	events := strings.TrimSpace(card.Events())
	if events == "" {
		s.WriteString(st.status.Render("events: none"))
		s.WriteString("\n")
		return s.String()
	}
	s.WriteString(st.status.Render("events:"))
	s.WriteString("\n")
	for _, ev := range strings.Split(events, "\n") {
		s.WriteString(st.status.Render(fmt.Sprintf("  %s", ev)))
		s.WriteString("\n")
	}

	return s.String()
}
