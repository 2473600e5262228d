package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/spinorview/internal/zone"
)

const maxColumnWidth = 16

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface)
	helpStyle   = lipgloss.NewStyle().Foreground(colorSubtext)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Bold(true)
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewPicker:
		body = a.renderPicker()
	default:
		body = a.renderTable()
	}
	if a.modal != modalNone {
		body += "\n" + a.renderModal()
	}
	return body
}

func (a *App) renderPicker() string {
	out := a.fileList.View()
	out += "\n" + helpLine(a.pickerKeys.ShortHelp())
	if a.status != "" {
		out += "\n" + statusStyle.Render(a.status)
	}
	return out
}

func (a *App) renderTable() string {
	if a.table == nil {
		return titleStyle.Render("spinorview") + "\n(no file loaded)\n" + helpLine(a.keys.ShortHelp())
	}

	widths := a.columnWidths()
	selected := a.selectedRows()

	var b strings.Builder
	b.WriteString(headerStyle.Render(a.renderRowCells(a.table.Headers, widths)))
	b.WriteString("\n")

	vis := a.visibleRows()
	end := a.offset + vis
	if end > a.table.RowCount() {
		end = a.table.RowCount()
	}
	for row := a.offset; row < end; row++ {
		marker := "  "
		if row == a.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		line := a.renderRowCells(a.table.Rows[row], widths)
		style := a.theme.ZoneStyle(a.coloring[row])
		if a.anchor >= 0 && selected[row] {
			style = style.Reverse(true)
		}
		b.WriteString(marker + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(a.renderCounts())
	b.WriteString("\n" + a.renderModeLine())
	b.WriteString("\n" + helpLine(a.keys.ShortHelp()))
	if a.status != "" {
		b.WriteString("\n" + statusStyle.Render(a.status))
	}
	return b.String()
}

// renderCounts is the core/inactive/active/secondary label strip under
// the table. The numbers are the doubled spinor-component counts the
// engine reports.
func (a *App) renderCounts() string {
	counts := a.engine.Counts()
	parts := make([]string, 0, 4)
	for _, z := range zone.All() {
		parts = append(parts, a.theme.ZoneStyle(z).Render(fmt.Sprintf(" %s: %d ", z, counts[z])))
	}
	return strings.Join(parts, " ")
}

func (a *App) renderModeLine() string {
	mode := "MO mode"
	if a.spinorMode {
		mode = "Spinor mode"
	}
	line := mode
	if a.filePath != "" {
		line += "  " + a.filePath
	}
	return helpStyle.Render(line)
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalZoneMenu:
		out := titleStyle.Render("Change selection to") + "\n"
		for i, z := range a.zoneOffers {
			marker := " "
			if i == a.zoneCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s\n", marker, a.theme.ZoneStyle(z).Render(" "+z.String()+" "))
		}
		out += helpStyle.Render("[enter] apply  [esc] cancel")
		return modalStyle.Render(out)
	case modalTheme:
		out := titleStyle.Render("Color settings") + "\n"
		for i, k := range ThemeKinds() {
			marker := "( )"
			if k == a.theme.Kind {
				marker = "(*)"
			}
			prefix := " "
			if i == a.themeCursor {
				prefix = "▶"
			}
			out += fmt.Sprintf("%s %s %s\n", prefix, marker, k.Label())
		}
		out += helpStyle.Render("[enter] apply  [esc] cancel")
		return modalStyle.Render(out)
	case modalMolecule:
		return modalStyle.Render(titleStyle.Render("Molecule name") +
			"\nEnter the molecule name you calculated with DIRAC:\n" +
			a.inputBuffer + "▌\n" +
			helpStyle.Render("[enter] run  [esc] cancel"))
	case modalSearch:
		return modalStyle.Render(titleStyle.Render("Search") +
			"\n/" + a.inputBuffer + "▌\n" +
			helpStyle.Render("[enter] search  [esc] cancel"))
	default:
		return ""
	}
}

// columnWidths sizes each column to its widest cell, capped so one long
// AO label cannot push the rest of the table off screen.
func (a *App) columnWidths() []int {
	widths := make([]int, a.table.ColumnCount())
	for i, h := range a.table.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range a.table.Rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func (a *App) renderRowCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padCell(cell, widths[i])
	}
	return strings.Join(parts, "  ")
}

func padCell(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}
