package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spinorview/internal/service"
	"github.com/jask/spinorview/internal/zone"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.fileList.SetSize(m.Width-2, m.Height-4)
		a.clampScroll()

	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewPicker {
			return a.handlePickerKey(m)
		}
		return a.handleTableKey(m)

	case fileListMsg:
		return a, a.fileList.SetItems(m)

	case tableLoadedMsg:
		a.table = m.table
		a.coloring = zone.InitialColoring(m.table.RowCount())
		if err := a.engine.LoadColoring(append([]zone.Zone(nil), a.coloring...)); err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		a.filePath = m.path
		a.molecule = m.molecule
		a.state = viewTable
		a.cursor = 0
		a.anchor = -1
		a.offset = 0
		a.searchMatches = nil
		a.status = fmt.Sprintf("loaded %s (%d rows)", m.path, m.table.RowCount())
		return a, tea.Batch(
			a.recordHistoryCmd(m.path, m.molecule, m.table.RowCount()),
			a.loadFileListCmd(),
		)

	case dfcoefDoneMsg:
		a.status = "condensed output written to " + m.path
		return a, a.loadTableCmd(m.path, m.molecule)

	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleTableKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
			a.clampScroll()
		}
	case "down", "j":
		if a.table != nil && a.cursor < a.table.RowCount()-1 {
			a.cursor++
			a.clampScroll()
		}
	case "g":
		a.cursor = 0
		a.clampScroll()
	case "G":
		if a.table != nil && a.table.RowCount() > 0 {
			a.cursor = a.table.RowCount() - 1
			a.clampScroll()
		}
	case "v":
		if a.anchor >= 0 {
			a.anchor = -1
		} else {
			a.anchor = a.cursor
		}
	case "esc":
		a.anchor = -1
		a.status = ""
	case "enter", "m":
		if a.table == nil || a.table.RowCount() == 0 {
			return a, nil
		}
		offers, err := a.engine.Advise(a.selectedRows())
		if err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		if len(offers) == 0 {
			a.status = "selection does not touch a zone boundary"
			return a, nil
		}
		a.zoneOffers = offers
		a.zoneCursor = 0
		a.modal = modalZoneMenu
	case "t":
		a.themeCursor = 0
		for i, k := range ThemeKinds() {
			if k == a.theme.Kind {
				a.themeCursor = i
			}
		}
		a.modal = modalTheme
	case "s":
		a.spinorMode = !a.spinorMode
		return a, a.saveConfigCmd()
	case "/":
		if a.table != nil {
			a.inputBuffer = ""
			a.modal = modalSearch
		}
	case "n":
		a.jumpToMatch(1)
	case "N":
		a.jumpToMatch(-1)
	case "o":
		a.state = viewPicker
		return a, a.loadFileListCmd()
	case "r":
		if a.filePath != "" {
			a.status = "reloading..."
			return a, a.loadTableCmd(a.filePath, a.molecule)
		}
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		if a.table != nil {
			a.state = viewTable
		}
		return a, nil
	case "enter":
		if item, ok := a.fileList.SelectedItem().(fileItem); ok {
			a.status = "loading..."
			return a, a.loadTableCmd(item.path, item.molecule)
		}
		return a, nil
	case "d":
		if item, ok := a.fileList.SelectedItem().(fileItem); ok {
			a.diracPath = item.path
			a.inputBuffer = ""
			a.modal = modalMolecule
		}
		return a, nil
	case "x":
		if item, ok := a.fileList.SelectedItem().(fileItem); ok && item.recent {
			a.status = "forgot " + item.path
			return a, a.forgetHistoryCmd(item.path)
		}
		return a, nil
	case "X":
		a.status = "history cleared"
		return a, a.clearHistoryCmd()
	}
	var cmd tea.Cmd
	a.fileList, cmd = a.fileList.Update(m)
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalZoneMenu:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.zoneCursor > 0 {
				a.zoneCursor--
			}
		case "down", "j":
			if a.zoneCursor < len(a.zoneOffers)-1 {
				a.zoneCursor++
			}
		case "enter":
			z := a.zoneOffers[a.zoneCursor]
			n := len(a.selectedRows())
			if err := a.applyZone(z); err != nil {
				a.status = "error: " + err.Error()
			} else {
				a.status = fmt.Sprintf("%d row(s) changed to %s", n, z)
			}
			a.modal = modalNone
			a.anchor = -1
		}

	case modalTheme:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.themeCursor > 0 {
				a.themeCursor--
			}
		case "down", "j":
			if a.themeCursor < len(ThemeKinds())-1 {
				a.themeCursor++
			}
		case "enter":
			a.theme = NewTheme(ThemeKinds()[a.themeCursor])
			a.modal = modalNone
			return a, a.saveConfigCmd()
		}

	case modalMolecule:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "enter":
			if a.inputBuffer == "" {
				a.status = "molecule name is required"
				return a, nil
			}
			a.modal = modalNone
			a.status = "running " + a.runner.Command + "..."
			return a, a.runDFCoefCmd(a.diracPath, a.inputBuffer)
		case "backspace":
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		default:
			if m.Type == tea.KeyRunes {
				a.inputBuffer += string(m.Runes)
			}
		}

	case modalSearch:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "enter":
			a.searchMatches = service.SearchRows(a.table, a.inputBuffer)
			a.searchIdx = 0
			a.modal = modalNone
			if len(a.searchMatches) == 0 {
				a.status = fmt.Sprintf("no match for %q", a.inputBuffer)
			} else {
				a.cursor = a.searchMatches[0].Row
				a.clampScroll()
				a.status = fmt.Sprintf("%d match(es) for %q", len(a.searchMatches), a.inputBuffer)
			}
		case "backspace":
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		default:
			if m.Type == tea.KeyRunes {
				a.inputBuffer += string(m.Runes)
			}
		}
	}
	return a, nil
}

// jumpToMatch moves the cursor to the next or previous search hit.
func (a *App) jumpToMatch(dir int) {
	if len(a.searchMatches) == 0 {
		return
	}
	a.searchIdx = (a.searchIdx + dir + len(a.searchMatches)) % len(a.searchMatches)
	a.cursor = a.searchMatches[a.searchIdx].Row
	a.clampScroll()
	a.status = fmt.Sprintf("match %d of %d", a.searchIdx+1, len(a.searchMatches))
}
