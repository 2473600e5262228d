// Package tui binds the zone engine to an interactive table view. The
// view owns the per-row coloring; the engine owns everything derived
// from it (boundaries, counts, legal recolor actions) and is consulted
// on every change.
package tui

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spinorview/internal/config"
	"github.com/jask/spinorview/internal/database/repository"
	"github.com/jask/spinorview/internal/service"
	"github.com/jask/spinorview/internal/spinor"
	"github.com/jask/spinorview/internal/zone"
)

const historyLimit = 15

// App ties together the table view, the zone engine, and the
// surrounding services.
type App struct {
	ctx    context.Context
	cfg    config.Config
	repos  Repos
	runner *service.DFCoefRunner

	engine   *zone.Engine
	table    *spinor.Table
	coloring []zone.Zone
	filePath string
	molecule string

	state appState
	modal modalState

	cursor int
	anchor int // -1 unless a visual range is active
	offset int
	width  int
	height int

	theme       Theme
	themeCursor int
	spinorMode  bool

	zoneOffers []zone.Zone
	zoneCursor int

	inputBuffer string
	diracPath   string

	searchMatches []service.SearchMatch
	searchIdx     int

	fileList   list.Model
	keys       keyMap
	pickerKeys pickerKeyMap

	status string
}

type Repos struct {
	History *repository.HistoryRepo
}

type appState string

const (
	viewPicker appState = "picker"
	viewTable  appState = "table"
)

type modalState string

const (
	modalNone     modalState = ""
	modalZoneMenu modalState = "zoneMenu"
	modalTheme    modalState = "theme"
	modalMolecule modalState = "molecule"
	modalSearch   modalState = "search"
)

// ---------------------------------------------------------------------------
// File-picker items (implement list.Item)
// ---------------------------------------------------------------------------

type fileItem struct {
	path     string
	molecule string
	recent   bool
}

func (f fileItem) Title() string { return f.path }
func (f fileItem) Description() string {
	if f.recent {
		return "recent"
	}
	return ""
}
func (f fileItem) FilterValue() string { return f.path }

func newFileDelegate() list.ItemDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(colorBlue).BorderLeftForeground(colorBlue)
	return d
}

// New builds the app. startPath, when non-empty, is loaded immediately
// instead of showing the picker (the drop-a-file-on-the-window
// equivalent).
func New(ctx context.Context, cfg config.Config, repos Repos, runner *service.DFCoefRunner, startPath string) *App {
	listModel := list.New([]list.Item{}, newFileDelegate(), 0, 0)
	listModel.Title = "Open output file"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetShowHelp(false)
	listModel.DisableQuitKeybindings()

	a := &App{
		ctx:        ctx,
		cfg:        cfg,
		repos:      repos,
		runner:     runner,
		engine:     zone.NewEngine(),
		state:      viewPicker,
		anchor:     -1,
		theme:      NewTheme(ParseThemeKind(cfg.UI.Theme)),
		spinorMode: cfg.UI.SpinorMode,
		fileList:   listModel,
		keys:       newKeyMap(),
		pickerKeys: pickerKeyMap{keyMap: newKeyMap()},
	}
	if startPath != "" {
		a.state = viewTable
		a.filePath = startPath
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadFileListCmd()}
	if a.filePath != "" {
		cmds = append(cmds, a.loadTableCmd(a.filePath, ""))
	}
	return tea.Batch(cmds...)
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type fileListMsg []list.Item

type tableLoadedMsg struct {
	path     string
	molecule string
	table    *spinor.Table
}

type dfcoefDoneMsg struct {
	path     string
	molecule string
}

type errMsg struct{ error }

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) loadFileListCmd() tea.Cmd {
	return func() tea.Msg {
		var items []list.Item
		seen := make(map[string]bool)
		if a.repos.History != nil {
			if entries, err := a.repos.History.Recent(a.ctx, historyLimit); err == nil {
				for _, e := range entries {
					items = append(items, fileItem{path: e.Path, molecule: e.Molecule, recent: true})
					seen[e.Path] = true
				}
			}
		}
		if cwd, err := os.Getwd(); err == nil {
			matches, _ := filepath.Glob(filepath.Join(cwd, "*.out"))
			for _, m := range matches {
				if !seen[m] {
					items = append(items, fileItem{path: m})
				}
			}
		}
		return fileListMsg(items)
	}
}

func (a *App) loadTableCmd(path, molecule string) tea.Cmd {
	return func() tea.Msg {
		table, err := spinor.ParseFile(path)
		if err != nil {
			return errMsg{err}
		}
		return tableLoadedMsg{path: path, molecule: molecule, table: table}
	}
}

func (a *App) runDFCoefCmd(inputPath, molecule string) tea.Cmd {
	return func() tea.Msg {
		out, err := a.runner.Run(a.ctx, inputPath, molecule)
		if err != nil {
			return errMsg{err}
		}
		return dfcoefDoneMsg{path: out, molecule: molecule}
	}
}

func (a *App) recordHistoryCmd(path, molecule string, rows int) tea.Cmd {
	return func() tea.Msg {
		if a.repos.History == nil {
			return nil
		}
		if err := a.repos.History.Record(a.ctx, repository.HistoryEntry{Path: path, Molecule: molecule, RowCount: rows}); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) forgetHistoryCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if a.repos.History == nil {
			return nil
		}
		if err := a.repos.History.Forget(a.ctx, path); err != nil {
			return errMsg{err}
		}
		return a.loadFileListCmd()()
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		if a.repos.History == nil {
			return nil
		}
		if err := a.repos.History.Clear(a.ctx); err != nil {
			return errMsg{err}
		}
		return a.loadFileListCmd()()
	}
}

func (a *App) saveConfigCmd() tea.Cmd {
	cfg := a.cfg
	cfg.UI.Theme = a.theme.Kind.String()
	cfg.UI.SpinorMode = a.spinorMode
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// ---------------------------------------------------------------------------
// Selection and layout helpers
// ---------------------------------------------------------------------------

// selectedRows returns the rows the next action applies to: the visual
// range when one is active, otherwise just the cursor row.
func (a *App) selectedRows() map[int]bool {
	rows := make(map[int]bool)
	if a.table == nil || a.table.RowCount() == 0 {
		return rows
	}
	lo, hi := a.cursor, a.cursor
	if a.anchor >= 0 {
		lo, hi = a.anchor, a.cursor
		if lo > hi {
			lo, hi = hi, lo
		}
	}
	for r := lo; r <= hi; r++ {
		rows[r] = true
	}
	return rows
}

// applyZone repaints the selected rows and reconciles. The engine gets
// its own copy of the coloring so the snapshot it scans cannot change
// underneath it.
func (a *App) applyZone(z zone.Zone) error {
	for row := range a.selectedRows() {
		a.coloring[row] = z
	}
	snapshot := append([]zone.Zone(nil), a.coloring...)
	return a.engine.Reconcile(snapshot)
}

func (a *App) visibleRows() int {
	// header, counts, mode line, help, status
	reserved := 6
	if a.height <= reserved {
		return 1
	}
	return a.height - reserved
}

func (a *App) clampScroll() {
	vis := a.visibleRows()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+vis {
		a.offset = a.cursor - vis + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}
