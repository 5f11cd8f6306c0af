package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBrokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var errNoSpawn = errors.New("no player spawn")

// MenuItem is one level in the picker.
type MenuItem struct {
	Level   int
	Title   string
	Enemies int
	Err     error
}

// Playable reports whether the level loaded cleanly and has a player spawn.
func (it MenuItem) Playable() bool {
	return it.Err == nil
}

// MenuItems converts pack summaries into menu entries.
func MenuItems(summaries []levels.Summary) []MenuItem {
	items := make([]MenuItem, 0, len(summaries))
	for _, s := range summaries {
		err := s.Err
		if err == nil && !s.Player {
			err = errNoSpawn
		}
		items = append(items, MenuItem{
			Level:   s.Index,
			Title:   fmt.Sprintf("Level %d", s.Index+1),
			Enemies: s.Enemies,
			Err:     err,
		})
	}
	return items
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	title          string
	items          []MenuItem
	cursor         int
	width          int
	height         int
	highScore      int
	bestLevel      int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The store may be nil.
func NewMenuModel(title, gameID string, items []MenuItem, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:     title,
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if stats, err := store.GetGameStats(gameID); err == nil {
			m.highScore = stats.HighScore
			m.bestLevel = stats.BestLevel
		}
	}

	// Start on the first playable level.
	for i, it := range items {
		if it.Playable() {
			m.cursor = i
			break
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 && m.items[m.cursor].Playable() {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		stats := fmt.Sprintf("High score %d  |  Furthest level %d", m.highScore, m.bestLevel+1)
		b.WriteString(centerText(menuDimStyle.Render(stats), m.width))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(centerText(menuBrokenStyle.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.visibleItems() {
		idx := m.firstVisible() + i
		line := fmt.Sprintf("%-10s %2d enemies", item.Title, item.Enemies)
		switch {
		case !item.Playable():
			line = menuBrokenStyle.Render(fmt.Sprintf("%-10s broken: %v", item.Title, item.Err))
		case idx == m.cursor:
			line = menuSelectedStyle.Render("> " + line + " ")
		default:
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// pageSize is the number of levels that fit between header and footer.
func (m MenuModel) pageSize() int {
	return max(m.height-9, 3)
}

func (m MenuModel) firstVisible() int {
	page := m.pageSize()
	if m.cursor < page {
		return 0
	}
	return m.cursor - page + 1
}

func (m MenuModel) visibleItems() []MenuItem {
	first := m.firstVisible()
	last := min(first+m.pageSize(), len(m.items))
	return m.items[first:last]
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(title, gameID string, items []MenuItem, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(title, gameID, items, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Level = m.Selected().Level
	default:
		result.Quit = true
	}
	return result, nil
}
