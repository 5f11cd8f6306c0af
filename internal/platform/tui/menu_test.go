package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func TestMenuItems(t *testing.T) {
	broken := errors.New("bad json")
	items := MenuItems([]levels.Summary{
		{Index: 0, Tiles: 20, Enemies: 2, Player: true},
		{Index: 1, Err: broken},
		{Index: 2, Tiles: 5},
	})

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, expected 3", len(items))
	}
	if items[0].Title != "Level 1" || items[0].Enemies != 2 || !items[0].Playable() {
		t.Errorf("items[0] = %+v, expected playable Level 1 with 2 enemies", items[0])
	}
	if !errors.Is(items[1].Err, broken) {
		t.Errorf("items[1].Err = %v, expected %v", items[1].Err, broken)
	}
	if !errors.Is(items[2].Err, errNoSpawn) {
		t.Errorf("items[2].Err = %v, expected %v", items[2].Err, errNoSpawn)
	}
}

func pressMenu(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSkipsBrokenLevels(t *testing.T) {
	items := []MenuItem{
		{Level: 0, Title: "Level 1", Err: errNoSpawn},
		{Level: 1, Title: "Level 2"},
	}
	m := NewMenuModel("Test", "ninja", items, nil, testCfg)

	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected first playable level 1", m.cursor)
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Error("a broken level should not be selectable")
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().Level != 1 {
		t.Errorf("Selected() = %v, expected level 1", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	items := []MenuItem{{Level: 0, Title: "Level 1"}}

	m := pressMenu(NewMenuModel("Test", "ninja", items, nil, testCfg), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = pressMenu(NewMenuModel("Test", "ninja", items, nil, testCfg), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel("Test", "ninja", nil, nil, testCfg)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()

	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuPaging(t *testing.T) {
	items := make([]MenuItem, 30)
	for i := range items {
		items[i] = MenuItem{Level: i, Title: "Level"}
	}
	cfg := testCfg
	cfg.ScreenH = 15
	m := NewMenuModel("Test", "ninja", items, nil, cfg)

	page := m.pageSize()
	for range page + 2 {
		m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	}

	visible := m.visibleItems()
	if len(visible) != page {
		t.Fatalf("len(visibleItems()) = %d, expected %d", len(visible), page)
	}
	if last := visible[len(visible)-1].Level; last != m.cursor {
		t.Errorf("last visible level = %d, expected cursor %d", last, m.cursor)
	}
}

func TestMenuViewListsLevels(t *testing.T) {
	items := []MenuItem{
		{Level: 0, Title: "Level 1", Enemies: 3},
		{Level: 1, Title: "Level 2", Err: errNoSpawn},
	}
	view := NewMenuModel("Ninja", "ninja", items, nil, testCfg).View()

	for _, want := range []string{"Ninja", "Level 1", "3 enemies", "broken: no player spawn"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText(\"ab\", 6) = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText on overflow = %q, expected unchanged", got)
	}
}
