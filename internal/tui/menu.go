package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable entry.
type MenuItem struct {
	Key   string
	Label string
}

// MenuModel is a minimal cursor list.
type MenuModel struct {
	title    string
	items    []MenuItem
	cursor   int
	chosen   int
	quitting bool
}

// NewMenuModel creates a menu with the cursor on the first item.
func NewMenuModel(title string, items []MenuItem) MenuModel {
	return MenuModel{title: title, items: items, chosen: -1}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.items) > 0 {
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting || m.chosen >= 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(CursorStyle.Render("> " + item.Label))
		} else {
			b.WriteString("  " + item.Label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FaintStyle.Render("up/down to move, enter to select, q to quit"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item key.
func (m MenuModel) Selected() (string, bool) {
	if m.chosen < 0 || m.chosen >= len(m.items) {
		return "", false
	}
	return m.items[m.chosen].Key, true
}

// Choose shows the menu and returns the selected key. ErrNoInput means
// the user quit.
func Choose(ctx context.Context, in io.Reader, out io.Writer, mode OutputMode, title string, items []MenuItem) (string, error) {
	if mode == ModeTUI {
		p := tea.NewProgram(NewMenuModel(title, items), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
		final, err := p.Run()
		if err != nil {
			if errors.Is(err, tea.ErrProgramKilled) {
				return "", ErrNoInput
			}
			return "", fmt.Errorf("run menu: %w", err)
		}
		key, ok := final.(MenuModel).Selected()
		if !ok {
			return "", ErrNoInput
		}
		return key, nil
	}
	return choosePlain(in, out, title, items)
}

func choosePlain(in io.Reader, out io.Writer, title string, items []MenuItem) (string, error) {
	reader := lineReader(in)
	for {
		fmt.Fprintln(out, title)
		for i, item := range items {
			fmt.Fprintf(out, "  %d) %s\n", i+1, item.Label)
		}
		fmt.Fprint(out, "Select (q to quit): ")

		line, err := reader.ReadString('\n')
		choice := strings.TrimSpace(line)
		if choice == "" && err != nil {
			return "", ErrNoInput
		}
		if choice == "q" {
			return "", ErrNoInput
		}
		if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(items) {
			return items[n-1].Key, nil
		}
		for _, item := range items {
			if item.Key == choice {
				return item.Key, nil
			}
		}
		fmt.Fprintf(out, "unknown choice %q\n", choice)
		if err != nil {
			return "", ErrNoInput
		}
	}
}
