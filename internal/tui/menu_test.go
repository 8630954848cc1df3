package tui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var sessionItems = []MenuItem{
	{Key: "route", Label: "Add route"},
	{Key: "component", Label: "Add component"},
	{Key: "astro-component", Label: "Create Qwik Astro component"},
}

func press(m MenuModel, keys ...tea.KeyMsg) MenuModel {
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(MenuModel)
	}
	return m
}

func TestMenuModelNavigation(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m := press(NewMenuModel("Session", sessionItems), down, down, down, up, enter)
	key, ok := m.Selected()
	if !ok || key != "component" {
		t.Fatalf("got %q %v", key, ok)
	}
}

func TestMenuModelQuit(t *testing.T) {
	m := press(NewMenuModel("Session", sessionItems), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if _, ok := m.Selected(); ok {
		t.Fatal("expected no selection after quit")
	}
}

func TestMenuModelView(t *testing.T) {
	view := NewMenuModel("Session", sessionItems).View()
	for _, item := range sessionItems {
		if !strings.Contains(view, item.Label) {
			t.Fatalf("view missing %q:\n%s", item.Label, view)
		}
	}
}

func TestChoosePlain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{"by number", "2\n", "component", nil},
		{"by key", "astro-component\n", "astro-component", nil},
		{"retry", "9\n1\n", "route", nil},
		{"quit", "q\n", "", ErrNoInput},
		{"eof", "", "", ErrNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Choose(context.Background(), strings.NewReader(tt.input), &bytes.Buffer{}, ModePlain, "Session", sessionItems)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got error %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSharedReaderKeepsLines(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("2\nMy Button\n"))
	key, err := Choose(context.Background(), in, &bytes.Buffer{}, ModePlain, "Session", sessionItems)
	if err != nil || key != "component" {
		t.Fatalf("got %q %v", key, err)
	}
	name, err := Prompt(context.Background(), in, &bytes.Buffer{}, ModePlain, PromptOptions{})
	if err != nil || name != "My Button" {
		t.Fatalf("got %q %v", name, err)
	}
}
