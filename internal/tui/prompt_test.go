package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var errEmpty = errors.New("Route name cannot be empty")

func nonEmpty(v string) error {
	if v == "" {
		return errEmpty
	}
	return nil
}

func typeText(m PromptModel, text string) PromptModel {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(PromptModel)
	}
	return m
}

func TestPromptModelSubmit(t *testing.T) {
	m := NewPromptModel(PromptOptions{Title: "What is the name of the route?", Validate: nonEmpty})
	m = typeText(m, "product/[id]")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PromptModel)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	value, ok := m.Value()
	if !ok || value != "product/[id]" {
		t.Fatalf("got %q %v", value, ok)
	}
}

func TestPromptModelRejectsInvalid(t *testing.T) {
	m := NewPromptModel(PromptOptions{Validate: nonEmpty})
	if m.err == nil {
		t.Fatal("expected initial validation error for empty value")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PromptModel)
	if cmd != nil {
		t.Fatal("expected no command when input is invalid")
	}
	if _, ok := m.Value(); ok {
		t.Fatal("invalid input must not be submitted")
	}

	m = typeText(m, "a")
	if m.err != nil {
		t.Fatalf("expected error cleared, got %v", m.err)
	}
}

func TestPromptModelCancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := typeText(NewPromptModel(PromptOptions{}), "abc")
		updated, _ := m.Update(tea.KeyMsg{Type: key})
		m = updated.(PromptModel)
		if _, ok := m.Value(); ok {
			t.Fatalf("expected cancel for %v", key)
		}
		if m.View() != "" {
			t.Fatal("expected empty view after cancel")
		}
	}
}

func TestPromptPlain(t *testing.T) {
	t.Run("retries until valid", func(t *testing.T) {
		var out bytes.Buffer
		value, err := Prompt(context.Background(), strings.NewReader("\nabout\n"), &out, ModePlain,
			PromptOptions{Title: "What is the name of the route?", Placeholder: "product/[id]", Validate: nonEmpty})
		if err != nil {
			t.Fatalf("Prompt: %v", err)
		}
		if value != "about" {
			t.Fatalf("got %q", value)
		}
		if !strings.Contains(out.String(), errEmpty.Error()) {
			t.Fatalf("expected validation message in output:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "(e.g. product/[id])") {
			t.Fatalf("expected placeholder hint in output:\n%s", out.String())
		}
	})

	t.Run("last line without newline", func(t *testing.T) {
		value, err := Prompt(context.Background(), strings.NewReader("  My Button"), &bytes.Buffer{}, ModePlain, PromptOptions{})
		if err != nil || value != "  My Button" {
			t.Fatalf("got %q %v", value, err)
		}
	})

	t.Run("eof is no input", func(t *testing.T) {
		_, err := Prompt(context.Background(), strings.NewReader(""), &bytes.Buffer{}, ModePlain, PromptOptions{})
		if !errors.Is(err, ErrNoInput) {
			t.Fatalf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("invalid then eof", func(t *testing.T) {
		_, err := Prompt(context.Background(), strings.NewReader("\n"), &bytes.Buffer{}, ModePlain, PromptOptions{Validate: nonEmpty})
		if !errors.Is(err, ErrNoInput) {
			t.Fatalf("expected ErrNoInput, got %v", err)
		}
	})
}

func TestDetectMode(t *testing.T) {
	var buf bytes.Buffer
	if DetectMode(&buf, false, true) != ModeJSON {
		t.Fatal("expected JSON mode")
	}
	if DetectMode(&buf, false, false) != ModePlain {
		t.Fatal("expected plain mode for non-terminal writer")
	}
	if Interactive(strings.NewReader(""), &buf) {
		t.Fatal("buffers are not interactive")
	}
}
