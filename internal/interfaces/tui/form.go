package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/inventario-cli/internal/application/input"
	"github.com/jhoicas/inventario-cli/internal/interfaces/render"
)

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
)

// choice opción de un selector; value es lo que recibe el parser.
type choice struct {
	label string
	value string
}

type field struct {
	key      string
	label    string
	kind     fieldKind
	input    textinput.Model
	choices  []choice
	selected int
}

func newTextField(key, label, placeholder, initial string) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(initial)
	return field{key: key, label: label, kind: textField, input: ti}
}

func newChoiceField(key, label string, choices []choice) field {
	return field{key: key, label: label, kind: choiceField, choices: choices}
}

func (f field) value() string {
	if f.kind == choiceField {
		if len(f.choices) == 0 {
			return ""
		}
		return f.choices[f.selected].value
	}
	return f.input.Value()
}

// form formulario secuencial de campos de texto y selectores.
type form struct {
	title  string
	fields []field
	focus  int
	err    error
}

func newForm(title string, fields []field) *form {
	f := &form{title: title, fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	if f.fields[f.focus].kind == textField {
		f.fields[f.focus].input.Blur()
	}
	f.focus = i
	if f.fields[i].kind == textField {
		return f.fields[i].input.Focus()
	}
	return nil
}

// update procesa una tecla; submit es true cuando se confirma el último campo.
func (f *form) update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	last := len(f.fields) - 1
	current := &f.fields[f.focus]

	switch msg.String() {
	case "tab", "down":
		if f.focus < last {
			return false, f.setFocus(f.focus + 1)
		}
		return false, nil
	case "shift+tab", "up":
		if f.focus > 0 {
			return false, f.setFocus(f.focus - 1)
		}
		return false, nil
	case "enter":
		if f.focus < last {
			return false, f.setFocus(f.focus + 1)
		}
		return true, nil
	}

	if current.kind == choiceField {
		n := len(current.choices)
		if n == 0 {
			return false, nil
		}
		switch msg.String() {
		case "left", "h":
			current.selected = (current.selected - 1 + n) % n
		case "right", "l", " ":
			current.selected = (current.selected + 1) % n
		}
		return false, nil
	}

	current.input, cmd = current.input.Update(msg)
	return false, cmd
}

// forward entrega al campo con foco los mensajes que no son teclas (parpadeo del cursor).
func (f *form) forward(msg tea.Msg) tea.Cmd {
	current := &f.fields[f.focus]
	if current.kind != textField {
		return nil
	}
	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	return cmd
}

func (f *form) values() input.Values {
	v := make(input.Values, len(f.fields))
	for _, fd := range f.fields {
		v[fd.key] = fd.value()
	}
	return v
}

func (f *form) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")

	for i, fd := range f.fields {
		label := labelStyle.Render(fd.label + ":")
		cursor := "  "
		if i == f.focus {
			label = focusedLabelStyle.Render(fd.label + ":")
			cursor = focusedLabelStyle.Render("> ")
		}

		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString(" ")
		if fd.kind == choiceField {
			if len(fd.choices) == 0 {
				b.WriteString(mutedStyle.Render("(none)"))
			} else {
				b.WriteString("‹ " + fd.choices[fd.selected].label + " ›")
			}
		} else {
			b.WriteString(fd.input.View())
		}
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(fieldErrorStyle.Render(render.Failure(f.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		FormatKey("tab/↓", "next") + " • " +
			FormatKey("←/→", "choose") + " • " +
			FormatKey("enter", "submit") + " • " +
			FormatKey("esc", "back"),
	))
	return b.String()
}
