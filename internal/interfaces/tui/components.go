package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationDialog diálogo sí/no. "No" viene seleccionado por defecto.
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
}

// NewConfirmationDialog crea un diálogo de confirmación.
func NewConfirmationDialog(title, message string) ConfirmationDialog {
	return ConfirmationDialog{
		Title:       title,
		Message:     message,
		YesSelected: false,
	}
}

// Update procesa una tecla. decided indica si el usuario respondió y
// confirmed la respuesta.
func (d *ConfirmationDialog) Update(msg tea.KeyMsg) (decided, confirmed bool) {
	switch msg.String() {
	case "left", "h":
		d.YesSelected = true
	case "right", "l":
		d.YesSelected = false
	case "y", "Y":
		return true, true
	case "n", "N":
		return true, false
	case "enter":
		return true, d.YesSelected
	}
	return false, false
}

// View dibuja el diálogo.
func (d ConfirmationDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}

// menuItem entrada del menú principal.
type menuItem struct {
	act *action
}

func (i menuItem) FilterValue() string { return i.act.title }
func (i menuItem) Title() string       { return i.act.title }
func (i menuItem) Description() string { return i.act.description }
