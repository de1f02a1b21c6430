// Package render dibuja productos y proveedores como tablas de terminal (lipgloss)
// y los mensajes de una línea que comparten el TUI y el CLI.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#4B5563")

	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	lowStyle     = numericStyle.Foreground(colorWarning)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// NoSupplier texto para un producto sin proveedor resoluble.
const NoSupplier = "-"

// Products tabla de productos: ID, Name, Category, Price, Quantity, Supplier.
// Las cantidades por debajo de lowStock se resaltan.
func Products(items []dto.ProductResponse, lowStock int) string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			Price(p),
			strconv.Itoa(p.Quantity),
			SupplierName(p),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("ID", "Name", "Category", "Price", "Quantity", "Supplier").
		Rows(rows...).
		StyleFunc(productStyle(items, lowStock)).
		String()
}

func productStyle(items []dto.ProductResponse, lowStock int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 4 && row >= 0 && row < len(items) && items[row].Quantity < lowStock:
			return lowStyle
		case col == 0 || col == 3 || col == 4:
			return numericStyle
		default:
			return cellStyle
		}
	}
}

// Suppliers tabla de proveedores: ID, Name, Email, Phone.
func Suppliers(items []dto.SupplierResponse) string {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Name, s.Email, s.Phone})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("ID", "Name", "Email", "Phone").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return numericStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// Price precio con dos decimales.
func Price(p dto.ProductResponse) string {
	return p.Price.StringFixed(2)
}

// SupplierName nombre del proveedor o NoSupplier.
func SupplierName(p dto.ProductResponse) string {
	if p.SupplierName == nil || *p.SupplierName == "" {
		return NoSupplier
	}
	return *p.SupplierName
}

// Success línea de éxito.
func Success(msg string) string { return successStyle.Render("✓ ") + msg }

// Warning línea de aviso.
func Warning(msg string) string { return warningStyle.Render("⚠ ") + msg }

// Failure línea de error; siempre una sola línea.
func Failure(err error) string {
	return errorStyle.Render("✗ ") + strings.Join(strings.Fields(err.Error()), " ")
}

// Title encabezado de sección.
func Title(s string) string { return titleStyle.Render(s) }

// Muted texto secundario.
func Muted(s string) string { return mutedStyle.Render(s) }
