package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/interfaces/render"
)

// printer escribe resultados como tablas lipgloss o como JSON.
// lowStock es el umbral de resaltado de cantidades en las tablas.
type printer struct {
	w        io.Writer
	json     bool
	lowStock int
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) products(items []dto.ProductResponse, empty string) error {
	if p.json {
		return p.encode(dto.ProductListResponse{Items: items})
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(p.w, render.Warning(empty))
		return err
	}
	_, err := fmt.Fprintln(p.w, render.Products(items, p.lowStock))
	return err
}

// product imprime un producto; message es la línea de éxito en modo texto.
func (p printer) product(item *dto.ProductResponse, message string) error {
	if p.json {
		return p.encode(item)
	}
	if _, err := fmt.Fprintln(p.w, render.Products([]dto.ProductResponse{*item}, p.lowStock)); err != nil {
		return err
	}
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.w, render.Success(message))
	return err
}

func (p printer) suppliers(items []dto.SupplierResponse) error {
	if p.json {
		return p.encode(dto.SupplierListResponse{Items: items})
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(p.w, render.Warning("No suppliers found."))
		return err
	}
	_, err := fmt.Fprintln(p.w, render.Suppliers(items))
	return err
}

func (p printer) supplier(item *dto.SupplierResponse, message string) error {
	if p.json {
		return p.encode(item)
	}
	if _, err := fmt.Fprintln(p.w, render.Suppliers([]dto.SupplierResponse{*item})); err != nil {
		return err
	}
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.w, render.Success(message))
	return err
}

func (p printer) success(message string) error {
	if p.json {
		return p.encode(map[string]string{"message": message})
	}
	_, err := fmt.Fprintln(p.w, render.Success(message))
	return err
}
