package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/inventario-cli/internal/application/input"
	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/interfaces/render"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

type state int

const (
	stateMenu state = iota
	stateBusy
	stateForm
	stateConfirm
	stateResult
)

// Farewell despedida al salir del shell.
const Farewell = "Thank you for using Inventory Management System!"

// Config opciones del shell interactivo.
type Config struct {
	LowStockThreshold int
}

type optionsLoadedMsg struct {
	act  *action
	opts options
	err  error
}

type resultMsg struct {
	outcome outcome
	err     error
}

// Model estado del shell: menú, formulario, confirmación y resultado.
type Model struct {
	ctx   context.Context
	store inventory.Store
	log   *logger.Logger

	menu    list.Model
	state   state
	current *action
	form    *form
	confirm ConfirmationDialog
	pending operation

	result   outcome
	err      error
	quitting bool
}

// New crea el modelo sobre un Store ya construido.
func New(ctx context.Context, store inventory.Store, cfg Config, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}

	acts := newActions(cfg.LowStockThreshold)
	items := make([]list.Item, len(acts))
	for i, a := range acts {
		items[i] = menuItem{act: a}
	}

	menu := list.New(items, list.NewDefaultDelegate(), 60, 30)
	menu.Title = "Inventory Management System"
	menu.Styles.Title = titleStyle
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.KeyMap.Quit.SetEnabled(false)

	return Model{
		ctx:   ctx,
		store: store,
		log:   log,
		menu:  menu,
		state: stateMenu,
	}
}

// Run arranca el programa de bubbletea y bloquea hasta que el usuario sale.
func Run(ctx context.Context, store inventory.Store, cfg Config, log *logger.Logger) error {
	p := tea.NewProgram(New(ctx, store, cfg, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case optionsLoadedMsg:
		if msg.err != nil {
			return m.showResult(outcome{}, msg.err), nil
		}
		return m.openForm(msg.act, msg.opts)

	case resultMsg:
		return m.showResult(msg.outcome, msg.err), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	switch m.state {
	case stateMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case stateForm:
		return m, m.form.forward(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		switch msg.String() {
		case "enter":
			item, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.begin(item.act)
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case stateForm:
		if msg.String() == "esc" {
			return m.backToMenu(), nil
		}
		submit, cmd := m.form.update(msg)
		if !submit {
			return m, cmd
		}
		return m.submit(m.form.values())

	case stateConfirm:
		if msg.String() == "esc" {
			return m.backToMenu(), nil
		}
		decided, confirmed := m.confirm.Update(msg)
		if !decided {
			return m, nil
		}
		if !confirmed {
			return m.showResult(outcome{warning: "Deletion cancelled."}, nil), nil
		}
		return m.run(m.pending)

	case stateResult:
		return m.backToMenu(), nil
	}

	return m, nil
}

// begin arranca la acción elegida en el menú.
func (m Model) begin(act *action) (tea.Model, tea.Cmd) {
	if act.exit {
		m.quitting = true
		return m, tea.Quit
	}

	m.current = act
	if act.load != 0 {
		m.state = stateBusy
		return m, m.loadOptions(act)
	}
	return m.openForm(act, options{})
}

func (m Model) openForm(act *action, opts options) (tea.Model, tea.Cmd) {
	m.current = act

	if act.requireProducts && len(opts.products) == 0 {
		return m.showResult(outcome{warning: "No products available."}, nil), nil
	}

	var fields []field
	if act.fields != nil {
		fields = act.fields(opts)
	}
	if len(fields) == 0 {
		return m.submit(nil)
	}

	m.form = newForm(act.title, fields)
	m.state = stateForm
	return m, m.form.setFocus(0)
}

// submit valida la entrada; si falla, el formulario sigue abierto con el error.
func (m Model) submit(v input.Values) (tea.Model, tea.Cmd) {
	op, err := m.current.prepare(v)
	if err != nil {
		if m.form != nil && m.state == stateForm {
			m.form.err = err
			return m, nil
		}
		return m.showResult(outcome{}, err), nil
	}

	if m.current.confirm != "" {
		m.pending = op
		m.confirm = NewConfirmationDialog(m.current.title, m.current.confirm)
		m.state = stateConfirm
		return m, nil
	}
	return m.run(op)
}

func (m Model) run(op operation) (tea.Model, tea.Cmd) {
	m.state = stateBusy
	ctx, store := m.ctx, m.store
	return m, func() tea.Msg {
		out, err := op(ctx, store)
		return resultMsg{outcome: out, err: err}
	}
}

func (m Model) loadOptions(act *action) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		var (
			opts options
			err  error
		)
		if act.load&loadProducts != 0 {
			if opts.products, err = store.ListProducts(ctx); err != nil {
				return optionsLoadedMsg{act: act, err: err}
			}
		}
		if act.load&loadSuppliers != 0 {
			if opts.suppliers, err = store.ListSuppliers(ctx); err != nil {
				return optionsLoadedMsg{act: act, err: err}
			}
		}
		return optionsLoadedMsg{act: act, opts: opts}
	}
}

func (m Model) showResult(out outcome, err error) Model {
	if err != nil {
		m.log.Debug().Err(err).Msg("operación fallida en el shell")
	}
	m.result = out
	m.err = err
	m.state = stateResult
	return m
}

func (m Model) backToMenu() Model {
	m.state = stateMenu
	m.current = nil
	m.form = nil
	m.pending = nil
	m.result = outcome{}
	m.err = nil
	return m
}

func (m Model) View() string {
	if m.quitting {
		return Farewell + "\n"
	}

	switch m.state {
	case stateBusy:
		return mutedStyle.Render("Working…")
	case stateForm:
		return m.form.view()
	case stateConfirm:
		return m.confirm.View()
	case stateResult:
		return m.resultView()
	}
	return m.menu.View()
}

func (m Model) resultView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(render.Failure(m.err))
		b.WriteString("\n")
	} else {
		if m.result.title != "" {
			b.WriteString(render.Title(m.result.title))
			b.WriteString("\n")
		}
		if m.result.body != "" {
			b.WriteString(m.result.body)
			b.WriteString("\n")
		}
		if m.result.warning != "" {
			b.WriteString(render.Warning(m.result.warning))
			b.WriteString("\n")
		}
		if m.result.message != "" {
			b.WriteString(render.Success(m.result.message))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render(render.Muted("Press any key to return to the menu")))
	return b.String()
}
