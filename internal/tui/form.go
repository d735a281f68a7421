package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

type formMode int

const (
	formAdd formMode = iota
	formEdit
)

// expenseForm is the add/edit dialog. vals is a pointer because huh
// binds field values by address and App is copied on every update.
type expenseForm struct {
	mode formMode
	id   string
	vals *model.ExpenseInput
	form *huh.Form
}

func newExpenseForm(mode formMode, id string, in model.ExpenseInput, today time.Time) *expenseForm {
	vals := in
	ef := &expenseForm{mode: mode, id: id, vals: &vals}

	title := "Add expense"
	if mode == formEdit {
		title = "Edit expense"
	}

	categories := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = string(c)
	}

	ef.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What did you spend on?").
				Value(&vals.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&vals.Category),
			huh.NewInput().
				Title("Date").
				Placeholder(model.DateLayout).
				Value(&vals.Date).
				Validate(dateValidator(today)),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&vals.Description),
		).Title(title),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm())

	return ef
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return model.ErrEmptyTitle
	}
	return nil
}

func validateAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func dateValidator(today time.Time) func(string) error {
	return func(s string) error {
		if _, err := model.ResolveDate(s, today); err != nil {
			return errors.New("date must be YYYY-MM-DD, not in the future")
		}
		return nil
	}
}

func (f *expenseForm) resize(w, h int) {
	f.form = f.form.WithWidth(min(w, 72)).WithHeight(h)
}

// openAddForm shows an empty form dated today.
func (a App) openAddForm() (App, tea.Cmd) {
	today := a.now()
	return a.showForm(newExpenseForm(formAdd, "", model.ExpenseInput{
		Category: string(model.FoodDining),
		Date:     model.DateOf(today).Format(model.DateLayout),
	}, today))
}

// openEditForm shows the form prefilled from e.
func (a App) openEditForm(e model.Expense) (App, tea.Cmd) {
	return a.showForm(newExpenseForm(formEdit, e.ID, model.InputFrom(e), a.now()))
}

func (a App) showForm(ef *expenseForm) (App, tea.Cmd) {
	if a.width > 0 {
		ef.resize(a.width, a.height)
	}
	a.form = ef
	return a, ef.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.form = nil
		a.setFlash("Cancelled", false)
		return a, nil
	}

	next, cmd := a.form.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		a.form.form = f
	}

	switch a.form.form.State {
	case huh.StateCompleted:
		a.submitForm()
		return a, nil
	case huh.StateAborted:
		a.form = nil
		return a, nil
	}
	return a, cmd
}

// submitForm applies the form values to the store and closes the form.
func (a *App) submitForm() {
	ef := a.form
	a.form = nil

	var (
		e   model.Expense
		err error
	)
	if ef.mode == formEdit {
		e, err = a.store.Update(ef.id, *ef.vals)
	} else {
		e, err = a.store.Add(*ef.vals)
	}
	if err != nil {
		a.setFlash(err.Error(), true)
		a.log.Warn().Err(err).Str(logging.FieldExpenseID, ef.id).Msg("form submit rejected")
		return
	}

	if ef.mode == formEdit {
		a.setFlash("Updated "+e.Title, false)
	} else {
		a.setFlash("Added "+e.Title, false)
	}
	a.recompute()
}

func (a App) viewForm() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.form.form.View() + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}
