package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldOption
	fieldCheckbox
)

// formOption is one entry of a selector field: the referenced record's
// identifier plus the label shown for it.
type formOption struct {
	id    int
	label string
}

type formField struct {
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []formOption
	optIndex int
	checked  bool
}

// form is the state behind an entity modal: its fields, which one has
// focus, and the hidden record identifier that decides whether submitting
// creates or updates.
type form struct {
	modal  Modal
	title  string
	id     string
	fields []formField
	focus  int
}

func newTextField(label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(value)

	return formField{label: label, kind: fieldText, input: ti}
}

func newOptionField(label string, options []formOption, selectedID int) formField {
	idx := 0

	for i, opt := range options {
		if opt.id == selectedID {
			idx = i

			break
		}
	}

	return formField{label: label, kind: fieldOption, options: options, optIndex: idx}
}

func newCheckboxField(label string, checked bool) formField {
	return formField{label: label, kind: fieldCheckbox, checked: checked}
}

func (f *form) focusField(i int) {
	if len(f.fields) == 0 {
		return
	}

	f.focus = (i + len(f.fields)) % len(f.fields)

	for j := range f.fields {
		if j == f.focus && f.fields[j].kind == fieldText {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

func (f *form) next() {
	f.focusField(f.focus + 1)
}

func (f *form) prev() {
	f.focusField(f.focus - 1)
}

// handleKey routes a keypress to the focused field. Left/right cycle the
// selected option or toggle the checkbox; anything else goes to the text
// input.
func (f *form) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	field := &f.fields[f.focus]

	switch field.kind {
	case fieldOption:
		if len(field.options) == 0 {
			return nil
		}

		switch msg.String() {
		case "left", "h":
			field.optIndex = (field.optIndex - 1 + len(field.options)) % len(field.options)
		case "right", "l", " ":
			field.optIndex = (field.optIndex + 1) % len(field.options)
		}

		return nil
	case fieldCheckbox:
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			field.checked = !field.checked
		}

		return nil
	default:
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)

		return cmd
	}
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f form) optionID(i int) int {
	field := f.fields[i]
	if len(field.options) == 0 {
		return 0
	}

	return field.options[field.optIndex].id
}

func (f form) checkedAt(i int) bool {
	return f.fields[i].checked
}

func (f form) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := fieldLabelStyle.Render(field.label)
		if i == f.focus {
			label = focusedLabelStyle.Render(field.label)
		}

		b.WriteString(label)

		switch field.kind {
		case fieldOption:
			if len(field.options) == 0 {
				b.WriteString("(no options)")
			} else {
				b.WriteString("< " + field.options[field.optIndex].label + " >")
			}
		case fieldCheckbox:
			if field.checked {
				b.WriteString("[x] yes")
			} else {
				b.WriteString("[ ] no")
			}
		default:
			b.WriteString(field.input.View())
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save - esc cancel - tab next field - left/right change option"))

	return modalStyle.Render(b.String())
}
