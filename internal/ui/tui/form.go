package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	key   string
	label string
	unit  string
}

var launchFields = []formField{
	{"v0", "Initial velocity", "m/s"},
	{"angle", "Launch angle", "deg"},
	{"mass", "Mass", "kg"},
	{"gravity", "Gravity", "m/s^2"},
	{"drag", "Drag coefficient", "kg/s"},
}

// launchForm holds one text input per launch parameter.
type launchForm struct {
	inputs []textinput.Model
	focus  int
}

func newLaunchForm(d domain.DefaultsConfig) launchForm {
	defaults := []string{"", "", fmtNum(d.Mass), fmtNum(d.Gravity), fmtNum(d.Drag)}

	inputs := make([]textinput.Model, len(launchFields))
	for i, f := range launchFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.unit
		ti.CharLimit = 24
		ti.Width = 16
		ti.SetValue(defaults[i])
		inputs[i] = ti
	}
	inputs[0].Focus()

	return launchForm{inputs: inputs}
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (f launchForm) Update(msg tea.Msg) (launchForm, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab", "down":
			return f.move(1), nil
		case "shift+tab", "up":
			return f.move(-1), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f launchForm) move(delta int) launchForm {
	f.inputs[f.focus].Blur()
	n := len(f.inputs)
	f.focus = ((f.focus+delta)%n + n) % n
	f.inputs[f.focus].Focus()
	return f
}

// Params parses every field; the first unparsable one is reported.
func (f launchForm) Params() (domain.LaunchParameters, error) {
	vals := make([]float64, len(f.inputs))
	for i, in := range f.inputs {
		s := strings.TrimSpace(in.Value())
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			msg := fmt.Sprintf("%q is not a number", s)
			if s == "" {
				msg = "is required"
			}
			return domain.LaunchParameters{}, &domain.OpError{
				Op:   "tui.form",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("field %s: %s: %w", launchFields[i].key, msg, domain.ErrInvalidInput),
			}
		}
		vals[i] = v
	}
	return domain.LaunchParameters{
		InitialVelocity:    vals[0],
		LaunchAngleDegrees: vals[1],
		Mass:               vals[2],
		Gravity:            vals[3],
		DragCoefficient:    vals[4],
	}, nil
}

func (f launchForm) View(t Theme) string {
	var b strings.Builder
	for i, field := range launchFields {
		label := fmt.Sprintf("%-18s", field.label)
		if i == f.focus {
			b.WriteString(t.Focused.Render("> " + label))
		} else {
			b.WriteString(t.Label.Render("  " + label))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString(" ")
		b.WriteString(t.Help.Render(field.unit))
		b.WriteString("\n")
	}
	return b.String()
}
