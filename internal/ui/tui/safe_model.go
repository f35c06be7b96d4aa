package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.update",
				"screen", int(s.m.scr),
				"params", s.m.lastParams,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)

			s.m = s.m.recovered()
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.view",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.m.View()
}

// recovered drops whatever the panicking update left half-done. A crash while
// solving keeps the form so the inputs can be corrected; anything else goes home.
func (m model) recovered() model {
	solving := m.scr == screenSolve

	m.running = false
	m.result = nil
	m.run = domain.RunResult{}
	m.runID = ""

	if solving {
		m.toast = "Solve failed unexpectedly (see logs)"
		return m
	}
	m.scr = screenHome
	m.toast = "Unexpected error (see logs)"
	return m
}

var _ tea.Model = (*safeModel)(nil)
