// Package tui is the interactive pathtrace viewer.
//
// The model owns one generated graph and at most one Trace. Auto-run
// advances the trace on tea.Tick; single steps pull one snapshot per key
// press. All state lives in the bubbletea event loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/internal/config"
	"github.com/katalvlaran/pathtrace/internal/render"
)

// tickMsg advances the auto-run identified by run.
type tickMsg struct {
	run int
}

// Model is the bubbletea model of the viewer.
type Model struct {
	cfg  config.Config
	r    *render.Renderer
	keys keyMap
	help help.Model

	seed  int64
	graph *core.Graph
	start string
	goal  string

	trace   *dijkstra.Trace
	state   *dijkstra.SearchState
	result  *dijkstra.PathResult
	running bool
	run     int // bumped on every reset so stale ticks are dropped

	status   string
	err      error
	quitting bool
}

// New generates the first graph from cfg. Start and goal come from cfg and
// may be empty until chosen with the s and g keys.
func New(cfg config.Config, r *render.Renderer) (Model, error) {
	m := Model{
		cfg:   cfg,
		r:     r,
		keys:  defaultKeyMap(),
		help:  help.New(),
		seed:  cfg.Seed,
		start: cfg.Start,
		goal:  cfg.Goal,
	}
	if err := m.regenerate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Err is the last generation or tracing error, if any.
func (m Model) Err() error { return m.err }

// Result is the result of the last finished trace, or nil.
func (m Model) Result() *dijkstra.PathResult { return m.result }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if !m.running || msg.run != m.run {
			return m, nil
		}
		if !m.step() {
			m.running = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.NewGraph):
			m.seed++
			if err := m.regenerate(); err != nil {
				m.err = err
				m.status = err.Error()
			}

		case key.Matches(msg, m.keys.NextStart):
			m.start = m.cycle(m.start)
			m.reset()

		case key.Matches(msg, m.keys.NextGoal):
			m.goal = m.cycle(m.goal)
			m.reset()

		case key.Matches(msg, m.keys.Run):
			if !m.begin() {
				return m, nil
			}
			m.running = true
			return m, m.tick()

		case key.Matches(msg, m.keys.Step):
			m.running = false
			m.run++
			if m.trace == nil || m.result != nil {
				if !m.begin() {
					return m, nil
				}
			}
			m.step()
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	st := m.r.Styles()
	fmt.Fprintf(&b, "%s  seed=%d  start=%s  goal=%s\n\n",
		st.Title.Render("pathtrace"), m.seed, orDash(m.start), orDash(m.goal))
	b.WriteString(m.r.Graph(m.graph))
	b.WriteByte('\n')

	if m.state != nil {
		b.WriteString(m.r.Frame(*m.state))
		b.WriteByte('\n')
	}
	if m.result != nil {
		b.WriteString(m.r.Result(*m.result))
	} else {
		b.WriteString(st.Box.Render(render.StatusLine(nil)))
		b.WriteByte('\n')
	}
	if m.status != "" {
		b.WriteString(st.Examined.Render(m.status))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

// regenerate draws a new graph with the current seed and clears the run.
// Start and goal survive when the new graph still has them.
func (m *Model) regenerate() error {
	g, err := builder.Generate(m.cfg.Nodes, m.cfg.ExtraEdgeProbability, m.cfg.Weights(),
		builder.WithSeed(m.seed))
	if err != nil {
		return err
	}
	m.graph = g
	if !g.HasVertex(m.start) {
		m.start = ""
	}
	if !g.HasVertex(m.goal) {
		m.goal = ""
	}
	m.reset()
	m.status = ""
	return nil
}

// reset drops the current trace and any pending auto-run ticks.
func (m *Model) reset() {
	m.trace = nil
	m.state = nil
	m.result = nil
	m.running = false
	m.run++
}

// begin starts a fresh trace. It reports false, with a status message,
// when start or goal is not chosen.
func (m *Model) begin() bool {
	m.reset()
	if m.start == "" || m.goal == "" {
		m.status = render.StatusSelect
		return false
	}
	tr, err := dijkstra.NewTrace(m.graph, m.start, m.goal)
	if err != nil {
		m.err = err
		m.status = err.Error()
		return false
	}
	m.trace = tr
	m.status = ""
	return true
}

// step pulls one snapshot. It reports false once the trace has ended.
func (m *Model) step() bool {
	if m.trace == nil {
		return false
	}
	s, ok := m.trace.Next()
	if !ok {
		if res, done := m.trace.Result(); done {
			m.result = &res
		}
		return false
	}
	m.state = &s
	return true
}

// tick schedules the next auto-run step. The pause depends on the last
// snapshot: a full delay after a visit, half after an examined edge.
func (m Model) tick() tea.Cmd {
	delay := m.cfg.StepDelay
	if m.state != nil && m.state.Kind == dijkstra.StepExamine {
		delay /= 2
	}
	run := m.run
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{run: run} })
}

// cycle returns the vertex after cur in sorted order, wrapping around.
func (m Model) cycle(cur string) string {
	ids := m.graph.Vertices()
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == cur {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
