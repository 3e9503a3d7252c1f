// Package render draws graphs, search snapshots and results as styled text.
//
// Node colours: unvisited light blue, frontier (and the start) yellow,
// visited green. The edge under examination is red and the final path
// orange.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Palette.
var (
	ColorUnvisited = lipgloss.Color("#ADD8E6") // light blue
	ColorFrontier  = lipgloss.Color("#FFFF00") // yellow
	ColorVisited   = lipgloss.Color("#00C000") // green
	ColorExamined  = lipgloss.Color("#FF0000") // red
	ColorPath      = lipgloss.Color("#FFA500") // orange
	ColorMuted     = lipgloss.Color("#808080")
)

// Status-line texts.
const (
	StatusEmpty    = "Path: --- | Distance: ---"
	StatusNotFound = "No path found."
	StatusSelect   = "Select start and goal."
)

// Styles groups every style a Renderer uses.
type Styles struct {
	Title     lipgloss.Style
	Unvisited lipgloss.Style
	Frontier  lipgloss.Style
	Visited   lipgloss.Style
	Examined  lipgloss.Style
	Path      lipgloss.Style
	Muted     lipgloss.Style
	Box       lipgloss.Style
}

// Renderer turns graphs and snapshots into text for one output.
type Renderer struct {
	styles Styles
}

// New returns a Renderer writing for w. With color false every style
// renders as plain text.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{styles: Styles{
		Title:     lr.NewStyle().Bold(true),
		Unvisited: lr.NewStyle().Foreground(ColorUnvisited),
		Frontier:  lr.NewStyle().Foreground(ColorFrontier).Bold(true),
		Visited:   lr.NewStyle().Foreground(ColorVisited).Bold(true),
		Examined:  lr.NewStyle().Foreground(ColorExamined).Bold(true),
		Path:      lr.NewStyle().Foreground(ColorPath).Bold(true),
		Muted:     lr.NewStyle().Foreground(ColorMuted),
		Box: lr.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
	}}
}

// Styles exposes the renderer's styles, e.g. for a TUI frame.
func (r *Renderer) Styles() Styles { return r.styles }

// ColorEnabled resolves a colour mode ("auto", "always", "never") for w.
// "auto" enables colour only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Caption is the one-line title of a snapshot.
func Caption(s dijkstra.SearchState) string {
	switch s.Kind {
	case dijkstra.StepStart:
		return "start"
	case dijkstra.StepVisit:
		return "visiting " + s.Current
	case dijkstra.StepExamine:
		return fmt.Sprintf("processing %s → %s", s.Edge.From, s.Edge.To)
	default:
		return s.Kind.String()
	}
}

// FormatDistance renders a distance, using ∞ for unreached vertices.
func FormatDistance(d int64) string {
	if d == dijkstra.Infinity {
		return "∞"
	}
	return fmt.Sprint(d)
}

// StatusLine renders the result label; nil means no search has run yet.
func StatusLine(res *dijkstra.PathResult) string {
	switch {
	case res == nil:
		return StatusEmpty
	case !res.Found:
		return StatusNotFound
	default:
		return fmt.Sprintf("Path: %s | Distance: %d", res.Format(" → "), res.Distance)
	}
}

// Graph renders the vertex list and one line per edge in insertion order.
func (r *Renderer) Graph(g *core.Graph) string {
	var b strings.Builder
	st := g.Stats()
	fmt.Fprintf(&b, "%s %d vertices, %d edges, weights %d..%d\n",
		r.styles.Title.Render("graph"), st.VertexCount, st.EdgeCount, st.MinWeight, st.MaxWeight)
	ids := g.Vertices()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = r.styles.Unvisited.Render(id)
	}
	fmt.Fprintf(&b, "  nodes: %s\n", strings.Join(names, " "))
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s %s\n", r.edgeLabel(e.From, e.To, g.Directed()), r.styles.Muted.Render(fmt.Sprintf("w=%d", e.Weight)))
	}
	return b.String()
}

// Frame renders a snapshot: caption, coloured nodes with distances and,
// for StepExamine, the relaxed edge.
func (r *Renderer) Frame(s dijkstra.SearchState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.styles.Muted.Render(fmt.Sprintf("[%d]", s.Seq)), r.styles.Title.Render(Caption(s)))

	ids := make([]string, 0, len(s.Distance))
	for id := range s.Distance {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	cells := make([]string, len(ids))
	for i, id := range ids {
		cells[i] = r.nodeStyle(s, id).Render(id + "=" + FormatDistance(s.Distance[id]))
	}
	fmt.Fprintf(&b, "  %s\n", strings.Join(cells, " "))

	if s.Kind == dijkstra.StepExamine {
		verdict := "kept"
		if s.Improved {
			verdict = "improved"
		}
		fmt.Fprintf(&b, "  %s %s\n",
			r.styles.Examined.Render(fmt.Sprintf("%s → %s w=%d", s.Edge.From, s.Edge.To, s.Edge.Weight)),
			r.styles.Muted.Render(fmt.Sprintf("candidate %s, %s", FormatDistance(s.Candidate), verdict)))
	}
	return b.String()
}

// Result renders the final frame: the path highlighted and the status line.
func (r *Renderer) Result(res dijkstra.PathResult) string {
	var b strings.Builder
	if res.Found {
		fmt.Fprintf(&b, "%s %s\n",
			r.styles.Title.Render(fmt.Sprintf("final path (dist=%d)", res.Distance)),
			r.styles.Path.Render(res.Format(" → ")))
	}
	b.WriteString(r.styles.Box.Render(StatusLine(&res)))
	b.WriteByte('\n')
	return b.String()
}

// Distances renders an all-targets table sorted by vertex ID: weighted
// distance, hop count of the fewest-edge route, and predecessor on the
// shortest path. A nil hops map omits that column.
func (r *Renderer) Distances(source string, dist map[string]int64, prev map[string]string, hops map[string]int) string {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.styles.Title.Render("distances from"), r.styles.Frontier.Render(source))
	for _, id := range ids {
		via := prev[id]
		if via == "" {
			via = "-"
		}
		style := r.styles.Visited
		if dist[id] == dijkstra.Infinity {
			style = r.styles.Unvisited
		}
		hop := ""
		if hops != nil {
			hop = "     -"
			if h, ok := hops[id]; ok {
				hop = fmt.Sprintf("%6d", h)
			}
			hop = "  hops" + hop
		}
		fmt.Fprintf(&b, "  %-4s %6s%s  via %s\n", style.Render(id), FormatDistance(dist[id]), hop, via)
	}
	return b.String()
}

func (r *Renderer) nodeStyle(s dijkstra.SearchState, id string) lipgloss.Style {
	switch {
	case s.IsVisited(id):
		return r.styles.Visited
	case s.InFrontier(id):
		return r.styles.Frontier
	default:
		return r.styles.Unvisited
	}
}

func (r *Renderer) edgeLabel(from, to string, directed bool) string {
	sep := "—"
	if directed {
		sep = "→"
	}
	return from + sep + to
}
