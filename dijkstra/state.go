package dijkstra

import (
	"fmt"
	"strings"
)

// StepKind tells which point of the search a SearchState was taken at.
type StepKind int

const (
	// StepStart is the single snapshot taken before the first pop.
	StepStart StepKind = iota
	// StepVisit follows the finalisation of SearchState.Current.
	StepVisit
	// StepExamine follows the relaxation of SearchState.Edge.
	StepExamine
)

// String returns "start", "visit" or "examine".
func (k StepKind) String() string {
	switch k {
	case StepStart:
		return "start"
	case StepVisit:
		return "visit"
	case StepExamine:
		return "examine"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// EdgeRef names the edge examined in a StepExamine snapshot, oriented in
// the direction it was traversed (From is the vertex being expanded).
type EdgeRef struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// SearchState is a point-in-time copy of the search. Nothing in it aliases
// the running trace, so consumers may keep or mutate snapshots freely.
type SearchState struct {
	// Seq numbers snapshots from 0 in emission order.
	Seq int
	// Kind is the step the snapshot was taken after.
	Kind StepKind
	// Current is the vertex being expanded; empty for StepStart.
	Current string
	// Distance holds the tentative distance of every vertex (Infinity if unreached).
	Distance map[string]int64
	// Visited lists finalised vertices, sorted.
	Visited []string
	// Frontier lists reached but not finalised vertices, sorted.
	Frontier []string
	// Edge is set for StepExamine only.
	Edge *EdgeRef
	// Candidate is Distance[Current] + Edge.Weight for StepExamine.
	Candidate int64
	// Improved reports whether the examined edge lowered Distance[Edge.To].
	Improved bool
}

// IsVisited reports whether id is in s.Visited.
func (s SearchState) IsVisited(id string) bool {
	return containsSorted(s.Visited, id)
}

// InFrontier reports whether id is in s.Frontier.
func (s SearchState) InFrontier(id string) bool {
	return containsSorted(s.Frontier, id)
}

// PathResult is the outcome of a finished trace. A zero PathResult means
// the goal is unreachable from the start.
type PathResult struct {
	Found    bool
	Distance int64
	// Path runs from start to goal inclusive; nil when not Found.
	Path []string
}

// Format joins the path with sep, or returns "" when no path was found.
func (r PathResult) Format(sep string) string {
	if !r.Found {
		return ""
	}
	return strings.Join(r.Path, sep)
}

// String renders "A → B → C (distance 3)" or "no path found".
func (r PathResult) String() string {
	if !r.Found {
		return "no path found"
	}
	return fmt.Sprintf("%s (distance %d)", r.Format(" → "), r.Distance)
}
