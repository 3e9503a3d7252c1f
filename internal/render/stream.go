package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Token costs per snapshot kind: an examined edge gets half the pause of a visit.
const (
	costVisit   = 2
	costExamine = 1
)

// pacer spaces snapshots out in time. A zero delay disables pacing.
func pacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, costVisit)
	}
	// One token per half delay; a visit costs two tokens.
	return rate.NewLimiter(rate.Every(delay/costVisit), costVisit)
}

// Stream pulls every remaining snapshot from tr and writes its frame to w.
// The first frame is immediate; afterwards a visit waits delay and an
// examined edge delay/2. It returns the final result, or ctx's error if
// cancelled first.
func (r *Renderer) Stream(ctx context.Context, w io.Writer, tr *dijkstra.Trace, delay time.Duration) (dijkstra.PathResult, error) {
	lim := pacer(delay)
	for s := range tr.States() {
		cost := costExamine
		if s.Kind != dijkstra.StepExamine {
			cost = costVisit
		}
		if err := lim.WaitN(ctx, cost); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return dijkstra.PathResult{}, ctxErr
			}
			return dijkstra.PathResult{}, err
		}
		if _, err := io.WriteString(w, r.Frame(s)); err != nil {
			return dijkstra.PathResult{}, fmt.Errorf("render: write frame %d: %w", s.Seq, err)
		}
	}

	res, _ := tr.Result()
	if _, err := io.WriteString(w, r.Result(res)); err != nil {
		return res, fmt.Errorf("render: write result: %w", err)
	}
	return res, nil
}
