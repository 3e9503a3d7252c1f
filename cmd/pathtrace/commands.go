package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/bfs"
	"github.com/katalvlaran/pathtrace/dfs"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/internal/ctxlog"
	"github.com/katalvlaran/pathtrace/internal/tui"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph and print its vertices and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			connected, err := bfs.Connected(g)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, a.r.Graph(g))
			fmt.Fprintf(a.stdout, "connected: %t\n", connected)
			return nil
		},
	}
}

func newTraceCmd(a *app) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace a shortest-path search and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := endpoint(a.cfg.Start, "start")
			if err != nil {
				return err
			}
			goal, err := endpoint(a.cfg.Goal, "goal")
			if err != nil {
				return err
			}
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			tr, err := dijkstra.NewTrace(g, start, goal)
			if err != nil {
				return err
			}

			fmt.Fprint(a.stdout, a.r.Graph(g))
			fmt.Fprintln(a.stdout)
			res, err := a.r.Stream(cmd.Context(), a.stdout, tr, a.cfg.StepDelay)
			if err != nil {
				return err
			}
			logger := ctxlog.FromContext(cmd.Context())
			logger.Info("trace finished",
				"start", start, "goal", goal, "found", res.Found, "distance", res.Distance)
			if !verify {
				return nil
			}

			check, err := dfs.Cheapest(g, start, goal, dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			if check.Found != res.Found || check.Cost != res.Distance {
				return fmt.Errorf("%w: trace found=%t distance=%d, exhaustive found=%t cost=%d",
					errVerifyMismatch, res.Found, res.Distance, check.Found, check.Cost)
			}
			logger.Debug("trace verified", "simple_paths", check.Explored)
			fmt.Fprintf(a.stdout, "verified against %d simple paths\n", check.Explored)
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result against every simple path")
	cmd.Flags().StringVar(&a.start, "start", "", "start vertex")
	cmd.Flags().StringVar(&a.goal, "goal", "", "goal vertex")
	cmd.Flags().DurationVar(&a.delay, "delay", 0, "pause after each visited vertex (default from config)")
	return cmd
}

func newDistancesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the shortest distance from a source to every vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := endpoint(a.cfg.Start, "source")
			if err != nil {
				return err
			}
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(source), dijkstra.WithReturnPath())
			if err != nil {
				return err
			}
			levels, err := bfs.BFS(g, source)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, a.r.Distances(source, dist, prev, levels.Depth))
			return nil
		},
	}
	// --source shares the start slot of the config.
	cmd.Flags().StringVar(&a.start, "source", "", "source vertex")
	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore graphs and searches interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := tui.New(a.cfg, a.r)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithOutput(a.stdout),
				tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(tui.Model); ok && fm.Result() != nil {
				ctxlog.FromContext(cmd.Context()).Info("last search", "result", fm.Result().String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a.start, "start", "", "initial start vertex")
	cmd.Flags().StringVar(&a.goal, "goal", "", "initial goal vertex")
	cmd.Flags().DurationVar(&a.delay, "delay", 0, "auto-run pause after each visited vertex (default from config)")
	return cmd
}
