package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercube"
	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/internal/scenario"
	"github.com/katalvlaran/hypercube/internal/ui"
)

type searchFunc func(g *hypercube.Graph, from, to string) (*hypercube.PathResult, error)

func greedySearch(g *hypercube.Graph, from, to string) (*hypercube.PathResult, error) {
	return g.GreedyPath(from, to)
}

func shortestSearch(g *hypercube.Graph, from, to string) (*hypercube.PathResult, error) {
	return g.ShortestPath(from, to)
}

// pathCommand builds "greedy" and "shortest", which share arguments and output.
func (a *app) pathCommand(use, short string, search searchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FROM TO",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := search(g, args[0], args[1])
			if err != nil {
				return err
			}
			a.log.Debug().Str("search", use).Int("edges", res.EdgeCount).Msg("Path found")

			return a.emit(res, func() error {
				_, err := fmt.Fprintf(a.out, "edges: %d, path: %s\n", res.EdgeCount, strings.Join(res.Path, " "))

				return err
			})
		},
	}
}

// compareRow is one line of the compare table.
type compareRow struct {
	Strategy  string   `json:"strategy"`
	Found     bool     `json:"found"`
	EdgeCount int      `json:"edgeCount"`
	Path      []string `json:"path,omitempty"`
}

func (a *app) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FROM TO",
		Short: "Run both searches and BFS on the same cube",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}

			rows := make([]compareRow, 0, 3)
			for _, s := range []struct {
				name   string
				search searchFunc
			}{{"greedy", greedySearch}, {"shortest", shortestSearch}} {
				res, err := s.search(g, args[0], args[1])
				switch {
				case errors.Is(err, hypercube.ErrNoPathFound):
					rows = append(rows, compareRow{Strategy: s.name})
				case err != nil:
					return err
				default:
					rows = append(rows, compareRow{Strategy: s.name, Found: true, EdgeCount: res.EdgeCount, Path: res.Path})
				}
			}
			hops, err := g.HopDistance(args[0], args[1])
			switch {
			case errors.Is(err, hypercube.ErrNoPathFound):
				rows = append(rows, compareRow{Strategy: "bfs"})
			case err != nil:
				return err
			default:
				rows = append(rows, compareRow{Strategy: "bfs", Found: true, EdgeCount: hops})
			}

			return a.emit(rows, func() error {
				table := make([][]string, len(rows))
				for i, r := range rows {
					edges := "no path"
					if r.Found {
						edges = strconv.Itoa(r.EdgeCount)
					}
					table[i] = []string{r.Strategy, edges, strings.Join(r.Path, " ")}
				}

				return ui.Table(a.out, []string{"strategy", "edges", "path"}, table)
			})
		},
	}
}

func (a *app) distanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Exact hop distance in the (damaged) cube",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			d, err := g.HopDistance(args[0], args[1])
			if err != nil {
				return err
			}

			return a.emit(map[string]int{"hops": d}, func() error {
				_, err := fmt.Fprintln(a.out, d)

				return err
			})
		},
	}
}

func (a *app) adjacencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency",
		Short: "List every node with its remaining neighbours",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			adj := g.Adjacency()

			return a.emit(adj, func() error {
				// Value order, matching the construction order of the cube.
				for v := 0; v < g.NodeCount(); v++ {
					bits := fmt.Sprintf("%0*b", g.Dimension(), v)
					if _, err := fmt.Fprintf(a.out, "%s: %s\n", bits, strings.Join(adj[bits], ", ")); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

func (a *app) componentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			comps := g.Components()

			return a.emit(comps, func() error {
				rows := make([][]string, len(comps))
				for i, c := range comps {
					rows[i] = []string{strconv.Itoa(i), strconv.Itoa(len(c)), strings.Join(c, " ")}
				}

				return ui.Table(a.out, []string{"#", "size", "nodes"}, rows)
			})
		},
	}
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise node degrees and removed edges",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			st := g.Stats()

			return a.emit(st, func() error {
				rows := [][]string{
					{"dimension", strconv.Itoa(st.Dimension)},
					{"nodes", strconv.Itoa(st.NodeCount)},
					{"edges", strconv.Itoa(st.EdgeCount)},
					{"removed edges", strconv.Itoa(st.RemovedEdges)},
					{"isolated nodes", strconv.Itoa(st.Isolated)},
					{"degree range", fmt.Sprintf("%d-%d", st.MinDegree, st.MaxDegree)},
				}
				for d, c := range st.DegreeHistogram {
					if c > 0 {
						rows = append(rows, []string{"degree " + strconv.Itoa(d), strconv.Itoa(c)})
					}
				}

				return ui.Table(a.out, []string{"metric", "value"}, rows)
			})
		},
	}
}

func (a *app) scenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [FILE]",
		Short: "Run a YAML scenario (the built-in demo without FILE)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				sc  *scenario.Scenario
				err error
			)
			if len(args) == 0 {
				sc, err = scenario.Demo()
			} else {
				sc, err = parseFile(args[0])
			}
			if err != nil {
				return err
			}

			rep, runErr := scenario.Run(sc, core.WithLogger(a.log))
			if rep == nil {
				return runErr
			}
			a.log.Info().Str("scenario", rep.Name).Int("passed", rep.Passed).Int("failed", rep.Failed).Msg("Scenario finished")

			err = a.emit(rep, func() error {
				rows := make([][]string, len(rep.Steps))
				for i, st := range rep.Steps {
					mark := "PASS"
					if !st.Pass {
						mark = "FAIL"
					}
					rows[i] = []string{
						strconv.Itoa(st.Index), st.Op, st.Outcome, strconv.Itoa(st.EdgeCount),
						strconv.Itoa(st.GraphEdges), mark, strings.Join(st.Path, " "),
					}
				}

				return ui.Table(a.out, []string{"#", "op", "outcome", "count", "graph edges", "result", "path"}, rows)
			})
			if err != nil {
				return err
			}

			return runErr
		},
	}
}

func parseFile(path string) (*scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scenario.Parse(f)
}
