// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dfs"
)

type Paths struct {
	cmd *cobra.Command

	mainopts *Options
	maxDepth int
}

type pathsResult struct {
	Count int        `json:"count"`
	Paths [][]uint64 `json:"paths"`
}

func NewPaths(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <from> <to>",
		Short: "print all simple paths",
		Long: `
Print every cycle-free path between two vertices, shortest (by hop count)
first. Edges are traversed in both directions; weights are ignored.
`,
		Args: cobra.ExactArgs(2),
	}

	c := &Paths{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.maxDepth, "max-depth", "d", dfs.Unlimited, "maximum path length in edges (-1 for no limit)")
	return cmd
}

func (c *Paths) Run(args []string) error {
	from, err := vertexArg("from", args[0])
	if err != nil {
		return err
	}
	to, err := vertexArg("to", args[1])
	if err != nil {
		return err
	}
	if c.maxDepth < dfs.Unlimited {
		return errors.Errorf("max-depth %d below %d", c.maxDepth, dfs.Unlimited)
	}
	g, err := c.mainopts.graph()
	if err != nil {
		return err
	}

	paths := dfs.AllPaths(g, from, to, dfs.WithMaxDepth(c.maxDepth))
	slices.SortFunc(paths, comparePaths)

	res := pathsResult{Count: len(paths), Paths: make([][]uint64, len(paths))}
	for i, p := range paths {
		res.Paths[i] = p.Uint64s()
	}

	return render(c.cmd.OutOrStdout(), c.mainopts.output, res, func(w io.Writer) error {
		if len(paths) == 0 {
			_, err := fmt.Fprintf(w, "no path from %s to %s\n", from, to)
			return err
		}
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// comparePaths orders by hop count, then vertex by vertex.
func comparePaths(a, b core.Path) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}
