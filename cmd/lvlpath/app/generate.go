// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/graphfile"
)

// Kinds lists the topologies accepted by the generate command.
var Kinds = []string{"path", "cycle", "star", "wheel", "complete", "grid", "sparse", "regular"}

type Generate struct {
	cmd *cobra.Command

	mainopts  *Options
	seed      int64
	prob      float64
	degree    int
	cols      int
	firstID   uint64
	minWeight uint64
	maxWeight uint64
	out       string
}

func NewGenerate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <kind> <n>",
		Short: "generate a graph document",
		Long: `
Generate a graph document for one of the kinds
  ` + strings.Join(Kinds, ", ") + `
For grid, <n> is the number of rows (see --cols).
`,
		Args: cobra.ExactArgs(2),
	}

	c := &Generate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.Int64Var(&c.seed, "seed", 1, "random seed")
	flags.Float64VarP(&c.prob, "prob", "p", 0.3, "edge probability (sparse)")
	flags.IntVar(&c.degree, "degree", 3, "vertex degree (regular)")
	flags.IntVar(&c.cols, "cols", 0, "number of columns (grid, default rows)")
	flags.Uint64Var(&c.firstID, "first-id", 1, "first vertex ID")
	flags.Uint64Var(&c.minWeight, "min-weight", builder.DefaultEdgeWeight, "minimum edge weight")
	flags.Uint64Var(&c.maxWeight, "max-weight", builder.DefaultEdgeWeight, "maximum edge weight")
	flags.StringVar(&c.out, "out", "", "write the document to this file instead of stdout")
	return cmd
}

func (c *Generate) Run(args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "invalid size %q", args[1])
	}
	if c.maxWeight < c.minWeight {
		return errors.Errorf("max-weight %d below min-weight %d", c.maxWeight, c.minWeight)
	}

	cons, err := c.constructor(args[0], n)
	if err != nil {
		return err
	}
	spec, err := builder.Build([]builder.Option{
		builder.WithSeed(c.seed),
		builder.WithFirstID(c.firstID),
		builder.WithWeightFn(builder.UniformWeight(c.minWeight, c.maxWeight)),
	}, cons)
	if err != nil {
		return errors.Wrapf(err, "generating %s", args[0])
	}
	doc := graphfile.FromSpec(spec)

	if c.out != "" {
		if err := graphfile.Save(c.mainopts.fs, c.out, doc); err != nil {
			return err
		}
		c.mainopts.logger().Info("wrote {{file}}", "file", c.out)
		return nil
	}

	// Text output is the document itself.
	return render(c.cmd.OutOrStdout(), c.mainopts.output, doc, func(w io.Writer) error {
		data, err := graphfile.Encode(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
}

func (c *Generate) constructor(kind string, n int) (builder.Constructor, error) {
	switch strings.ToLower(kind) {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		cols := c.cols
		if cols == 0 {
			cols = n
		}
		return builder.Grid(n, cols), nil
	case "sparse":
		return builder.RandomSparse(n, c.prob), nil
	case "regular":
		return builder.RandomRegular(n, c.degree), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (use one of %s)", kind, strings.Join(Kinds, ", "))
	}
}
