// SPDX-License-Identifier: MIT

package app

import (
	"os"
	"strconv"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/graphfile"
)

// REALM is the logging realm of the command line tool.
var REALM = logging.DefineRealm("lvlpath/cli", "lvlpath command")

// EnvLogLevel provides the default for --log-level.
const EnvLogLevel = "LVLPATH_LOG_LEVEL"

// Options are the persistent settings shared by all sub commands.
type Options struct {
	file     string
	output   string
	logLevel string
	envSubst bool
	fs       vfs.FileSystem
}

// New creates the root command. The optional file system replaces the
// operating system file system for graph documents.
func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:       osfs.OsFs,
		logLevel: os.Getenv(EnvLogLevel),
	}
	if len(fss) > 0 && fss[0] != nil {
		opts.fs = fss[0]
	}

	maincmd := &cobra.Command{
		Use:   "lvlpath <options> <cmd> <args>",
		Short: "shortest and simple paths in weighted graphs",
		Long: `
This command loads an undirected weighted graph from a YAML or JSON
document and answers path queries on it:

  vertices: [1, 2, 3]
  edges:
    - {from: 1, to: 2, weight: [4]}
    - {from: 2, to: 3, weight: [5]}
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		TraverseChildren:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return opts.setupLogging() },
	}

	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewShortest(opts))
	maincmd.AddCommand(NewPaths(opts))
	maincmd.AddCommand(NewNeighbors(opts))
	maincmd.AddCommand(NewInfo(opts))
	maincmd.AddCommand(NewGenerate(opts))

	return maincmd
}

// AddFlags registers the shared options on flags.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.file, "file", "f", "", "graph document (YAML or JSON)")
	flags.StringVarP(&o.output, "output", "o", "text", "output format (text, yaml, json)")
	flags.StringVarP(&o.logLevel, "log-level", "L", o.logLevel, "log level for lvlpath realms (env "+EnvLogLevel+")")
	flags.BoolVarP(&o.envSubst, "env", "e", false, "expand ${VAR} references in the graph document")
}

func (o *Options) setupLogging() error {
	if o.logLevel == "" {
		return nil
	}
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", o.logLevel)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("lvlpath")))

	return nil
}

// document loads the graph document named by --file.
func (o *Options) document() (*graphfile.Document, error) {
	if o.file == "" {
		return nil, errors.New("graph document required (--file)")
	}
	var gopts []graphfile.Option
	if o.envSubst {
		gopts = append(gopts, graphfile.WithEnvSubst())
	}

	return graphfile.Load(o.fs, o.file, gopts...)
}

// graph loads and builds the graph named by --file.
func (o *Options) graph() (*core.Graph[core.Scalar], error) {
	doc, err := o.document()
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// vertexArg parses a decimal vertex ID.
func vertexArg(name, s string) (core.VertexID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return core.VertexID{}, errors.Wrapf(err, "invalid %s vertex %q", name, s)
	}

	return core.WrapVertexID(n), nil
}

func (o *Options) logger() logging.Logger {
	return logging.DefaultContext().Logger(REALM)
}
