// Public domain.

// Package mqprog implements the mpcquery command.
package mqprog

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/mpcquery/mpc"
)

const parentImport = "github.com/soniakeys/mpcquery"
const versionString = "mpcquery version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	s, err := loadSettings(cl.fnConfig)
	if err != nil {
		exit.Log(err)
	}
	verbose := s.verbose || cl.verbose

	logger, err := newLogger(verbose)
	if err != nil {
		exit.Log(err)
	}
	defer logger.Sync()

	c := mpc.New(s.mpc, mpc.WithLogger(logger))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, c, cl, verbose, os.Stdout); err != nil {
		exit.Log(err)
	}
}

// run performs the query selected on the command line and writes the
// result to w.
func run(ctx context.Context, c *mpc.Client, cl *commandLine, verbose bool, w io.Writer) error {
	if cl.constraints == "" {
		if cl.payload {
			p, err := c.ObjectPayload(cl.identifier)
			if err != nil {
				return err
			}
			printPayload(w, p)
			return nil
		}
		rec, err := c.QueryObject(ctx, cl.identifier, verbose)
		if err != nil {
			return err
		}
		printObject(w, rec)
		return nil
	}
	if cl.payload {
		p, err := c.ParametersPayload(cl.constraints, cl.returnRequest)
		if err != nil {
			return err
		}
		printPayload(w, p)
		return nil
	}
	var q mpc.Query
	var err error
	if q.Constraints, err = mpc.ParseConstraints(cl.constraints); err != nil {
		return err
	}
	if cl.returnRequest != "" {
		if q.Return, err = mpc.ParseFields(cl.returnRequest); err != nil {
			return err
		}
	}
	recs, err := c.Search(ctx, q, verbose)
	if err != nil {
		return err
	}
	printTable(w, mpc.NewTable(recs, q.Return...))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

type commandLine struct {
	fnConfig      string // config file
	constraints   string // -s
	returnRequest string // -r
	payload       bool   // -payload
	verbose       bool   // -verbose
	identifier    string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.fnConfig, "c", "", "")
	flag.StringVar(&cl.constraints, "s", "", "")
	flag.StringVar(&cl.returnRequest, "r", "", "")
	flag.BoolVar(&cl.payload, "payload", false, "")
	flag.BoolVar(&cl.verbose, "verbose", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: mpcquery [options] <identifier>       look up one object
       mpcquery [options] -s <constraints>   search by constraints
       mpcquery -h                           display help and quick reference
       mpcquery -v                           display version and copyright

Options:
       -c <config-file>
       -r <return fields>
       -payload
       -verbose
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case cl.constraints == "" && flag.NArg() != 1,
		cl.constraints != "" && flag.NArg() != 0:
		flag.Usage()
		os.Exit(1)
	}
	cl.identifier = flag.Arg(0)
	return &cl
}

func printHelp() {
	fmt.Println(`
Mpcquery queries the Minor Planet Center web service for a single object
by name, number or provisional designation, or searches the catalog with
constraints on orbital and physical fields.

Constraint clauses:
   <field> <value>        field equals value
   <field>_min <value>    field at least value
   <field>_max <value>    field at most value
Join clauses with commas, for example
   mpcquery -s "semimajor_axis_min 15, inclination_max 10"

Config file and environment (MPCQUERY_<KEY>) keys:
   url
   timeout             seconds
   retrieval_timeout   seconds
   username
   password
   verbose

Orbit classes reported for objects:`)
	for _, c := range mpc.OrbitClasses {
		fmt.Printf("   %3s   %s\n", c.Abbr, c.Heading)
	}
	fmt.Println(`
For full documentation:
   go doc ` + parentImport)
}
