// Command analytic inspects the relations of a catalog file.
//
//	analytic -c relations.toml list
//	analytic -c relations.toml eval water-density 300 310
//	analytic -c relations.toml deviate a b --samples 1024 --seed 42
package main

import (
	"io"
	"log"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/tuneinsight/analytic/catalog"
)

// handler runs a parsed command against the loaded catalog.
type handler func(c *catalog.Catalog, w io.Writer) error

// command registers a sub-command of the application and returns its handler.
type command func(app *kingpin.Application) (*kingpin.CmdClause, handler)

var commands = []command{
	listCommand,
	evalCommand,
	solveCommand,
	deriveCommand,
	integrateCommand,
	extremaCommand,
	distanceCommand,
	deviateCommand,
	duplicatesCommand,
}

func newApplication() (app *kingpin.Application, path *string, handlers map[string]handler) {

	app = kingpin.New("analytic", "Evaluates and compares the analytic relations of a catalog.")
	app.HelpFlag.Short('h')

	path = app.Flag("catalog", "path of the TOML catalog").Short('c').Required().ExistingFile()

	handlers = map[string]handler{}
	for _, cmd := range commands {
		clause, h := cmd(app)
		handlers[clause.FullCommand()] = h
	}

	return
}

func run(args []string, w io.Writer) error {

	app, path, handlers := newApplication()

	input, err := app.Parse(args)
	if err != nil {
		return err
	}

	c, err := catalog.Load(*path)
	if err != nil {
		return err
	}

	return handlers[input](c, w)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("analytic: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
