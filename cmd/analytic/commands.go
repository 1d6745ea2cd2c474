package main

import (
	"fmt"
	"io"
	"log"
	"math"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/tuneinsight/analytic/analytic"
	"github.com/tuneinsight/analytic/catalog"
	"github.com/tuneinsight/analytic/utils/sampling"
)

func listCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("list", "lists the relations of the catalog")
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		for _, name := range c.Names() {
			r, err := c.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, r)
		}
		return nil
	}
}

func evalCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("eval", "evaluates a relation")
	name := cmd.Arg("relation", "name of the relation").Required().String()
	xs := cmd.Arg("x", "points at which to evaluate").Required().Float64List()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		r, err := c.Get(*name)
		if err != nil {
			return err
		}
		for _, x := range *xs {
			y, err := r.Evaluate(x)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%g\t%g\n", x, y)
		}
		return nil
	}
}

func solveCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("solve", "finds the points of the validity interval at which a relation takes a value")
	name := cmd.Arg("relation", "name of the relation").Required().String()
	y := cmd.Arg("y", "value to solve for").Required().Float64()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		r, err := c.Get(*name)
		if err != nil {
			return err
		}
		xs, err := r.Solve(*y)
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			log.Printf("%s never equals %g over [%g, %g]", r.Name, *y, r.Lo, r.Hi)
		}
		for _, x := range xs {
			fmt.Fprintf(w, "%g\n", x)
		}
		return nil
	}
}

func deriveCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("derive", "prints the derivative of a relation")
	name := cmd.Arg("relation", "name of the relation").Required().String()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		r, err := c.Get(*name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r.Derivative())
		return nil
	}
}

func integrateCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("integrate", "integrates a polynomial relation over its validity interval")
	name := cmd.Arg("relation", "name of the relation").Required().String()
	prec := cmd.Flag("prec", "bits of precision, 0 for float64").Default("0").Uint()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		r, err := c.Get(*name)
		if err != nil {
			return err
		}
		if p, ok := r.Function.(analytic.Polynomial); ok && *prec != 0 {
			y, ok := p.PreciseIntegral(r.Lo, r.Hi, *prec)
			if !ok {
				fmt.Fprintln(w, math.NaN())
				return nil
			}
			fmt.Fprintln(w, y.Text('g', -1))
			return nil
		}
		y, err := r.Integral()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g\n", y)
		return nil
	}
}

func extremaCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("extrema", "locates the maximum and minimum of a polynomial relation")
	name := cmd.Arg("relation", "name of the relation").Required().String()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		r, err := c.Get(*name)
		if err != nil {
			return err
		}
		xmax, err := r.Maximum()
		if err != nil {
			return err
		}
		xmin, err := r.Minimum()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "max\t%g\t%g\n", xmax, r.Function.Evaluate(xmax))
		fmt.Fprintf(w, "min\t%g\t%g\n", xmin, r.Function.Evaluate(xmin))
		return nil
	}
}

func distanceCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("distance", "root mean square distance between two relations over their common interval")
	a := cmd.Arg("a", "name of the first relation").Required().String()
	b := cmd.Arg("b", "name of the second relation").Required().String()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		ra, err := c.Get(*a)
		if err != nil {
			return err
		}
		rb, err := c.Get(*b)
		if err != nil {
			return err
		}
		d, err := ra.Distance(rb)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g\n", d)
		return nil
	}
}

func deviateCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("deviate", "samples two relations over their common interval and reports their deviation")
	a := cmd.Arg("a", "name of the first relation").Required().String()
	b := cmd.Arg("b", "name of the second relation").Required().String()
	samples := cmd.Flag("samples", "number of sample points").Default("1024").Int()
	seed := cmd.Flag("seed", "seed of the sample points").Default("0").Uint64()
	random := cmd.Flag("random", "draws the sample points from the system entropy and ignores --seed").Bool()
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		ra, err := c.Get(*a)
		if err != nil {
			return err
		}
		rb, err := c.Get(*b)
		if err != nil {
			return err
		}
		lo, hi, err := ra.Overlap(rb)
		if err != nil {
			return err
		}

		var prng sampling.PRNG
		if *random {
			prng, err = sampling.NewPRNG()
		} else {
			prng, err = sampling.NewSeededPRNG(*seed)
		}
		if err != nil {
			return err
		}

		d, err := analytic.Deviate(ra.Function, rb.Function, lo, hi, *samples, prng)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, d)
		return nil
	}
}

func duplicatesCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("duplicates", "lists the groups of relations with identical functions")
	return cmd, func(c *catalog.Catalog, w io.Writer) error {
		for _, group := range c.Duplicates() {
			fmt.Fprintln(w, group)
		}
		return nil
	}
}
