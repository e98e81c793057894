package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/jorendorff/toy-calculator/compiler"
	"github.com/jorendorff/toy-calculator/compiler/format"
)

func main() {
	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "print formulas fully parenthesized",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			verbosityFlag(),
			cli.HelpFlag,
		},
	}

	compileCmd := &cli.Command{
		Name:        "compile",
		Description: "print a formula compiled to a Go function",
		Action:      compileAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("pkg", "main", "package name"),
			cli.NewFlag("func", "f", "function name"),
			verbosityFlag(),
			cli.HelpFlag,
		},
	}

	evalCmd := &cli.Command{
		Name:        "eval",
		Description: "evaluate formulas at z",
		Action:      evalAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("at", "0", "complex value of z, like 2+1i"),
			verbosityFlag(),
			cli.HelpFlag,
		},
	}

	app := &cli.Command{
		Name:        "calc",
		Description: "calc compiles complex-valued formulas of z",
		Commands: []*cli.Command{
			parseCmd,
			compileCmd,
			evalCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func verbosityFlag() *cli.Flag {
	return cli.NewFlag("verbosity,v", "", "trace topics: dump_values, dump_uses, dump_program")
}

func setup(c *cli.Command) context.Context {
	tlog.SetVerbosity(c.String("verbosity"))

	return tlog.ContextWithSpan(context.Background(), tlog.Root())
}

func parseAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		x, err := compiler.Parse(ctx, []byte(a))
		if err != nil {
			return errors.Wrap(err, "parse %q", a)
		}

		b, err := format.Format(nil, x)
		if err != nil {
			return errors.Wrap(err, "format %q", a)
		}

		fmt.Printf("%s\n", b)
	}

	return nil
}

func compileAct(c *cli.Command) (err error) {
	ctx := setup(c)

	if len(c.Args) != 1 {
		return errors.New("expected exactly one formula, got %d", len(c.Args))
	}

	a := c.Args[0]

	p, err := compiler.Compile(ctx, a, []byte(a))
	if err != nil {
		return errors.Wrap(err, "compile %q", a)
	}

	fmt.Printf("%s", p.AppendFile(nil, c.String("pkg"), c.String("func")))

	return nil
}

func evalAct(c *cli.Command) (err error) {
	ctx := setup(c)

	z, err := strconv.ParseComplex(c.String("at"), 128)
	if err != nil {
		return errors.Wrap(err, "parse --at")
	}

	for _, a := range c.Args {
		p, err := compiler.Compile(ctx, a, []byte(a))
		if err != nil {
			return errors.Wrap(err, "compile %q", a)
		}

		re, im := p.Func()(real(z), imag(z))

		fmt.Printf("%v = %v\n", a, complex(re, im))
	}

	return nil
}
