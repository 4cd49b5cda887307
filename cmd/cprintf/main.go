// Command cprintf formats its arguments like the C printf function.
//
//	cprintf [--locale TAG] [--single] [--newline] FORMAT [ARGS...]
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/shogo82148/cprintf"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := runApp(app, os.Args...); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cprintf"
	app.Usage = "format and print data with C printf semantics"
	app.ArgsUsage = "FORMAT [ARGS...]"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "locale",
			Aliases: []string{"l"},
			Usage:   "BCP 47 language tag selecting the decimal separator and symbols, or C",
			Value:   "C",
			EnvVars: []string{"CPRINTF_LOCALE"},
		},
		&cli.BoolFlag{
			Name:  "single",
			Usage: "treat floating-point arguments as single precision",
		},
		&cli.BoolFlag{
			Name:    "newline",
			Aliases: []string{"n"},
			Usage:   "append a newline to the output",
		},
	}
	app.Action = runPrintf
	return app
}

func runApp(app *cli.App, args ...string) error {
	err := app.Run(args)
	if err == nil {
		return nil
	}
	_, _ = fmt.Fprintln(app.ErrWriter, err)
	cli.OsExiter(1)
	return err
}

var errNoFormat = errors.New("cprintf: missing format string")

func runPrintf(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoFormat
	}
	loc, err := cprintf.ParseLocale(c.String("locale"))
	if err != nil {
		return err
	}

	format := c.Args().First()
	rest := c.Args().Tail()
	args := make([]any, len(rest))
	for i, s := range rest {
		args[i] = parseArg(s, c.Bool("single"))
	}

	pr := cprintf.Printer{Locale: loc}
	buf, err := pr.Appendf(nil, format, args...)
	if err != nil {
		return err
	}
	if c.Bool("newline") {
		buf = append(buf, '\n')
	}
	_, err = c.App.Writer.Write(buf)
	return err
}

// parseArg passes arguments on as strings, which every conversion accepts.
// With single set, non-integral numbers become single precision values.
func parseArg(s string, single bool) any {
	if !single {
		return s
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return cprintf.Single(f)
	}
	return s
}
