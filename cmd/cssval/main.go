package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cssval/common"
	"cssval/config"
	"cssval/css"
	"cssval/misc"
	"cssval/state"
	"cssval/style"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now, errors must be reported directly to stderr from now on.
	// Remove empty panic file if any.
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Ignore urfave/cli default error handling - for me cli.Exit() looks
// non-transparent and unnesessary. I will return regular errors from
// subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	// NOTE: normally in cli tool this is not necessary, but just in case we
	// may decide to do some heavy async processing later let's follow the
	// rules
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "parses CSS style value strings into typed results",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "value",
				Usage:        "Parses value string(s) as a single kind and prints canonical forms",
				OnUsageError: usageErrorHandler,
				Action:       parseValues,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: common.ValueKindVal.String(),
						Usage: "value `KIND` to parse inputs as (supported kinds: " + strings.Join(common.ValueKindNames(), ", ") + ")"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatText,
						Usage: "output `FORMAT` (supported formats: " + formatText + ", " + formatYAML + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, DefaultText: "",
						Usage: "write results to `FILE` instead of STDOUT"},
				},
				ArgsUsage: "VALUE...",
				CustomHelpTemplate: fmt.Sprintf(`%s
VALUE:
    one or more value strings to parse, for example:
        angle: "90deg", "1.5708rad", "1.5708"
        color: "rgb(1.0, 0, 0)", "#FF0000", "#F00", "red"
        val:   "auto", "42px", "50%%", "10vw"
        rect:  "1px 2px 3px 4px", "10px auto", "5%%"

    Every value is parsed with the same --kind; results are printed one per
    line in the order given. Inputs that do not parse are reported together
    after the rest were processed.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "style",
				Usage:        "Parses an inline style declaration list and prints typed values",
				OnUsageError: usageErrorHandler,
				Action:       parseStyle,
				ArgsUsage:    "[STYLE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
STYLE:
    inline style text to parse, for example:
        "color: red; margin: 1px 2px; rotate: 90deg"
    if absent - read from STDIN

    Property names are matched against the parser.properties table from the
    configuration to decide how each value is interpreted. Properties without
    a configured kind are printed raw.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "colors",
				Usage:        "Prints the named color table",
				OnUsageError: usageErrorHandler,
				Action:       listColors,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "hex", Usage: "print colors as 8 digit hex instead of rgba() form"},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s
DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values wich is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func parseValues(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	kind, err := common.ParseValueKind(cmd.String("kind"))
	if err != nil {
		return err
	}

	format := cmd.String("format")
	if format != formatText && format != formatYAML {
		return fmt.Errorf("unsupported output format '%s' (supported formats: %s, %s)", format, formatText, formatYAML)
	}

	if cmd.Args().Len() == 0 {
		return errors.New("nothing to parse, expected at least one VALUE argument")
	}

	out := os.Stdout
	if fname := cmd.String("output"); len(fname) > 0 {
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	var (
		results []string
		errs    error
	)
	for _, input := range cmd.Args().Slice() {
		canonical, ok := parseValue(kind, input)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unable to parse '%s' as %s", input, kind))
			continue
		}
		results = append(results, canonical)
	}

	env.Log.Debug("Parsed values", zap.Stringer("kind", kind), zap.Int("requested", cmd.Args().Len()), zap.Int("parsed", len(results)))

	if format == formatYAML {
		data, err := yaml.Marshal(results)
		if err != nil {
			return multierr.Append(errs, fmt.Errorf("unable to marshal results: %w", err))
		}
		if _, err := out.Write(data); err != nil {
			return multierr.Append(errs, fmt.Errorf("unable to write results: %w", err))
		}
		return errs
	}

	for _, canonical := range results {
		if _, err := fmt.Fprintln(out, canonical); err != nil {
			return multierr.Append(errs, fmt.Errorf("unable to write results: %w", err))
		}
	}
	return errs
}

// parseValue parses a single input as the requested kind and renders its
// canonical form.
func parseValue(kind common.ValueKind, input string) (string, bool) {
	switch kind {
	case common.ValueKindAngle:
		if v, ok := style.ParseAngle(input); ok {
			return v.String(), true
		}
	case common.ValueKindColor:
		if v, ok := style.ParseColor(input); ok {
			return v.String(), true
		}
	case common.ValueKindVal:
		if v, ok := style.ParseVal(input); ok {
			return v.String(), true
		}
	case common.ValueKindRect:
		if v, ok := style.ParseRect(input); ok {
			return v.String(), true
		}
	}
	return "", false
}

func parseStyle(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		err    error
		data   []byte
		source = "STDIN"
	)
	if cmd.Args().Len() > 0 {
		data = []byte(cmd.Args().Get(0))
		source = "argument"
	} else if data, err = io.ReadAll(os.Stdin); err != nil {
		return fmt.Errorf("unable to read style from stdin: %w", err)
	}

	parsed := css.NewParser(env.Log).Parse(data, source)

	typed, problems := parsed.Typed(env.Cfg.Parser.Properties)
	for _, d := range typed {
		fmt.Printf("%s: %s [%s]\n", d.Property, d.ValueString(), d.Kind)
	}
	for _, d := range parsed.Declarations {
		if _, ok := env.Cfg.Parser.Properties[d.Property]; !ok {
			fmt.Printf("%s: %s [raw]\n", d.Property, d.Value)
		}
	}
	for _, problem := range append(parsed.Warnings, problems...) {
		env.Log.Warn("Problem found while parsing style", zap.String("source", source), zap.String("problem", problem))
	}
	return nil
}

func listColors(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	names := style.NamedColors()
	env.Log.Debug("Printing named colors", zap.Int("count", len(names)))

	for _, name := range names {
		c, ok := style.ParseColor(name)
		if !ok {
			// this should never happen
			panic("named color table entry failed to parse: " + name)
		}
		if cmd.Bool("hex") {
			fmt.Printf("%-22s %s\n", name, c.HexString())
		} else {
			fmt.Printf("%-22s %s\n", name, c)
		}
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()

	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
