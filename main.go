package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/interpreter"
	"github.com/pontaoski/bussin/lexer"
	"github.com/pontaoski/bussin/parser"
	"github.com/pontaoski/bussin/runtime"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// printDiagnostic writes err with the source lines around its frames,
// colored when stderr is a terminal.
func printDiagnostic(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		tracerr.PrintSourceColor(err)
		return
	}
	tracerr.PrintSource(err)
}

func openSource(c *cli.Context) (*os.File, string, error) {
	file := c.Args().First()
	if file == "" {
		return nil, "", fmt.Errorf("no source file provided")
	}
	handle, err := os.Open(file)
	if err != nil {
		return nil, "", fmt.Errorf("error opening %s: %w", file, err)
	}
	return handle, file, nil
}

// loadConfig reads the config file and applies any flags set on the command
// line over it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("boolean-comparison") {
		cfg.BooleanComparison = config.BooleanComparison(c.String("boolean-comparison"))
	}
	if c.IsSet("binary-fallback") {
		cfg.BinaryFallback = config.BinaryFallback(c.String("binary-fallback"))
	}
	if c.IsSet("max-call-depth") {
		cfg.MaxCallDepth = c.Int("max-call-depth")
	}
	if c.IsSet("trace") {
		cfg.Trace = c.Bool("trace")
	}

	return cfg, cfg.Validate()
}

var configFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Value: config.FileName,
		Usage: "path to the config file",
	},
	&cli.StringFlag{
		Name:  "boolean-comparison",
		Usage: "strict or legacy",
	},
	&cli.StringFlag{
		Name:  "binary-fallback",
		Usage: "null or error",
	},
	&cli.IntFlag{
		Name:  "max-call-depth",
		Usage: "maximum depth of nested function calls",
	},
	&cli.BoolFlag{
		Name:  "trace",
		Usage: "log every function call to stderr",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bussin",
		Usage: "bussin interpreter",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default " + config.FileName,
				Action: func(c *cli.Context) error {
					fi, err := os.Create(config.FileName)
					if err != nil {
						return fmt.Errorf("error creating %s: %w", config.FileName, err)
					}
					defer fi.Close()

					return config.Write(fi, config.Default())
				},
			},
			{
				Name:      "run",
				Usage:     "run a file",
				ArgsUsage: "<file" + config.SourceFileExt + ">",
				Flags:     configFlags,
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}

					handle, file, err := openSource(c)
					if err != nil {
						return err
					}
					defer handle.Close()

					env := runtime.NewGlobalEnvironment(c.App.Writer)
					_, err = interpreter.New(cfg).Run(handle, file, env)
					return err
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a file",
				ArgsUsage: "<file" + config.SourceFileExt + ">",
				Action: func(c *cli.Context) error {
					handle, file, err := openSource(c)
					if err != nil {
						return err
					}
					defer handle.Close()

					tokens, err := lexer.Tokenize(handle, file)
					if err != nil {
						return err
					}
					repr.New(c.App.Writer).Println(tokens)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "<file" + config.SourceFileExt + ">",
				Action: func(c *cli.Context) error {
					handle, file, err := openSource(c)
					if err != nil {
						return err
					}
					defer handle.Close()

					prog, err := parser.ParseSource(handle, file)
					if err != nil {
						return err
					}
					repr.New(c.App.Writer).Println(prog)
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Flags: configFlags,
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return repl(cfg, c.App.Writer)
				},
			},
		},
	}
}

func exitWithError(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if _, ok := errors.CategoryOf(err); ok {
		printDiagnostic(err)
		os.Exit(1)
	}
	log.Fatalf("error with bussin: %s", err)
}

func main() {
	app := newApp()
	app.Writer = os.Stdout
	app.ExitErrHandler = exitWithError
	app.Run(os.Args)
}
