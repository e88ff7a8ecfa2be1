// Package cli implements the fuuid command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Lzww0608/fuuid"
	"github.com/Lzww0608/fuuid/validated"
)

const usage = `usage: fuuid <command> [flags] [args]

commands:
  new        print random (v4) FUUIDs; --v7 for time-ordered ones
  v5         print the name-based FUUID of each name argument
  validate   check every argument (or stdin line) and print canonical forms
`

// Exit codes.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// Env is the process environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type command func(env Env, cfg Config, log *zap.Logger, fs *pflag.FlagSet) int

// Run executes the command line args (without the program name) and returns
// the exit code.
func Run(args []string, env Env) int {
	if len(args) == 0 {
		fmt.Fprint(env.Stderr, usage)
		return ExitUsage
	}

	fs := pflag.NewFlagSet("fuuid "+args[0], pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	addGlobalFlags(fs)

	var cmd command
	switch args[0] {
	case "new":
		fs.IntP("count", "n", 1, "number of FUUIDs to print")
		fs.Bool("v7", false, "generate time-ordered v7 FUUIDs")
		cmd = runNew
	case "v5":
		cmd = runV5
	case "validate":
		cmd = runValidate
	case "help", "-h", "--help":
		fmt.Fprint(env.Stdout, usage)
		return ExitOK
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n%s", args[0], usage)
		return ExitUsage
	}

	if err := fs.Parse(args[1:]); err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	defer func() { _ = log.Sync() }()

	return cmd(env, cfg, log.With(zap.String("command", args[0])), fs)
}

func runNew(env Env, _ Config, log *zap.Logger, fs *pflag.FlagSet) int {
	count, _ := fs.GetInt("count")
	v7, _ := fs.GetBool("v7")
	if count < 1 {
		log.Error("count must be positive", zap.Int("count", count))
		return ExitUsage
	}

	gen := fuuid.New
	if v7 {
		gen = fuuid.NewV7
	}
	for i := 0; i < count; i++ {
		id, err := gen()
		if err != nil {
			log.Error("generate FUUID", zap.Error(err))
			return ExitInvalid
		}
		fmt.Fprintln(env.Stdout, id)
	}
	log.Debug("generated", zap.Int("count", count), zap.Bool("v7", v7))
	return ExitOK
}

func runV5(env Env, cfg Config, log *zap.Logger, fs *pflag.FlagSet) int {
	ns, err := resolveNamespace(cfg.Namespace)
	if err != nil {
		log.Error("invalid namespace", zap.Error(err))
		return ExitUsage
	}
	if fs.NArg() == 0 {
		log.Error("v5 needs at least one name")
		return ExitUsage
	}

	for _, name := range fs.Args() {
		id, err := fuuid.NameBased(ns, name)
		if err != nil {
			log.Error("derive FUUID", zap.String("name", name), zap.Error(err))
			return ExitInvalid
		}
		fmt.Fprintln(env.Stdout, id)
	}
	return ExitOK
}

func runValidate(env Env, _ Config, log *zap.Logger, fs *pflag.FlagSet) int {
	inputs := fs.Args()
	if len(inputs) == 0 {
		lines, err := readLines(env.Stdin)
		if err != nil {
			log.Error("read stdin", zap.Error(err))
			return ExitUsage
		}
		inputs = lines
	}

	errs, bad := validated.Traverse(inputs, fuuid.FromStringVNec).Errors()
	if bad {
		for err := range errs.All() {
			var perr *fuuid.ParseError
			if errors.As(err, &perr) {
				log.Error("invalid FUUID", zap.String("input", perr.Input), zap.Error(err))
				continue
			}
			log.Error("invalid FUUID", zap.Error(err))
		}
		log.Warn("validation failed", zap.Int("invalid", errs.Len()), zap.Int("total", len(inputs)))
		return ExitInvalid
	}

	for _, s := range inputs {
		id, _ := fuuid.FromStringOpt(s)
		fmt.Fprintln(env.Stdout, id)
	}
	log.Debug("validated", zap.Int("total", len(inputs)))
	return ExitOK
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
