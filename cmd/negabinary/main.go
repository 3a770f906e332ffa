// negabinary converts between decimal integers and base -2 digit strings.
//
// Each positional argument is a digit string. By default it is decoded,
// negated and re-encoded, and a report of every step is printed:
//
//	$ negabinary 101
//	input=101
//	value=5
//	negated=-5
//	output=1111
//
// With --decode only the value (and the canonical digits) are reported.
// With --value N the decimal integer N is encoded instead.
//
// Reports are written in the format selected by --format (text, json, cbor,
// msgpack). Intermediate values can be traced to stderr with --log.
//
// Defaults for --format, --log and --log-level come from NEGABINARY_FORMAT,
// NEGABINARY_LOG and NEGABINARY_LOG_LEVEL.
package main

import (
	"fmt"
	"io"
	stdslog "log/slog"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/negabinary"
	"github.com/calebcase/negabinary/internal/config"
	logrustrace "github.com/calebcase/negabinary/log/logrus"
	slogtrace "github.com/calebcase/negabinary/log/slog"
	zaptrace "github.com/calebcase/negabinary/log/zap"
	"github.com/calebcase/negabinary/report"
)

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usage(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	cfg := config.Load()

	var value string
	var decode bool

	flagSet := pflag.NewFlagSet("negabinary", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&value, "value", "v", "", "decimal integer to encode")
	flagSet.BoolVarP(&decode, "decode", "d", false, "only decode the digit strings")
	flagSet.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text, json, cbor, msgpack")
	flagSet.StringVarP(&cfg.Log, "log", "l", cfg.Log, "trace backend: none, zap, logrus, slog")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace log level")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return usage("%v", err)
	}

	codec, err := report.Lookup(cfg.Format)
	if err != nil {
		return usage("%v", err)
	}

	tr, sync, err := tracer(cfg, stderr)
	if err != nil {
		return usage("%v", err)
	}
	defer sync()

	var reports []report.Report

	switch {
	case value != "":
		if flagSet.NArg() > 0 {
			return usage("--value does not take digit arguments")
		}

		v, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return usage("invalid integer: %q", value)
		}

		reports = append(reports, report.Encode(v))
	case flagSet.NArg() == 0:
		return usage("expected digit strings or --value")
	default:
		for _, arg := range flagSet.Args() {
			d, err := negabinary.ParseDigits(arg)
			if err != nil {
				return err
			}

			var r report.Report
			if decode {
				r, err = report.Decode(d)
			} else {
				r, err = report.Negate(d, tr)
			}
			if err != nil {
				return err
			}

			reports = append(reports, r)
		}
	}

	for _, r := range reports {
		data, err := codec.Encode(r)
		if err != nil {
			return err
		}

		_, err = stdout.Write(data)
		if err != nil {
			return err
		}
	}

	return nil
}

// tracer builds the trace backend named in cfg. The returned func flushes
// buffered output.
func tracer(cfg config.Config, w io.Writer) (negabinary.Tracer, func(), error) {
	nop := func() {}

	switch cfg.Log {
	case "", "none":
		return negabinary.NopTracer{}, nop, nil
	case "zap":
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nop, err
		}

		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)
		l := zap.New(core)

		return zaptrace.ZapTracer{L: l}, func() { _ = l.Sync() }, nil
	case "logrus":
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nop, err
		}

		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(lvl)

		return logrustrace.LogrusTracer{E: logrus.NewEntry(l)}, nop, nil
	case "slog":
		var lvl stdslog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, nop, err
		}

		h := stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: lvl})

		return slogtrace.Tracer{L: stdslog.New(h)}, nop, nil
	}

	return nil, nop, fmt.Errorf("unknown log backend: %q", cfg.Log)
}
