// Package main provides the mlutil CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/mlutil/internal/argtable"
	"github.com/born-ml/mlutil/internal/config"
	"github.com/born-ml/mlutil/internal/device"
	"github.com/born-ml/mlutil/internal/metric"
	"github.com/born-ml/mlutil/internal/timeutil"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		logrus.WithError(err).Error("mlutil failed")
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "mlutil %s - experiment utilities\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                                Show version")
	fmt.Fprintln(w, "  args [-exclude a,b] [-max-len N] FILE  Print the argument table of a run config")
	fmt.Fprintln(w, "  metrics [-full] KEY=VALUE...           Format evaluation results")
	fmt.Fprintln(w, "  devices                                List usable devices")
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "mlutil %s\n", version)
		return nil
	case "args":
		return runArgs(args[1:], stdout)
	case "metrics":
		return runMetrics(args[1:], stdout)
	case "devices":
		return runDevices(stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runArgs(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("args", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	exclude := fs.String("exclude", "", "comma separated keys to leave out")
	maxLen := fs.Int("max-len", argtable.DefaultMaxLen, "maximum value width")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: args takes one config file", errUsage)
	}

	cfg, err := config.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := cfg.ConfigureLogger(logrus.StandardLogger()); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"config": fs.Arg(0),
		"time":   timeutil.Now(),
	}).Debug("loaded run config")

	var skip []string
	if *exclude != "" {
		skip = strings.Split(*exclude, ",")
	}
	fmt.Fprintln(stdout, argtable.Format(cfg.Values(), skip, *maxLen))
	return nil
}

func runMetrics(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	full := fs.Bool("full", false, "label segments with their full key")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	result := make(map[string]any, fs.NArg())
	for _, arg := range fs.Args() {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not KEY=VALUE", errUsage, arg)
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			result[key] = n
			continue
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("metric %s: %w", key, err)
		}
		result[key] = x
	}

	var opts []metric.Option
	if *full {
		opts = append(opts, metric.WithCutoffLabels())
	}
	s, err := metric.Format(result, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	return nil
}

func runDevices(stdout io.Writer) error {
	for _, d := range device.Available() {
		fmt.Fprintf(stdout, "%-10s %s\n", d.Device, d.Name)
	}
	return nil
}
