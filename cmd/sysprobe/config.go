package main

import (
	"flag"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

const envLogLevel = "SYSPROBE_LOG_LEVEL"

var errUsage = errors.New("usage")

type Config struct {
	Emulate  bool
	LogLevel hclog.Level
	LogJSON  bool
}

func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("sysprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		io.WriteString(stderr, "Usage: sysprobe [flags]\n")
		fs.PrintDefaults()
	}

	level := os.Getenv(envLogLevel)
	if level == "" {
		level = "warn"
	}
	c := &Config{}
	fs.BoolVar(&c.Emulate, "emulate", false, "serve the syscall from the in-process emulated kernel")
	fs.StringVar(&level, "log-level", level, "log level: trace, debug, info, warn, error, off (env "+envLogLevel+")")
	fs.BoolVar(&c.LogJSON, "log-json", false, "write log lines as JSON")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(errUsage, err.Error())
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, errors.Wrapf(errUsage, "unexpected argument %q", fs.Arg(0))
	}
	c.LogLevel = hclog.LevelFromString(level)
	if c.LogLevel == hclog.NoLevel {
		return nil, errors.Wrapf(errUsage, "unknown log level %q", level)
	}
	return c, nil
}

func (c *Config) Logger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "sysprobe",
		Level:      c.LogLevel,
		Output:     w,
		JSONFormat: c.LogJSON,
	})
}
