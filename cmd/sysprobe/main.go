package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wnxd/sysprobe"
	"github.com/wnxd/sysprobe/kernel"
	"github.com/wnxd/sysprobe/native"
)

func run(args []string, stdout, stderr io.Writer) int {
	conf, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "sysprobe: %s\n", err)
		if errors.Cause(err) == errUsage {
			return 2
		}
		return 1
	}
	log := conf.Logger(stderr)

	var d sysprobe.Dispatcher
	if conf.Emulate {
		d = kernel.NewKernel(kernel.Options{Logger: log})
		log.Debug("dispatching to emulated kernel")
	} else {
		d = native.Dispatcher{}
		if h, err := native.Describe(); err == nil {
			log.Debug("dispatching to host kernel", h.Fields()...)
		} else {
			log.Debug("host description unavailable", "error", err)
		}
	}

	// the result is reported, never judged: any value, and any output
	// failure, exits 0
	if _, err := sysprobe.NewProbe(d, log.Named("probe")).Run(stdout); err != nil {
		log.Error("probe output failed", "error", err)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
