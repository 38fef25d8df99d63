package sysprobe

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Probe issues one system call and reports its raw return value. It never
// classifies the value as success or failure.
type Probe struct {
	nr  NR
	d   Dispatcher
	log hclog.Logger
}

func NewProbe(d Dispatcher, log hclog.Logger) *Probe {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Probe{nr: NR_custom, d: d, log: log}
}

// Run writes the banner, invokes the syscall with no arguments and writes
// the result line. The call and both writes always happen; the first write
// error is returned.
func (p *Probe) Run(w io.Writer) (Result, error) {
	var first error
	if _, err := fmt.Fprintf(w, "Testing custom syscall %d...\n", p.nr); err != nil {
		first = errors.Wrap(err, "write banner")
	}
	r := p.d.Invoke(p.nr)
	p.log.Debug("syscall returned", "nr", uint64(r.NR), "value", r.Value, "errno", int32(r.Errno))
	if _, err := fmt.Fprintf(w, "Successfully called syscall %d, return value is: %d\n", p.nr, r.Value); err != nil && first == nil {
		first = errors.Wrap(err, "write result")
	}
	return r, first
}
