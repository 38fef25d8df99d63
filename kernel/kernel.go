package kernel

import (
	"github.com/hashicorp/go-hclog"
	"github.com/wnxd/sysprobe"
)

type Options struct {
	Logger    hclog.Logger
	Memory    sysprobe.Memory
	StackSize uint64
}

// Kernel serves system calls in-process. It is not safe for concurrent use:
// the errno slot is shared by every call.
type Kernel struct {
	sys Syscall
	err sysprobe.Errno
	mem sysprobe.Memory
	log hclog.Logger
}

func NewKernel(opts Options) *Kernel {
	k := new(Kernel)
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Memory == nil {
		opts.Memory = NewArena(DefaultArenaBase, DefaultArenaSize)
	}
	if opts.StackSize == 0 {
		opts.StackSize = DefaultStackSize
	}
	k.sys.ctor(opts.StackSize)
	k.mem = opts.Memory
	k.log = opts.Logger.Named("kernel")
	return k
}

func (k *Kernel) NR(no uint64) sysprobe.NR {
	return sysprobe.NR(no)
}

func (k *Kernel) Syscall() sysprobe.Syscall {
	return &k.sys
}

func (k *Kernel) Errno() sysprobe.Errno {
	return k.err
}

func (k *Kernel) SetErrno(err sysprobe.Errno) {
	k.err = err
}

func (k *Kernel) Memory() sysprobe.Memory {
	return k.mem
}

// Invoke dispatches nr through the syscall table. Missing arguments read as
// zero; unknown numbers are rejected with ENOSYS.
func (k *Kernel) Invoke(nr sysprobe.NR, args ...uint64) sysprobe.Result {
	var regs [6]uint64
	copy(regs[:], args)
	call := k.Syscall().Get(k.NR(uint64(nr)))
	if call == nil {
		call = k.sys.Reject
	}
	k.trace(nr, regs[:])
	k.SetErrno(0)
	r := call(sysprobe.NewContext(k, k.mem, k.log), regs[:]...)
	return sysprobe.Result{NR: nr, Value: int64(r), Errno: k.err}
}

func (k *Kernel) trace(nr sysprobe.NR, args []uint64) {
	if !k.log.IsDebug() {
		return
	}
	e, ok := Lookup(nr)
	if !ok {
		k.log.Debug("syscall", "nr", uint64(nr), "name", "unknown")
		return
	}
	kv := []any{"nr", uint64(nr), "name", e.Name}
	for _, p := range e.Format(args) {
		kv = append(kv, p.Name, p.Value)
	}
	k.log.Debug("syscall", kv...)
}
