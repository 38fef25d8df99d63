package kernel

import (
	"math"

	"github.com/wnxd/sysprobe"
)

type Syscall struct {
	prctl
	resource
	clock
}

func NewSyscall() *Syscall {
	sys := new(Syscall)
	sys.ctor(DefaultStackSize)
	return sys
}

func (sys *Syscall) ctor(stackSize uint64) {
	sys.resource.ctor(stackSize)
	sys.clock.ctor()
}

func (sys *Syscall) Get(nr sysprobe.NR) func(sysprobe.Context, ...uint64) uint64 {
	switch nr {
	case sysprobe.NR_custom:
		return sys.Emulate_custom
	case sysprobe.NR_getpid:
		return sys.Emulate_getpid
	case sysprobe.NR_gettid:
		return sys.Emulate_gettid
	case sysprobe.NR_getuid, sysprobe.NR_geteuid, sysprobe.NR_getgid, sysprobe.NR_getegid:
		return sys.Ignore
	case sysprobe.NR_prctl:
		return sys.Emulate_prctl
	case sysprobe.NR_sysinfo:
		return sys.Emulate_sysinfo
	case sysprobe.NR_uname:
		return sys.Emulate_uname
	case sysprobe.NR_gettimeofday:
		return sys.Emulate_gettimeofday
	case sysprobe.NR_clock_gettime:
		return sys.Emulate_clock_gettime
	case sysprobe.NR_getrandom:
		return sys.Emulate_getrandom
	case sysprobe.NR_getrlimit:
		return sys.Emulate_getrlimit
	}
	return nil
}

func (sys *Syscall) Reject(ctx sysprobe.Context, args ...uint64) uint64 {
	ctx.SetErrno(sysprobe.ENOSYS)
	return math.MaxUint64
}

func (sys *Syscall) Ignore(ctx sysprobe.Context, args ...uint64) uint64 {
	return 0
}

func (sys *Syscall) Emulate_custom(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.custom(ctx)
	return uint64(r)
}

func (sys *Syscall) Emulate_getpid(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.prctl.getpid(ctx)
	return uint64(r)
}

func (sys *Syscall) Emulate_gettid(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.prctl.gettid(ctx)
	return uint64(r)
}

func (sys *Syscall) Emulate_prctl(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.prctl.prctl(ctx, int32(args[0]), ulong_t(args[1]), ulong_t(args[2]), ulong_t(args[3]), ulong_t(args[4]))
	return uint64(r)
}

func (sys *Syscall) Emulate_sysinfo(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.sysinfo(ctx, args[0])
	return uint64(r)
}

func (sys *Syscall) Emulate_uname(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.uname(ctx, args[0])
	return uint64(r)
}

func (sys *Syscall) Emulate_gettimeofday(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.clock.gettimeofday(ctx, args[0], args[1])
	return uint64(r)
}

func (sys *Syscall) Emulate_clock_gettime(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.clock.clock_gettime(ctx, clockid_t(args[0]), args[1])
	return uint64(r)
}

func (sys *Syscall) Emulate_getrandom(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.getrandom(ctx, args[0], size_t(args[1]), uint32(args[2]))
	return uint64(r)
}

func (sys *Syscall) Emulate_getrlimit(ctx sysprobe.Context, args ...uint64) uint64 {
	r := sys.resource.getrlimit(ctx, int32(args[0]), args[1])
	return uint64(r)
}
