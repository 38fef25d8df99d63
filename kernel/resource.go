package kernel

import (
	"math"

	"github.com/wnxd/sysprobe"
)

const (
	RLIMIT_STACK  = 3
	RLIMIT_NOFILE = 7
	RLIM_NLIMITS  = 16

	DefaultStackSize = 8 << 20
)

type rlimit struct {
	Cur uint64
	Max uint64
}

type resource struct {
	stackSize uint64
}

func (r *resource) ctor(stackSize uint64) {
	r.stackSize = stackSize
}

func (r *resource) getrlimit(ctx sysprobe.Context, resource int32, rlim emuptr) int32 {
	lim := rlimit{Cur: math.MaxUint64, Max: math.MaxUint64}
	switch {
	case resource < 0, resource >= RLIM_NLIMITS:
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	case resource == RLIMIT_STACK:
		lim = rlimit{Cur: r.stackSize, Max: r.stackSize}
	}
	if err := memWrite(ctx, rlim, &lim); err != nil {
		ctx.SetErrno(memErrno(err))
		return -1
	}
	return 0
}
