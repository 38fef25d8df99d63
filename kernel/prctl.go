package kernel

import (
	"bytes"
	"os"

	"github.com/wnxd/sysprobe"
)

const taskCommLen = 16

type prctl struct {
	comm [taskCommLen]byte
}

func (k *prctl) prctl(ctx sysprobe.Context, option int32, arg1, arg2, arg3, arg4 ulong_t) int32 {
	const (
		PR_SET_NAME = 15
		PR_GET_NAME = 16
		PR_SET_VMA  = 0x53564d41
	)

	switch option {
	case PR_SET_VMA:
		return 0
	case PR_SET_NAME:
		var name [taskCommLen]byte
		if err := memReadBytes(ctx, emuptr(arg1), name[:]); err != nil {
			ctx.SetErrno(memErrno(err))
			return -1
		}
		if i := bytes.IndexByte(name[:], 0); i >= 0 {
			clear(name[i:])
		}
		name[taskCommLen-1] = 0
		k.comm = name
		return 0
	case PR_GET_NAME:
		if err := memWriteBytes(ctx, emuptr(arg1), k.comm[:]); err != nil {
			ctx.SetErrno(memErrno(err))
			return -1
		}
		return 0
	}
	ctx.SetErrno(sysprobe.EINVAL)
	return -1
}

func (k *prctl) getpid(ctx sysprobe.Context) pid_t {
	return pid_t(os.Getpid())
}

// The emulated process has a single task, its tid is the pid.
func (k *prctl) gettid(ctx sysprobe.Context) pid_t {
	return pid_t(os.Getpid())
}
