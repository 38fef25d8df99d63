package kernel

import (
	"crypto/rand"

	"github.com/wnxd/sysprobe"
)

func (*Syscall) getrandom(ctx sysprobe.Context, buf emuptr, count size_t, flags uint32) ssize_t {
	const (
		GRND_RANDOM   = 0x0001
		GRND_NONBLOCK = 0x0002
	)
	if flags&^(GRND_RANDOM|GRND_NONBLOCK) != 0 {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	limit := size_t(256)
	if flags&GRND_RANDOM != 0 {
		limit = 512
	}
	n := min(count, limit)
	if n == 0 {
		return 0
	}
	data := make([]byte, n)
	if _, err := rand.Read(data); err != nil {
		ctx.SetErrno(sysprobe.EAGAIN)
		return -1
	}
	if err := memWriteBytes(ctx, buf, data); err != nil {
		ctx.SetErrno(memErrno(err))
		return -1
	}
	return ssize_t(n)
}
