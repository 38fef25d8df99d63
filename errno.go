package sysprobe

import "strconv"

type Errno int32

const (
	EPERM  Errno = 1
	EAGAIN Errno = 11
	EFAULT Errno = 14
	EINVAL Errno = 22
	ENOSYS Errno = 38
)

var errnoNames = map[Errno]string{
	EPERM:  "operation not permitted",
	EAGAIN: "resource temporarily unavailable",
	EFAULT: "bad address",
	EINVAL: "invalid argument",
	ENOSYS: "function not implemented",
}

func (e Errno) Error() string {
	if s, ok := errnoNames[e]; ok {
		return s
	}
	return "errno " + strconv.Itoa(int(e))
}
