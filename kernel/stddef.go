package kernel

type emuptr = uint64

type long_t int64
type ulong_t uint64
type size_t ulong_t
type ssize_t long_t
type clockid_t int32
type pid_t int32

const emunullptr = emuptr(0)
