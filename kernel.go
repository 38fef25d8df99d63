package sysprobe

import "io"

type Syscall interface {
	Get(nr NR) func(ctx Context, args ...uint64) uint64
}

type Kernel interface {
	NR(no uint64) NR
	Syscall() Syscall
	Errno() Errno
	SetErrno(err Errno)
}

// Memory is the address space pointer arguments are resolved against.
// Offsets passed to ReadAt and WriteAt are pointer values, not indexes.
type Memory interface {
	io.ReaderAt
	io.WriterAt
}
