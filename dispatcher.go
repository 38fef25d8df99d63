package sysprobe

// Dispatcher issues a system call by number and reports what came back.
type Dispatcher interface {
	Invoke(nr NR, args ...uint64) Result
}

type DispatcherFunc func(nr NR, args ...uint64) Result

func (f DispatcherFunc) Invoke(nr NR, args ...uint64) Result {
	return f(nr, args...)
}

// Result is the raw outcome of one system call. Value is kept verbatim,
// negative values are not interpreted.
type Result struct {
	NR    NR
	Value int64
	Errno Errno
}
