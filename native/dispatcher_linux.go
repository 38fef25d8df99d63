package native

import (
	"github.com/wnxd/sysprobe"
	"golang.org/x/sys/unix"
)

// Dispatcher calls straight into the host kernel. Like libc syscall(2) it
// reports -1 and the error number when the kernel signals an error.
type Dispatcher struct{}

func (Dispatcher) Invoke(nr sysprobe.NR, args ...uint64) sysprobe.Result {
	var a [6]uintptr
	for i := 0; i < len(args) && i < len(a); i++ {
		a[i] = uintptr(args[i])
	}
	r1, _, errno := unix.Syscall6(uintptr(nr), a[0], a[1], a[2], a[3], a[4], a[5])
	if errno != 0 {
		return sysprobe.Result{NR: nr, Value: -1, Errno: sysprobe.Errno(errno)}
	}
	return sysprobe.Result{NR: nr, Value: int64(r1)}
}
