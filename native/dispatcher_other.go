//go:build !linux

package native

import (
	"github.com/wnxd/sysprobe"
)

type Dispatcher struct{}

func (Dispatcher) Invoke(nr sysprobe.NR, args ...uint64) sysprobe.Result {
	return sysprobe.Result{NR: nr, Value: -1, Errno: sysprobe.ENOSYS}
}
