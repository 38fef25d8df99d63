//go:build linux

package native

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnxd/sysprobe"
	"golang.org/x/sys/unix"
)

func TestInvokeGetpid(t *testing.T) {
	r := Dispatcher{}.Invoke(sysprobe.NR_getpid)
	assert.Equal(t, int64(os.Getpid()), r.Value)
	assert.Zero(t, r.Errno)
}

func TestInvokeFailureIsMinusOne(t *testing.T) {
	// a NULL struct pointer makes uname fault
	r := Dispatcher{}.Invoke(sysprobe.NR_uname, 0)
	assert.Equal(t, int64(-1), r.Value)
	assert.Equal(t, sysprobe.EFAULT, r.Errno)
}

func TestInvokeCustom(t *testing.T) {
	r := Dispatcher{}.Invoke(sysprobe.NR_custom)
	if r.Errno == 0 {
		t.Skipf("kernel implements syscall %d (returned %d)", sysprobe.NR_custom, r.Value)
	}
	// ENOSYS from the kernel, EPERM under a container seccomp profile
	assert.Equal(t, int64(-1), r.Value)
	assert.Contains(t, []sysprobe.Errno{sysprobe.ENOSYS, sysprobe.EPERM}, r.Errno)
}

func TestDescribe(t *testing.T) {
	h, err := Describe()
	require.NoError(t, err)
	assert.Equal(t, "linux", h.OS)
	assert.NotEmpty(t, h.KernelVersion)
	assert.Len(t, h.Fields(), 12)
}

func TestInvokeErrnoNames(t *testing.T) {
	r := Dispatcher{}.Invoke(sysprobe.NR_uname, 0)
	require.Equal(t, sysprobe.EFAULT, r.Errno)
	assert.Equal(t, unix.EFAULT.Error(), r.Errno.Error())
}
