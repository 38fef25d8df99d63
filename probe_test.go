package sysprobe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constDispatcher(value int64, errno Errno) DispatcherFunc {
	return func(nr NR, args ...uint64) Result {
		return Result{NR: nr, Value: value, Errno: errno}
	}
}

func TestProbeOutput(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		errno Errno
		want  string
	}{
		{"zero", 0, 0, "Testing custom syscall 2333...\nSuccessfully called syscall 2333, return value is: 0\n"},
		{"minus one", -1, ENOSYS, "Testing custom syscall 2333...\nSuccessfully called syscall 2333, return value is: -1\n"},
		{"custom kernel", 6666, 0, "Testing custom syscall 2333...\nSuccessfully called syscall 2333, return value is: 6666\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r, err := NewProbe(constDispatcher(tt.value, tt.errno), nil).Run(&out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.value, r.Value)
			assert.Equal(t, tt.errno, r.Errno)
		})
	}
}

func TestProbeInvokesOnceWithoutArgs(t *testing.T) {
	var calls int
	var out bytes.Buffer
	d := DispatcherFunc(func(nr NR, args ...uint64) Result {
		calls++
		assert.Equal(t, NR_custom, nr)
		assert.Empty(t, args)
		assert.Equal(t, "Testing custom syscall 2333...\n", out.String(), "banner must precede the call")
		return Result{NR: nr, Value: 1}
	})
	_, err := NewProbe(d, nil).Run(&out)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestProbeRepeatable(t *testing.T) {
	p := NewProbe(constDispatcher(42, 0), nil)
	var a, b bytes.Buffer
	_, err := p.Run(&a)
	require.NoError(t, err)
	_, err = p.Run(&b)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

type failWriter struct{ n int }

func (w *failWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("closed")
	}
	w.n--
	return len(b), nil
}

func TestProbeWriteErrors(t *testing.T) {
	tests := []struct {
		name   string
		w      *failWriter
		banner bool
	}{
		{"banner fails", &failWriter{}, true},
		{"result fails", &failWriter{n: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			d := DispatcherFunc(func(nr NR, args ...uint64) Result {
				calls++
				return Result{NR: nr, Value: 7}
			})
			r, err := NewProbe(d, nil).Run(tt.w)
			require.Error(t, err)
			assert.Equal(t, 1, calls, "the syscall is issued regardless of output")
			assert.Equal(t, int64(7), r.Value)
			if tt.banner {
				assert.Contains(t, err.Error(), "write banner")
			} else {
				assert.Contains(t, err.Error(), "write result")
			}
		})
	}
}

func TestErrnoString(t *testing.T) {
	assert.Equal(t, "function not implemented", ENOSYS.Error())
	assert.Equal(t, "errno 200", Errno(200).Error())
}
