package kernel

import (
	"bytes"
	"encoding/binary"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
	"github.com/wnxd/sysprobe"
)

const (
	DefaultArenaBase = 0x10000
	DefaultArenaSize = 64 << 10
)

var ErrFault = errors.New("bad address")

// Arena is a flat block of emulated memory mapped at base.
type Arena struct {
	base uint64
	buf  []byte
	next uint64
}

func NewArena(base uint64, size int) *Arena {
	return &Arena{base: base, buf: make([]byte, size), next: base}
}

func (a *Arena) slice(addr uint64, n int) ([]byte, error) {
	if addr < a.base || addr-a.base > uint64(len(a.buf)) || uint64(n) > uint64(len(a.buf))-(addr-a.base) {
		return nil, errors.Wrapf(ErrFault, "%#x+%d", addr, n)
	}
	off := addr - a.base
	return a.buf[off : off+uint64(n)], nil
}

func (a *Arena) ReadAt(p []byte, addr int64) (int, error) {
	b, err := a.slice(uint64(addr), len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}

func (a *Arena) WriteAt(p []byte, addr int64) (int, error) {
	b, err := a.slice(uint64(addr), len(p))
	if err != nil {
		return 0, err
	}
	return copy(b, p), nil
}

// Alloc reserves n bytes, 8-byte aligned, and returns their address.
func (a *Arena) Alloc(n int) (uint64, error) {
	addr := (a.next + 7) &^ 7
	if _, err := a.slice(addr, n); err != nil {
		return 0, errors.Wrap(err, "arena exhausted")
	}
	a.next = addr + uint64(n)
	return addr, nil
}

func memWrite(ctx sysprobe.Context, addr emuptr, v any) error {
	var buf bytes.Buffer
	if err := struc.PackWithOrder(&buf, v, binary.LittleEndian); err != nil {
		return errors.Wrapf(err, "pack %T", v)
	}
	return memWriteBytes(ctx, addr, buf.Bytes())
}

func memWriteBytes(ctx sysprobe.Context, addr emuptr, b []byte) error {
	mem := ctx.Memory()
	if addr == emunullptr || mem == nil {
		return errors.Wrapf(ErrFault, "%#x", addr)
	}
	_, err := mem.WriteAt(b, int64(addr))
	return err
}

func memReadBytes(ctx sysprobe.Context, addr emuptr, b []byte) error {
	mem := ctx.Memory()
	if addr == emunullptr || mem == nil {
		return errors.Wrapf(ErrFault, "%#x", addr)
	}
	_, err := mem.ReadAt(b, int64(addr))
	return err
}

// memErrno maps a memory access error onto the errno a handler reports.
func memErrno(err error) sysprobe.Errno {
	if errors.Cause(err) == ErrFault {
		return sysprobe.EFAULT
	}
	return sysprobe.EINVAL
}
