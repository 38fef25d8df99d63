package sysprobe

import (
	"github.com/hashicorp/go-hclog"
)

type Context interface {
	Logger() hclog.Logger
	Memory() Memory
	Errno() Errno
	SetErrno(err Errno)
}

type context struct {
	k   Kernel
	mem Memory
	log hclog.Logger
}

func NewContext(k Kernel, mem Memory, log hclog.Logger) Context {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &context{k, mem, log}
}

func (ctx *context) Logger() hclog.Logger {
	return ctx.log
}

func (ctx *context) Memory() Memory {
	return ctx.mem
}

func (ctx *context) Errno() Errno {
	return ctx.k.Errno()
}

func (ctx *context) SetErrno(err Errno) {
	ctx.k.SetErrno(err)
}
