package kernel

import (
	"github.com/shirou/gopsutil/v4/host"
	"github.com/wnxd/sysprobe"
)

const utsLen = 65

type utsname struct {
	Sysname    [utsLen]byte
	Nodename   [utsLen]byte
	Release    [utsLen]byte
	Version    [utsLen]byte
	Machine    [utsLen]byte
	Domainname [utsLen]byte
}

func utsField(s string) (f [utsLen]byte) {
	copy(f[:utsLen-1], s)
	return
}

func (*Syscall) uname(ctx sysprobe.Context, buf emuptr) int32 {
	info, err := host.Info()
	if err != nil {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	uts := utsname{
		Sysname:    utsField("Linux"),
		Nodename:   utsField(info.Hostname),
		Release:    utsField(info.KernelVersion),
		Version:    utsField("#1 sysprobe"),
		Machine:    utsField(info.KernelArch),
		Domainname: utsField("(none)"),
	}
	if err := memWrite(ctx, buf, &uts); err != nil {
		ctx.SetErrno(memErrno(err))
		return -1
	}
	return 0
}
