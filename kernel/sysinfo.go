package kernel

import (
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/wnxd/sysprobe"
)

// Load averages are fixed point with SI_LOAD_SHIFT fractional bits.
const siLoadShift = 16

// struct sysinfo, LP64 layout (112 bytes).
type sysinfo struct {
	Uptime    int64
	Loads     [3]uint64
	Totalram  uint64
	Freeram   uint64
	Sharedram uint64
	Bufferram uint64
	Totalswap uint64
	Freeswap  uint64
	Procs     uint16
	Pad       [6]byte
	Totalhigh uint64
	Freehigh  uint64
	MemUnit   uint32
	Reserved  [4]byte
}

func (*Syscall) sysinfo(ctx sysprobe.Context, info emuptr) int32 {
	if info == emunullptr {
		ctx.SetErrno(sysprobe.EFAULT)
		return -1
	}
	uptime, err := host.Uptime()
	if err != nil {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	sm, err := mem.SwapMemory()
	if err != nil {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	pids, err := process.Pids()
	if err != nil {
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	si := sysinfo{
		Uptime:    int64(uptime),
		Totalram:  vm.Total,
		Freeram:   vm.Free,
		Sharedram: vm.Shared,
		Bufferram: vm.Buffers,
		Totalswap: sm.Total,
		Freeswap:  sm.Free,
		Procs:     uint16(len(pids)),
		MemUnit:   1,
	}
	if avg, err := load.Avg(); err == nil {
		si.Loads = [3]uint64{fixedLoad(avg.Load1), fixedLoad(avg.Load5), fixedLoad(avg.Load15)}
	} else {
		ctx.Logger().Debug("load average unavailable", "error", err)
	}
	if err := memWrite(ctx, info, &si); err != nil {
		ctx.SetErrno(memErrno(err))
		return -1
	}
	return 0
}

func fixedLoad(v float64) uint64 {
	return uint64(v * (1 << siLoadShift))
}
