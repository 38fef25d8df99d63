package kernel

import (
	"time"

	"github.com/wnxd/sysprobe"
)

const (
	CLOCK_REALTIME  = 0
	CLOCK_MONOTONIC = 1
	CLOCK_BOOTTIME  = 7
)

type timespec struct {
	Sec  int64
	Nsec int64
}

type timeval struct {
	Sec  int64
	Usec int64
}

type timezone struct {
	Minuteswest int32
	Dsttime     int32
}

type clock struct {
	boot time.Time
}

func (c *clock) ctor() {
	c.boot = time.Now()
}

func (c *clock) clock_gettime(ctx sysprobe.Context, clk clockid_t, ts emuptr) int32 {
	var v timespec
	switch clk {
	case CLOCK_REALTIME:
		now := time.Now()
		v = timespec{Sec: now.Unix(), Nsec: int64(now.Nanosecond())}
	case CLOCK_MONOTONIC, CLOCK_BOOTTIME:
		d := time.Since(c.boot)
		v = timespec{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
	default:
		ctx.SetErrno(sysprobe.EINVAL)
		return -1
	}
	if err := memWrite(ctx, ts, &v); err != nil {
		ctx.SetErrno(memErrno(err))
		return -1
	}
	return 0
}

// Either pointer may be NULL, in which case that half is skipped.
func (c *clock) gettimeofday(ctx sysprobe.Context, tv, tz emuptr) int32 {
	now := time.Now()
	if tv != emunullptr {
		err := memWrite(ctx, tv, &timeval{
			Sec:  now.Unix(),
			Usec: int64(now.Nanosecond() / 1e3),
		})
		if err != nil {
			ctx.SetErrno(memErrno(err))
			return -1
		}
	}
	if tz != emunullptr {
		_, offset := now.Zone()
		err := memWrite(ctx, tz, &timezone{
			Minuteswest: int32(-offset / 60),
		})
		if err != nil {
			ctx.SetErrno(memErrno(err))
			return -1
		}
	}
	return 0
}
