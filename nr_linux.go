package sysprobe

import "golang.org/x/sys/unix"

const (
	NR_getpid        NR = unix.SYS_GETPID
	NR_gettid        NR = unix.SYS_GETTID
	NR_getuid        NR = unix.SYS_GETUID
	NR_geteuid       NR = unix.SYS_GETEUID
	NR_getgid        NR = unix.SYS_GETGID
	NR_getegid       NR = unix.SYS_GETEGID
	NR_sysinfo       NR = unix.SYS_SYSINFO
	NR_uname         NR = unix.SYS_UNAME
	NR_gettimeofday  NR = unix.SYS_GETTIMEOFDAY
	NR_clock_gettime NR = unix.SYS_CLOCK_GETTIME
	NR_getrandom     NR = unix.SYS_GETRANDOM
	NR_getrlimit     NR = unix.SYS_GETRLIMIT
	NR_prctl         NR = unix.SYS_PRCTL
)
