//go:build !linux

package sysprobe

// x86_64 Linux numbering, used by the emulated kernel off Linux hosts.
const (
	NR_getpid        NR = 39
	NR_gettid        NR = 186
	NR_getuid        NR = 102
	NR_geteuid       NR = 107
	NR_getgid        NR = 104
	NR_getegid       NR = 108
	NR_sysinfo       NR = 99
	NR_uname         NR = 63
	NR_gettimeofday  NR = 96
	NR_clock_gettime NR = 228
	NR_getrandom     NR = 318
	NR_getrlimit     NR = 97
	NR_prctl         NR = 157
)
