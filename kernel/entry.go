package kernel

import (
	"strconv"

	"github.com/wnxd/sysprobe"
)

type Param struct {
	Name  string
	Value string
}

// Entry describes a syscall the kernel serves, for tracing.
type Entry struct {
	Name string
	Args []string
}

func (e Entry) NumArgs() int {
	return len(e.Args)
}

func (e Entry) Format(args []uint64) []Param {
	params := make([]Param, 0, len(e.Args))
	for i, name := range e.Args {
		var v uint64
		if i < len(args) {
			v = args[i]
		}
		params = append(params, Param{Name: name, Value: "0x" + strconv.FormatUint(v, 16)})
	}
	return params
}

var entries = map[sysprobe.NR]Entry{
	sysprobe.NR_custom:        {Name: "sys_2333"},
	sysprobe.NR_getpid:        {Name: "getpid"},
	sysprobe.NR_gettid:        {Name: "gettid"},
	sysprobe.NR_getuid:        {Name: "getuid"},
	sysprobe.NR_geteuid:       {Name: "geteuid"},
	sysprobe.NR_getgid:        {Name: "getgid"},
	sysprobe.NR_getegid:       {Name: "getegid"},
	sysprobe.NR_prctl:         {Name: "prctl", Args: []string{"option", "arg2", "arg3", "arg4", "arg5"}},
	sysprobe.NR_sysinfo:       {Name: "sysinfo", Args: []string{"info"}},
	sysprobe.NR_uname:         {Name: "uname", Args: []string{"buf"}},
	sysprobe.NR_gettimeofday:  {Name: "gettimeofday", Args: []string{"tv", "tz"}},
	sysprobe.NR_clock_gettime: {Name: "clock_gettime", Args: []string{"clockid", "tp"}},
	sysprobe.NR_getrandom:     {Name: "getrandom", Args: []string{"buf", "count", "flags"}},
	sysprobe.NR_getrlimit:     {Name: "getrlimit", Args: []string{"resource", "rlim"}},
}

func Lookup(nr sysprobe.NR) (Entry, bool) {
	e, ok := entries[nr]
	return e, ok
}
