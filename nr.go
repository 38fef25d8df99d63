package sysprobe

type NR uint64

// NR_custom is the entry the custom kernel registers. The value must match
// the kernel's syscall table.
const NR_custom NR = 2333
