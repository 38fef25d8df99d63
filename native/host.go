package native

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/host"
)

type Host struct {
	Hostname      string
	OS            string
	Platform      string
	KernelVersion string
	KernelArch    string
	Uptime        time.Duration
}

func Describe() (Host, error) {
	info, err := host.Info()
	if err != nil {
		return Host{}, errors.Wrap(err, "host info")
	}
	return Host{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Platform:      info.Platform,
		KernelVersion: info.KernelVersion,
		KernelArch:    info.KernelArch,
		Uptime:        time.Duration(info.Uptime) * time.Second,
	}, nil
}

func (h Host) Fields() []any {
	return []any{
		"hostname", h.Hostname,
		"os", h.OS,
		"platform", h.Platform,
		"kernel", h.KernelVersion,
		"arch", h.KernelArch,
		"uptime", h.Uptime,
	}
}
