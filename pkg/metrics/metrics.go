// Package metrics samples system metrics via gopsutil for the live plot
// mode. Each sampler returns one value per tick; the ring keeps the most
// recent window of samples for plotting.
package metrics

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sampler produces one metric value per call.
type Sampler interface {
	Name() string
	Sample(ctx context.Context) (float64, error)
}

// NewSampler returns the sampler for a metric name: "cpu", "mem", or
// "load".
func NewSampler(name string) (Sampler, error) {
	switch name {
	case "cpu":
		return cpuSampler{}, nil
	case "mem":
		return memSampler{}, nil
	case "load":
		return loadSampler{}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (want cpu, mem, or load)", name)
	}
}

// cpuSampler reports aggregate CPU utilisation in percent.
type cpuSampler struct{}

func (cpuSampler) Name() string { return "cpu %" }

func (cpuSampler) Sample(ctx context.Context) (float64, error) {
	// interval=0 means "since the previous call", which matches a
	// steady sampling loop.
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(total) == 0 {
		return 0, fmt.Errorf("cpu: no data")
	}
	return total[0], nil
}

// memSampler reports physical memory utilisation in percent.
type memSampler struct{}

func (memSampler) Name() string { return "mem %" }

func (memSampler) Sample(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

// loadSampler reports the 1-minute load average.
type loadSampler struct{}

func (loadSampler) Name() string { return "load1" }

func (loadSampler) Sample(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return avg.Load1, nil
}
