//go:build linux

package diagnostics

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

type processSampler struct {
	lastCPU  time.Duration
	lastWall time.Time
	numCPU   int
	pageSize int
}

// NewProcessSampler returns a Sampler for the current process.
func NewProcessSampler() (Sampler, error) {
	return &processSampler{
		numCPU:   runtime.NumCPU(),
		pageSize: unix.Getpagesize(),
	}, nil
}

func (p *processSampler) Sample() (Sample, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return Sample{}, fmt.Errorf("getrusage: %w", err)
	}
	cpu := time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
	wall := time.Now()

	var sample Sample
	if !p.lastWall.IsZero() {
		elapsed := wall.Sub(p.lastWall)
		if elapsed > 0 {
			sample.CPUPercent = float64(cpu-p.lastCPU) / float64(elapsed) / float64(p.numCPU) * 100
			sample.HasCPU = true
		}
	}
	p.lastCPU = cpu
	p.lastWall = wall

	rss, err := p.residentBytes()
	if err != nil {
		return Sample{}, err
	}
	sample.MemoryMiB = float64(rss) / (1 << 20)

	return sample, nil
}

// residentBytes reads the resident page count from /proc/self/statm.
func (p *processSampler) residentBytes() (int64, error) {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0, fmt.Errorf("read statm: %w", err)
	}
	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return 0, fmt.Errorf("read statm: unexpected format %q", data)
	}
	pages, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse statm resident pages: %w", err)
	}
	return pages * int64(p.pageSize), nil
}
