package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/zaynotley/psxgpu/gpu"
)

func main() {
	scale := flag.Int("scale", 1, "VRAM upscale factor S (1, 2 or 4)")
	queueDepth := flag.Int("queue", 64, "render queue backlog depth, 0 disables queueing")
	sysclkHz := flag.Int64("sysclkhz", 33868800, "simulated system clock rate in Hz, drives the timer block")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gpuview [options]\n\nInteractive VRAM viewer and timer/GPU register REPL.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "gpuview: ", log.LstdFlags)

	g := gpu.NewGPU(*scale)
	g.SetLogger(logger)
	if *queueDepth > 0 {
		g.EnableQueue(*queueDepth)
	}

	irq := &loggingIRQ{logger: logger}
	crtc := &noopCRTC{}

	var timer *gpu.TimerBlock
	sched := gpu.NewManualScheduler(func(ticksSinceLast int64) {
		timer.AddSysClkTicks(ticksSinceLast)
	})
	timer = gpu.NewTimerBlock(irq, crtc, sched)
	timer.SetLogger(logger)

	clockDriver := newClockDriver(sched, *sysclkHz)
	clockDriver.Start()
	defer clockDriver.Stop()

	repl := newRegisterREPL(g, timer, logger)
	go repl.Run()

	if err := runDisplay(g, logger); err != nil {
		fmt.Fprintf(os.Stderr, "gpuview: %v\n", err)
		os.Exit(1)
	}
}

// loggingIRQ stands in for the host's real interrupt controller: it
// logs every raised line instead of latching a CPU interrupt, so the
// demo tool has something observable without a CPU attached.
type loggingIRQ struct {
	logger *log.Logger
}

func (l *loggingIRQ) Raise(line gpu.IRQLine) {
	l.logger.Printf("IRQ raised: %v", line)
}

// noopCRTC stands in for the host's raster timing collaborator. This
// tool has no display scanning of its own to synchronise against, so
// Synchronise is a no-op and no scanline ever reports pending.
type noopCRTC struct{}

func (noopCRTC) Synchronise()          {}
func (noopCRTC) IsScanlinePending() bool { return false }

// clockDriver advances a ManualScheduler at sysclkHz using the host's
// real wall clock, the same way a production build would drive the
// timer block from the emulated CPU's own tick source.
type clockDriver struct {
	sched    *gpu.ManualScheduler
	hz       int64
	stop     chan struct{}
	done     chan struct{}
}

func newClockDriver(sched *gpu.ManualScheduler, hz int64) *clockDriver {
	return &clockDriver{sched: sched, hz: hz, stop: make(chan struct{}), done: make(chan struct{})}
}

func (c *clockDriver) Start() {
	go func() {
		defer close(c.done)
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		start := time.Now()
		var tick int64
		for {
			select {
			case <-c.stop:
				return
			case now := <-ticker.C:
				elapsed := now.Sub(start).Seconds()
				tick = int64(elapsed * float64(c.hz))
				c.sched.AdvanceTo(tick)
			}
		}
	}()
}

func (c *clockDriver) Stop() {
	close(c.stop)
	<-c.done
}
