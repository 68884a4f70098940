package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/zaynotley/psxgpu/gpu"
)

// registerREPL is a raw-mode line editor over stdin for poking timer
// and GPU registers interactively, grounded on the host engine's
// TerminalHost raw-mode handling in terminal_host.go (MakeRaw/Restore,
// CR->LF translation, DEL->BS translation) but driving a command parser
// instead of a TERM_IN/TERM_KEY_IN MMIO device.
type registerREPL struct {
	g      *gpu.GPU
	timer  *gpu.TimerBlock
	logger *log.Logger
}

func newRegisterREPL(g *gpu.GPU, t *gpu.TimerBlock, logger *log.Logger) *registerREPL {
	return &registerREPL{g: g, timer: t, logger: logger}
}

// Run reads commands from stdin until EOF or "quit". It is safe to run
// concurrently with the ebiten window: commands only ever call exported,
// internally-synchronised GPU/TimerBlock methods.
func (r *registerREPL) Run() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		r.runLineMode(os.Stdin)
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: failed to set raw mode: %v\n", err)
		return
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(os.Stdin, "gpuview> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		if r.dispatch(line) {
			return
		}
	}
}

func (r *registerREPL) runLineMode(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if r.dispatch(scanner.Text()) {
			return
		}
	}
}

// dispatch parses and executes one command line, returning true when
// the REPL should stop.
//
// Commands:
//
//	r <timer> <offset>             read a timer register
//	w <timer> <offset> <value>     write a timer register
//	gate <timer> <0|1>             drive a timer's gate input
//	area <left> <top> <right> <bottom>   set the GPU drawing area
//	save <path> <x> <y> <w> <h>    export a VRAM region as BMP
//	reset                          reset the GPU and timer block
//	quit                           exit the REPL
func (r *registerREPL) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true

	case "reset":
		r.g.Reset()
		r.timer.Reset()
		fmt.Println("reset done")

	case "r":
		if len(fields) != 3 {
			fmt.Println("usage: r <timer> <offset>")
			return false
		}
		timer, offset, ok := parseTimerOffset(fields[1], fields[2])
		if !ok {
			fmt.Println("bad timer/offset")
			return false
		}
		value := r.timer.ReadRegister(uint32(timer)*gpu.TimerBaseStride + offset)
		fmt.Printf("0x%08X\n", value)

	case "w":
		if len(fields) != 4 {
			fmt.Println("usage: w <timer> <offset> <value>")
			return false
		}
		timer, offset, ok := parseTimerOffset(fields[1], fields[2])
		if !ok {
			fmt.Println("bad timer/offset")
			return false
		}
		value, err := strconv.ParseUint(fields[3], 0, 32)
		if err != nil {
			fmt.Println("bad value")
			return false
		}
		r.timer.WriteRegister(uint32(timer)*gpu.TimerBaseStride+offset, uint32(value))

	case "gate":
		if len(fields) != 3 {
			fmt.Println("usage: gate <timer> <0|1>")
			return false
		}
		timer, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("bad timer index")
			return false
		}
		state := fields[2] == "1"
		r.timer.SetGate(timer, state)

	case "area":
		if len(fields) != 5 {
			fmt.Println("usage: area <left> <top> <right> <bottom>")
			return false
		}
		left, e1 := strconv.Atoi(fields[1])
		top, e2 := strconv.Atoi(fields[2])
		right, e3 := strconv.Atoi(fields[3])
		bottom, e4 := strconv.Atoi(fields[4])
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			fmt.Println("bad coordinates")
			return false
		}
		r.g.SetDrawingArea(left, top, right, bottom)

	case "save":
		if len(fields) != 6 {
			fmt.Println("usage: save <path> <x> <y> <w> <h>")
			return false
		}
		x, e1 := strconv.Atoi(fields[2])
		y, e2 := strconv.Atoi(fields[3])
		w, e3 := strconv.Atoi(fields[4])
		h, e4 := strconv.Atoi(fields[5])
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			fmt.Println("bad region")
			return false
		}
		if err := saveBMP(r.g, fields[1], x, y, w, h); err != nil {
			fmt.Printf("save failed: %v\n", err)
			return false
		}
		fmt.Println("saved")

	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}

	return false
}

func parseTimerOffset(timerField, offsetField string) (timer int, offset uint32, ok bool) {
	timer, err := strconv.Atoi(timerField)
	if err != nil {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(offsetField, 0, 32)
	if err != nil {
		return 0, 0, false
	}
	return timer, uint32(v), true
}
