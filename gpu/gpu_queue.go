// gpu_queue.go - Optional single-producer/single-consumer render queue

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package gpu

import "log"

// RenderQueue decouples command submission from rasterization. The
// producer blocks only when the queue is full (backpressure); the single
// consumer goroutine commits commands to VRAM strictly in submission
// order, matching the ordering guarantees of §5.
//
// Thread Safety: Submit may be called from any one producer goroutine.
// Drain/Close are intended for the same owner that started the worker.
type RenderQueue struct {
	commands chan queuedCommand
	done     chan struct{}
	vram     *VRAM
	scale    func() int
	clip     func() Rect
	logger   *log.Logger
}

// queuedCommand optionally carries a barrier: when set, run() closes it
// immediately after committing cmd, letting Drain observe that every
// command submitted before the barrier (and the barrier's own Readback)
// has been applied, in strict submission order.
type queuedCommand struct {
	cmd     Command
	barrier chan struct{}
}

// NewRenderQueue starts a worker goroutine that commits queued commands
// to vram. scale/clip are callbacks so the queue always dispatches with
// the GPU's current upscale factor and drawing area rather than a stale
// snapshot taken at queue-construction time.
func NewRenderQueue(vram *VRAM, depth int, scale func() int, clip func() Rect, logger *log.Logger) *RenderQueue {
	q := &RenderQueue{
		commands: make(chan queuedCommand, depth),
		done:     make(chan struct{}),
		vram:     vram,
		scale:    scale,
		clip:     clip,
		logger:   logger,
	}
	go q.run()
	return q
}

func (q *RenderQueue) run() {
	for qc := range q.commands {
		Dispatch(q.vram, q.scale(), q.clip(), q.logger, qc.cmd)
		if qc.barrier != nil {
			close(qc.barrier)
		}
	}
	close(q.done)
}

// Submit enqueues a command, blocking the caller while the queue is full.
func (q *RenderQueue) Submit(cmd Command) {
	q.commands <- queuedCommand{cmd: cmd}
}

// Drain blocks until every previously submitted command has committed to
// VRAM, then flushes the upscale mirror to the shadow plane. Used by
// Readback, which must observe all prior commands and no later ones.
func (q *RenderQueue) Drain() {
	barrier := make(chan struct{})
	q.commands <- queuedCommand{cmd: Command{Tag: TagReadback}, barrier: barrier}
	<-barrier
}

// Close stops accepting commands and waits for the worker to drain.
func (q *RenderQueue) Close() {
	close(q.commands)
	<-q.done
}
