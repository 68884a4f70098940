// savestate.go - Deterministic persisted-state encode/decode

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

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const savestateMagic = "GPUS"

// btou8 packs a bool as a single persisted byte.
func btou8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// EncodeTimerState writes the three counters followed by the overclock
// carries, in exactly the order named in §6's save-state contract: for
// each counter mode/counter/target/gate/use_external_clock/
// external_counting_enabled/counting_enabled/irq_done, then the two
// tick carries.
func EncodeTimerState(t *TimerBlock) []byte {
	var buf bytes.Buffer
	buf.WriteString(savestateMagic)

	for i := 0; i < TimerCount; i++ {
		c := t.Counter(i)
		binary.Write(&buf, binary.LittleEndian, c.Mode)
		binary.Write(&buf, binary.LittleEndian, c.Counter)
		binary.Write(&buf, binary.LittleEndian, c.Target)
		buf.WriteByte(btou8(c.Gate))
		buf.WriteByte(btou8(c.UseExternalClock))
		buf.WriteByte(btou8(c.ExternalCountingEnabled))
		buf.WriteByte(btou8(c.CountingEnabled))
		buf.WriteByte(btou8(c.IRQDone))
	}

	t.mu.Lock()
	sysclkCarry := uint32(t.sysclkTicksCarry)
	div8Carry := uint32(t.sysclkDiv8Carry)
	t.mu.Unlock()
	binary.Write(&buf, binary.LittleEndian, sysclkCarry)
	binary.Write(&buf, binary.LittleEndian, div8Carry)

	return buf.Bytes()
}

// DecodeTimerState restores a TimerBlock from bytes produced by
// EncodeTimerState, leaving the scheduler wake recomputed against the
// restored state.
func DecodeTimerState(t *TimerBlock, data []byte) error {
	r := bytes.NewReader(data)

	magic := make([]byte, len(savestateMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != savestateMagic {
		return fmt.Errorf("bad magic %q", magic)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 0; i < TimerCount; i++ {
		c := &t.counters[i]
		if err := binary.Read(r, binary.LittleEndian, &c.Mode); err != nil {
			return fmt.Errorf("counter %d mode: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &c.Counter); err != nil {
			return fmt.Errorf("counter %d counter: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &c.Target); err != nil {
			return fmt.Errorf("counter %d target: %w", i, err)
		}
		var gate, useExt, extEnabled, counting, irqDone uint8
		for _, f := range []*uint8{&gate, &useExt, &extEnabled, &counting, &irqDone} {
			if err := binary.Read(r, binary.LittleEndian, f); err != nil {
				return fmt.Errorf("counter %d flags: %w", i, err)
			}
		}
		c.Gate = gate != 0
		c.UseExternalClock = useExt != 0
		c.ExternalCountingEnabled = extEnabled != 0
		c.CountingEnabled = counting != 0
		c.IRQDone = irqDone != 0
	}

	var sysclkCarry, div8Carry uint32
	if err := binary.Read(r, binary.LittleEndian, &sysclkCarry); err != nil {
		return fmt.Errorf("sysclk carry: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &div8Carry); err != nil {
		return fmt.Errorf("div8 carry: %w", err)
	}
	t.sysclkTicksCarry = int64(sysclkCarry)
	t.sysclkDiv8Carry = int64(div8Carry)

	t.updateSysClkEventLocked()
	return nil
}

// EncodeVRAM persists exactly VRAMWidth*VRAMHeight*2 bytes of native
// pixels, regardless of the current upscale factor S, per §6.
func EncodeVRAM(v *VRAM) []byte {
	v.SyncToShadow()
	shadow := v.ShadowSnapshot()
	buf := make([]byte, 0, len(shadow)*2)
	for _, p := range shadow {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(p))
	}
	return buf
}

// DecodeVRAM restores the native plane from bytes produced by
// EncodeVRAM and reseeds the upscale mirror at the current S.
func DecodeVRAM(v *VRAM, data []byte) error {
	want := VRAMWidth * VRAMHeight * 2
	if len(data) != want {
		return fmt.Errorf("vram savestate: want %d bytes, got %d", want, len(data))
	}
	pixels := make([]Pixel, VRAMWidth*VRAMHeight)
	for i := range pixels {
		pixels[i] = Pixel(binary.LittleEndian.Uint16(data[i*2:]))
	}
	v.RestoreShadow(pixels)
	return nil
}
