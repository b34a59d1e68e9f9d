package tc358768

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

var errInjected = errors.New("injected bus fault")

// busOp is one 16-bit transaction observed on the fake bus.
type busOp struct {
	read bool
	reg  uint16
	val  uint16
	at   time.Time
}

// fakeBridge implements i2c.Bus backed by a register map. Every 16-bit
// transaction is appended to ops with its wall-clock time so tests can
// assert ordering and settle delays. failAfter >= 0 makes the transaction
// with that index fail.
type fakeBridge struct {
	regs      map[uint16]uint16
	ops       []busOp
	failAfter int
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{regs: map[uint16]uint16{}, failAfter: -1}
}

func (f *fakeBridge) String() string {
	return "fakebridge"
}

func (f *fakeBridge) SetSpeed(physic.Frequency) error {
	return nil
}

func (f *fakeBridge) Tx(addr uint16, w, r []byte) error {
	if f.failAfter >= 0 && len(f.ops) >= f.failAfter {
		return errInjected
	}
	if len(w) < 2 {
		return fmt.Errorf("fakebridge: short register address %d bytes", len(w))
	}
	reg := binary.BigEndian.Uint16(w)
	if len(r) == 0 {
		if len(w) != 4 {
			return fmt.Errorf("fakebridge: write of %d bytes to reg 0x%04x", len(w), reg)
		}
		val := binary.BigEndian.Uint16(w[2:])
		f.regs[reg] = val
		f.ops = append(f.ops, busOp{reg: reg, val: val, at: time.Now()})
		return nil
	}
	if len(w) != 2 || len(r) != 2 {
		return fmt.Errorf("fakebridge: read of %d/%d bytes at reg 0x%04x", len(w), len(r), reg)
	}
	val := f.regs[reg]
	binary.BigEndian.PutUint16(r, val)
	f.ops = append(f.ops, busOp{read: true, reg: reg, val: val, at: time.Now()})
	return nil
}

// writes returns the write transactions in bus order.
func (f *fakeBridge) writes() []busOp {
	var w []busOp
	for _, op := range f.ops {
		if !op.read {
			w = append(w, op)
		}
	}
	return w
}

// writesTo returns the write transactions addressed at reg, in bus order.
func (f *fakeBridge) writesTo(reg uint16) []busOp {
	var w []busOp
	for _, op := range f.writes() {
		if op.reg == reg {
			w = append(w, op)
		}
	}
	return w
}

// firstWriteIndex returns the position of the first write to reg within
// the write stream, or -1.
func (f *fakeBridge) firstWriteIndex(reg uint16) int {
	for i, op := range f.writes() {
		if op.reg == reg {
			return i
		}
	}
	return -1
}
