package tc358768

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c"
)

func testDev(f *fakeBridge) *Dev {
	return &Dev{c: &i2c.Dev{Bus: f, Addr: DefaultAddr}}
}

func TestWideReg(t *testing.T) {
	tests := []struct {
		reg  uint16
		wide bool
	}{
		{regChipID, false},
		{regPPMisc, false},
		{regFIFOSta, false},
		{0x00FE, false},
		{regCLWDPHYContTX, true}, // 0x0100, first wide register
		{regStartCntrl, true},
		{regDSIConfW, true},
		{0x05FE, true},
		{regDSICmdTx, false}, // 0x0600, back to 16-bit
		{regDSIHAct, false},
	}
	for _, tt := range tests {
		if got := wideReg(tt.reg); got != tt.wide {
			t.Errorf("wideReg(0x%04x) = %t, want %t", tt.reg, got, tt.wide)
		}
	}
}

func TestSplitJoinWide(t *testing.T) {
	tests := []struct {
		val    uint32
		lo, hi uint16
	}{
		{0x00000000, 0x0000, 0x0000},
		{0x00002C88, 0x2C88, 0x0000},
		{0xDEADBEEF, 0xBEEF, 0xDEAD},
		{0xFFFFFFFF, 0xFFFF, 0xFFFF},
		{0x00050005, 0x0005, 0x0005},
	}
	for _, tt := range tests {
		lo, hi := splitWide(tt.val)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("splitWide(0x%08x) = 0x%04x, 0x%04x, want 0x%04x, 0x%04x",
				tt.val, lo, hi, tt.lo, tt.hi)
		}
		if got := joinWide(lo, hi); got != tt.val {
			t.Errorf("joinWide(0x%04x, 0x%04x) = 0x%08x, want 0x%08x", lo, hi, got, tt.val)
		}
	}
}

func TestWriteRegNarrow(t *testing.T) {
	f := newFakeBridge()
	d := testDev(f)

	if err := d.writeReg(regVSDly, 1); err != nil {
		t.Fatalf("writeReg() = %v", err)
	}
	w := f.writes()
	if len(w) != 1 {
		t.Fatalf("got %d transactions, want 1", len(w))
	}
	if w[0].reg != regVSDly || w[0].val != 1 {
		t.Errorf("wrote 0x%04x=0x%04x, want 0x%04x=0x0001", w[0].reg, w[0].val, uint16(regVSDly))
	}
}

func TestWriteRegWide(t *testing.T) {
	f := newFakeBridge()
	d := testDev(f)

	if err := d.writeReg(regStartCntrl, 0xDEADBEEF); err != nil {
		t.Fatalf("writeReg() = %v", err)
	}
	w := f.writes()
	if len(w) != 2 {
		t.Fatalf("got %d transactions, want 2 (low half then high half)", len(w))
	}
	if w[0].reg != regStartCntrl || w[0].val != 0xBEEF {
		t.Errorf("first write 0x%04x=0x%04x, want 0x0204=0xBEEF", w[0].reg, w[0].val)
	}
	if w[1].reg != regStartCntrl+2 || w[1].val != 0xDEAD {
		t.Errorf("second write 0x%04x=0x%04x, want 0x0206=0xDEAD", w[1].reg, w[1].val)
	}
}

func TestReadRegWide(t *testing.T) {
	f := newFakeBridge()
	f.regs[regDSIStatus] = 0xBEEF
	f.regs[regDSIStatus+2] = 0xDEAD
	d := testDev(f)

	v, err := d.readReg(regDSIStatus)
	if err != nil {
		t.Fatalf("readReg() = %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("readReg() = 0x%08x, want 0xDEADBEEF (low | high<<16)", v)
	}
	if len(f.ops) != 2 {
		t.Errorf("got %d transactions, want 2", len(f.ops))
	}
}

func TestUpdateBits(t *testing.T) {
	f := newFakeBridge()
	f.regs[regPPMisc] = 0xC000
	d := testDev(f)

	if err := d.updateBits(regPPMisc, ppmiscFrmStop|ppmiscRstPtr, 0); err != nil {
		t.Fatalf("updateBits() = %v", err)
	}
	w := f.writesTo(regPPMisc)
	if len(w) != 1 || w[0].val != 0 {
		t.Fatalf("writes to PP_MISC: %+v, want a single write of 0", w)
	}
	// Untouched bits survive the read-modify-write.
	f.regs[regConfctl] = 0x0004
	if err := d.updateBits(regConfctl, confctlPPEn, confctlPPEn); err != nil {
		t.Fatalf("updateBits() = %v", err)
	}
	if got := f.regs[regConfctl]; got != 0x0044 {
		t.Errorf("CONFCTL = 0x%04x, want 0x0044", got)
	}
}

func TestUpdateBitsSkipsRedundantWrite(t *testing.T) {
	f := newFakeBridge()
	f.regs[regConfctl] = confctlPPEn
	d := testDev(f)

	if err := d.updateBits(regConfctl, confctlPPEn, confctlPPEn); err != nil {
		t.Fatalf("updateBits() = %v", err)
	}
	if w := f.writesTo(regConfctl); len(w) != 0 {
		t.Errorf("got %d writes for an unchanged value, want none", len(w))
	}
}

func TestUpdateBitsPropagatesReadError(t *testing.T) {
	f := newFakeBridge()
	f.failAfter = 0
	d := testDev(f)

	err := d.updateBits(regPPMisc, ppmiscFrmStop, ppmiscFrmStop)
	if !errors.Is(err, errInjected) {
		t.Fatalf("updateBits() = %v, want wrapped injected fault", err)
	}
	if len(f.writes()) != 0 {
		t.Error("a failed read must not be followed by a write")
	}
}

func TestWriteRegWideAbortsOnFirstHalf(t *testing.T) {
	f := newFakeBridge()
	f.failAfter = 0
	d := testDev(f)

	if err := d.writeReg(regStartCntrl, 1); !errors.Is(err, errInjected) {
		t.Fatalf("writeReg() = %v, want wrapped injected fault", err)
	}
	if len(f.ops) != 0 {
		t.Error("no transaction should land after the first fault")
	}
}

func TestExportedRegAccess(t *testing.T) {
	f := newFakeBridge()
	d := testDev(f)

	if err := d.WriteReg(regLineInitCnt, cntLineInit); err != nil {
		t.Fatalf("WriteReg() = %v", err)
	}
	v, err := d.ReadReg(regLineInitCnt)
	if err != nil {
		t.Fatalf("ReadReg() = %v", err)
	}
	if v != cntLineInit {
		t.Errorf("ReadReg() = 0x%08x, want 0x%08x", v, uint32(cntLineInit))
	}
}
