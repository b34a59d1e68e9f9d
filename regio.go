package tc358768

import (
	"encoding/binary"
	"fmt"
)

// The bus carries 16-bit registers with 16-bit values, both big-endian.
// Registers in the 0x100-0x5FF window are 32 bits wide and are accessed as
// two consecutive 16-bit words: the low half at reg, the high half at reg+2.

// wideReg reports whether reg is one of the split 32-bit registers.
func wideReg(reg uint16) bool {
	return reg >= 0x100 && reg < 0x600
}

// splitWide splits a 32-bit register value into its two bus words.
func splitWide(val uint32) (lo, hi uint16) {
	return uint16(val), uint16(val >> 16)
}

// joinWide reassembles a 32-bit register value from its two bus words.
func joinWide(lo, hi uint16) uint32 {
	return uint32(lo) | uint32(hi)<<16
}

// write16 performs a single 16-bit register write transaction.
func (d *Dev) write16(reg, val uint16) error {
	var w [4]byte
	binary.BigEndian.PutUint16(w[0:], reg)
	binary.BigEndian.PutUint16(w[2:], val)
	if err := d.c.Tx(w[:], nil); err != nil {
		return fmt.Errorf("tc358768: write reg 0x%04x: %w", reg, err)
	}
	return nil
}

// read16 performs a single 16-bit register read transaction.
func (d *Dev) read16(reg uint16) (uint16, error) {
	var w [2]byte
	var r [2]byte
	binary.BigEndian.PutUint16(w[:], reg)
	if err := d.c.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("tc358768: read reg 0x%04x: %w", reg, err)
	}
	return binary.BigEndian.Uint16(r[:]), nil
}

// writeReg writes a register, splitting 32-bit registers in two
// transactions. Any bus error aborts immediately.
func (d *Dev) writeReg(reg uint16, val uint32) error {
	if !wideReg(reg) {
		return d.write16(reg, uint16(val))
	}
	lo, hi := splitWide(val)
	if err := d.write16(reg, lo); err != nil {
		return err
	}
	return d.write16(reg+2, hi)
}

// readReg reads a register, reassembling 32-bit registers from two
// transactions.
func (d *Dev) readReg(reg uint16) (uint32, error) {
	if !wideReg(reg) {
		v, err := d.read16(reg)
		return uint32(v), err
	}
	lo, err := d.read16(reg)
	if err != nil {
		return 0, err
	}
	hi, err := d.read16(reg + 2)
	if err != nil {
		return 0, err
	}
	return joinWide(lo, hi), nil
}

// updateBits performs a read-modify-write of the masked bits. The write is
// skipped when the value is unchanged to avoid redundant bus traffic.
func (d *Dev) updateBits(reg uint16, mask, val uint32) error {
	orig, err := d.readReg(reg)
	if err != nil {
		return err
	}
	tmp := orig &^ mask
	tmp |= val & mask
	if tmp == orig {
		return nil
	}
	return d.writeReg(reg, tmp)
}

// WriteReg writes a raw register value, applying the same width dispatch as
// the driver's own sequences. Intended for diagnostics tooling.
func (d *Dev) WriteReg(reg uint16, val uint32) error {
	return d.writeReg(reg, val)
}

// ReadReg reads a raw register value. Intended for diagnostics tooling.
func (d *Dev) ReadReg(reg uint16) (uint32, error) {
	return d.readReg(reg)
}
