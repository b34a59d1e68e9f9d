package tc358768

// DSI_CONFW is a write-port onto the DSI control register: the opcode in
// the top bits selects set or clear, the address field selects the target,
// and the low bits carry the mask. One logical configuration therefore
// takes two writes, set first, then clear.
const (
	confwSet        = 5 << 29
	confwClear      = 6 << 29
	confwDSIControl = 0x3 << 24
)

// dsiControlSet sets bits in the DSI control register.
func (d *Dev) dsiControlSet(bits uint32) error {
	return d.writeReg(regDSIConfW, confwSet|confwDSIControl|bits)
}

// dsiControlClear clears bits in the DSI control register.
func (d *Dev) dsiControlClear(bits uint32) error {
	return d.writeReg(regDSIConfW, confwClear|confwDSIControl|bits)
}

// dsiPacketTypeShort tags the command FIFO entry as a DSI short packet.
const dsiPacketTypeShort = 0x10

// dsiXferShort issues a DSI short packet carrying dataID and two payload
// bytes through the command FIFO. The transfer is fire-and-forget: the
// trigger write returns without waiting for completion, and any settle time
// the peripheral needs afterwards is the caller's to provide.
func (d *Dev) dsiXferShort(dataID, data0, data1 byte) error {
	const wordCount = 0

	if err := d.writeReg(regDSICmdType, dsiPacketTypeShort<<8|uint32(dataID)); err != nil {
		return err
	}
	if err := d.writeReg(regDSICmdWC, wordCount&0xf); err != nil {
		return err
	}
	if err := d.writeReg(regDSICmdWD0, uint32(data1)<<8|uint32(data0)); err != nil {
		return err
	}
	// Start transfer.
	return d.writeReg(regDSICmdTx, 1)
}
