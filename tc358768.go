package tc358768

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"periph.io/x/devices/v3/tc358768/mipi"
)

// DefaultAddr is the I²C address of the bridge.
const DefaultAddr uint16 = 0x0E

// Opts is the configuration for the bridge and the attached panel. It is
// immutable for the lifetime of a Dev.
type Opts struct {
	// Addr is the I²C address. Defaults to DefaultAddr.
	Addr uint16

	// PixelClock is the DPI pixel clock. Required.
	PixelClock physic.Frequency
	// RefClk is the PLL reference clock. Defaults to PixelClock/4.
	RefClk physic.Frequency

	// DPILanes is the parallel input width in data lines (default: 24).
	// DSILanes is the serial output width in data lanes (default: 4).
	DPILanes int
	DSILanes int

	// Horizontal and vertical sync width and back porch, in pixels and
	// lines respectively.
	HSyncWidth int
	HBackPorch int
	VSyncWidth int
	VBackPorch int

	// Active area programmed into the DSI Tx timing registers: HActBytes
	// is the line length in bytes (pixels times bytes-per-pixel),
	// VActLines the frame height in lines. These are panel constants, not
	// derived from the porch parameters; see doc.go for the defaults.
	HActBytes int
	VActLines int

	// RST is the bridge reset line (optional, nil if not wired). When
	// absent the reset steps are skipped.
	RST gpio.PinIO
}

// normalized returns a copy of o with defaults applied, or an error if the
// configuration is unusable.
func (o *Opts) normalized() (Opts, error) {
	n := *o
	if n.Addr == 0 {
		n.Addr = DefaultAddr
	}
	if n.DPILanes == 0 {
		n.DPILanes = 24
	}
	if n.DSILanes == 0 {
		n.DSILanes = 4
	}
	if n.HActBytes == 0 {
		n.HActBytes = 1200 * 3
	}
	if n.VActLines == 0 {
		n.VActLines = 1920
	}
	if n.PixelClock <= 0 {
		return n, errors.New("tc358768: pixel clock must be set")
	}
	if n.RefClk == 0 {
		n.RefClk = n.PixelClock / 4
	}
	if n.RefClk <= 0 {
		return n, errors.New("tc358768: reference clock must be positive")
	}
	if n.DPILanes < 0 || n.DSILanes < 0 {
		return n, errors.New("tc358768: lane counts must be positive")
	}
	if n.HSyncWidth < 0 || n.HBackPorch < 0 || n.VSyncWidth < 0 || n.VBackPorch < 0 {
		return n, errors.New("tc358768: sync and porch values must not be negative")
	}
	return n, nil
}

func (o *Opts) pixelClockHz() uint64 {
	return uint64(o.PixelClock / physic.Hertz)
}

func (o *Opts) refClkHz() uint64 {
	return uint64(o.RefClk / physic.Hertz)
}

// Dev is the device handle for the bridge.
//
// A Dev must have a single owner at a time: Enable and Disable are long,
// open-loop register sequences and must never run concurrently with each
// other or with themselves.
type Dev struct {
	c   conn.Conn  // I²C connection
	rst gpio.PinIO // Reset line (optional)

	opts Opts
	pll  PLL // Solved fresh on every Enable
}

// NewI2C binds a bridge on the given I²C bus.
//
// No hardware access happens here: the device is only touched once Enable
// is called, so a Dev can be created for an absent or unpowered bridge.
//
// opts must at least carry the pixel clock; see Opts for the defaults.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("tc358768: opts must be provided")
	}
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	return &Dev{
		c:    &i2c.Dev{Bus: b, Addr: o.Addr},
		rst:  o.RST,
		opts: o,
	}, nil
}

// ChipID reads the chip identification register.
func (d *Dev) ChipID() (uint16, error) {
	v, err := d.readReg(regChipID)
	return uint16(v), err
}

// PLL returns the most recently solved PLL configuration. Only meaningful
// after a successful Enable.
func (d *Dev) PLL() PLL {
	return d.pll
}

// Enable brings the bridge from reset to an actively streaming display
// pipe: it solves the PLL configuration, releases the reset line if one is
// wired, and runs the full power-on sequence including the panel wake-up
// commands.
//
// Any failure aborts the sequence immediately and is returned; the bridge
// is left in whatever partial state was reached. Callers should treat any
// error as "device not usable" and may retry Enable from scratch.
func (d *Dev) Enable() error {
	target := pclkToPLL(d.opts.pixelClockHz(), d.opts.DPILanes, d.opts.DSILanes)
	pll, err := solvePLL(d.opts.refClkHz(), target)
	if err != nil {
		return err
	}
	d.pll = pll

	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("tc358768: failed to release reset: %w", err)
		}
	}

	// Wait for encoder clocks to stabilize.
	sleepRange(1*time.Millisecond, 2*time.Millisecond)

	if err := d.powerOn(); err != nil {
		return err
	}

	// Enable panel.
	if err := d.dsiXferShort(mipi.DSITurnOnPeripheral, 0, 0); err != nil {
		return err
	}
	return d.dsiXferShort(mipi.DSIDCSShortWriteParam,
		mipi.DCSSetPixelFormat, mipi.DCSPixelFmt24Bit)
}

// Disable stops the display pipe and asserts the reset line if one is
// wired. It blocks for at least one frame period so the frame in flight
// can drain before the pixel pipe is turned off.
func (d *Dev) Disable() error {
	if err := d.powerOff(); err != nil {
		return err
	}
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("tc358768: failed to assert reset: %w", err)
		}
	}
	return nil
}

// Halt powers off the display pipe. It implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Disable()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tc358768.Dev{%s}", d.c)
}

// swReset pulses the software reset bit. No settle delay is required
// between the two writes.
func (d *Dev) swReset() error {
	// Assert reset.
	if err := d.writeReg(regSysctl, sysctlSReset); err != nil {
		return err
	}
	// Release reset, exit sleep.
	return d.writeReg(regSysctl, 0)
}

// setupPLL programs the solved divider configuration. The clock output
// stage stays off until the PLL has had its lock interval: enabling the
// output before the wait elapses yields an unstable clock.
func (d *Dev) setupPLL() error {
	fbd := uint32(d.pll.FBD)
	prd := uint32(d.pll.PRD)
	frs := uint32(d.pll.FRS)

	// PRD[15:12] FBD[8:0]
	if err := d.writeReg(regPLLCtl0, prd<<12|fbd); err != nil {
		return err
	}

	// FRS[11:10] LBWS[9:8] CKEN[4] RESETB[1] EN[0]
	if err := d.writeReg(regPLLCtl1, frs<<10|pllctl1LBWS|pllctl1ResetB|pllctl1En); err != nil {
		return err
	}

	// Wait for lock.
	sleepRange(1*time.Millisecond, 2*time.Millisecond)

	return d.writeReg(regPLLCtl1, frs<<10|pllctl1LBWS|pllctl1CKEn|pllctl1ResetB|pllctl1En)
}

// powerOn runs the bring-up sequence from software reset to the enabled
// pixel pipe. The sequence is open loop: it never branches on hardware
// feedback, and the first bus error aborts it with no rollback.
func (d *Dev) powerOn() error {
	if err := d.swReset(); err != nil {
		return err
	}

	if err := d.setupPLL(); err != nil {
		return err
	}

	// VSDly[9:0]
	if err := d.writeReg(regVSDly, 1); err != nil {
		return err
	}
	// PDFormat[7:4] spmode_en[3] rdswap_en[2] dsitx_en[1] txdt_en[0]
	if err := d.writeReg(regDatafmt, 0x3<<4|1<<2|1<<1|1<<0); err != nil {
		return err
	}
	if err := d.writeReg(regDSITxDT, mipi.DSIPackedPixel24); err != nil {
		return err
	}

	// Enable D-PHY (HiZ -> LP-11).
	for _, reg := range []uint16{regCLWCntrl, regD0WCntrl, regD1WCntrl, regD2WCntrl, regD3WCntrl} {
		if err := d.writeReg(reg, 0); err != nil {
			return err
		}
	}

	// DSI timings.
	timings := []struct {
		reg uint16
		val uint32
	}{
		{regLineInitCnt, cntLineInit},
		{regLPTXTimeCnt, cntLPTXTime},
		{regTClkHeaderCnt, cntTClkHeader},
		{regTClkTrailCnt, cntTClkTrail},
		{regTHSHeaderCnt, cntTHSHeader},
		{regTWakeup, cntTWakeup},
		{regTClkPostCnt, cntTClkPost},
		{regTHSTrailCnt, cntTHSTrail},
		{regHSTxVRegEn, cntHSTxVRegEn},
	}
	for _, t := range timings {
		if err := d.writeReg(t.reg, t.val); err != nil {
			return err
		}
	}

	// CONTCLKMODE[0]
	if err := d.writeReg(regTxOptionCntrl, 1); err != nil {
		return err
	}

	// Exit sleep.
	if err := d.dsiXferShort(mipi.DSIDCSShortWrite, mipi.DCSExitSleepMode, 0); err != nil {
		return err
	}
	if err := d.writeReg(regBTACntrl1, cntBTA); err != nil {
		return err
	}
	// START[0]
	if err := d.writeReg(regStartCntrl, 1); err != nil {
		return err
	}

	// DSI Tx timing control, event mode.
	if err := d.writeReg(regDSIEvent, 1); err != nil {
		return err
	}
	if err := d.writeReg(regDSIVSW, dsiVSW(&d.opts)); err != nil {
		return err
	}
	// vbp is not used in event mode.
	if err := d.writeReg(regDSIVBPR, 0); err != nil {
		return err
	}
	if err := d.writeReg(regDSIVAct, uint32(d.opts.VActLines)); err != nil {
		return err
	}
	if err := d.writeReg(regDSIHSW, dsiHSW(&d.opts, &d.pll)); err != nil {
		return err
	}
	// hbp is not used in event mode.
	if err := d.writeReg(regDSIHBPR, 0); err != nil {
		return err
	}
	if err := d.writeReg(regDSIHAct, uint32(d.opts.HActBytes)); err != nil {
		return err
	}

	// Start DSI Tx.
	if err := d.writeReg(regDSIStart, 1); err != nil {
		return err
	}

	// 0xA7 = HS | CONTCLK | 4 data lanes | EoT disable. The set write must
	// land before the clear write.
	if err := d.dsiControlSet(0xA7); err != nil {
		return err
	}
	// 0x8000 = DSI mode.
	if err := d.dsiControlClear(0x8000); err != nil {
		return err
	}

	// Clear FrmStop and RstPtr.
	if err := d.updateBits(regPPMisc, ppmiscFrmStop|ppmiscRstPtr, 0); err != nil {
		return err
	}

	// Set PP_en; the bridge is streaming from here.
	return d.updateBits(regConfctl, confctlPPEn, confctlPPEn)
}

// framePeriod bounds one output frame; the teardown must let the frame in
// flight complete after requesting the stop.
const framePeriod = 50 * time.Millisecond

// powerOff mirrors powerOn in reverse: stop the frame, wait for it to
// drain, disable the pixel pipe and park the pointer.
func (d *Dev) powerOff() error {
	// Set FrmStop.
	if err := d.updateBits(regPPMisc, ppmiscFrmStop, ppmiscFrmStop); err != nil {
		return err
	}

	// Wait at least for one frame.
	time.Sleep(framePeriod)

	// Clear PP_en.
	if err := d.updateBits(regConfctl, confctlPPEn, 0); err != nil {
		return err
	}

	// Set RstPtr.
	return d.updateBits(regPPMisc, ppmiscRstPtr, ppmiscRstPtr)
}

// sleepRange blocks for at least min. max is only a scheduling hint and is
// not needed on a hosted kernel.
func sleepRange(min, _ time.Duration) {
	time.Sleep(min)
}
