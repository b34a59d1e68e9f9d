package tc358768

import "periph.io/x/conn/v3/physic"

// Fixed D-PHY/PPI timing counts programmed during bring-up. These are lane
// timing budgets in byte-clock ticks and are not pixel-format dependent.
const (
	cntLineInit   = 0x00002C88 // LP-11 held >= 100us for D-PHY Rx init
	cntLPTXTime   = 0x00000005
	cntTClkHeader = 0x00001F06
	cntTClkTrail  = 0x00000003
	cntTHSHeader  = 0x00000606
	cntTWakeup    = 0x00004A88
	cntTClkPost   = 0x0000000B
	cntTHSTrail   = 0x00000004
	cntHSTxVRegEn = 0x0000001F

	// TXTAGOCNT[26:16] RXTASURECNT[10:0]
	cntBTA = 0x5<<16 | 0x5
)

// dsiHSW derives the horizontal sync width register value in byte-clock
// ticks: (hsw + hbp) * byteclk * lanes / pixelclock, truncating.
func dsiHSW(o *Opts, pll *PLL) uint32 {
	byteClk := uint64(pll.ByteClk() / physic.Hertz)
	return uint32(uint64(o.HSyncWidth+o.HBackPorch) * byteClk * uint64(o.DSILanes) / o.pixelClockHz())
}

// dsiVSW derives the vertical sync width register value in lines. In event
// mode the back porch register is unused, so the porch folds into the sync
// width.
func dsiVSW(o *Opts) uint32 {
	return uint32(o.VSyncWidth + o.VBackPorch)
}
