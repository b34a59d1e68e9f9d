package tc358768

// Register map of the TC358768/TC358778. Registers below 0x100 and from
// 0x600 up are 16-bit wide; the PHY/PPI/DSI control blocks in between are
// 32-bit wide and split over two bus words (see regio.go).

// Global (16-bit addressable).
const (
	regChipID  = 0x0000
	regSysctl  = 0x0002
	regConfctl = 0x0004
	regVSDly   = 0x0006
	regDatafmt = 0x0008
	regGPIOEn  = 0x000E
	regGPIODir = 0x0010
	regGPIOIn  = 0x0012
	regGPIOOut = 0x0014
	regPLLCtl0 = 0x0016
	regPLLCtl1 = 0x0018
	regCmdByte = 0x0022
	regPPMisc  = 0x0032
	regDSITxDT = 0x0050
	regFIFOSta = 0x00F8
)

// Debug (16-bit addressable).
const (
	regVBufCtrl  = 0x00E0
	regDbgWidth  = 0x00E2
	regDbgVBlank = 0x00E4
	regDbgData   = 0x00E8
)

// TX PHY (32-bit addressable).
const (
	regCLWDPHYContTX = 0x0100
	regD0WDPHYContTX = 0x0104
	regD1WDPHYContTX = 0x0108
	regD2WDPHYContTX = 0x010C
	regD3WDPHYContTX = 0x0110
	regCLWCntrl      = 0x0140
	regD0WCntrl      = 0x0144
	regD1WCntrl      = 0x0148
	regD2WCntrl      = 0x014C
	regD3WCntrl      = 0x0150
)

// TX PPI (32-bit addressable).
const (
	regStartCntrl    = 0x0204
	regDSITxStatus   = 0x0208
	regLineInitCnt   = 0x0210
	regLPTXTimeCnt   = 0x0214
	regTClkHeaderCnt = 0x0218
	regTClkTrailCnt  = 0x021C
	regTHSHeaderCnt  = 0x0220
	regTWakeup       = 0x0224
	regTClkPostCnt   = 0x0228
	regTHSTrailCnt   = 0x022C
	regHSTxVRegCnt   = 0x0230
	regHSTxVRegEn    = 0x0234
	regTxOptionCntrl = 0x0238
	regBTACntrl1     = 0x023C
)

// TX CTRL (32-bit addressable).
const (
	regDSIStatus    = 0x0410
	regDSIInt       = 0x0414
	regDSICmdRxFIFO = 0x0430
	regDSIAckErr    = 0x0434
	regDSIRxErr     = 0x0440
	regDSIErr       = 0x044C
	regDSIConfW     = 0x0500
	regDSIReset     = 0x0504
	regDSIIntClr    = 0x050C
	regDSIStart     = 0x0518
)

// DSITX CTRL (16-bit addressable).
const (
	regDSICmdTx   = 0x0600
	regDSICmdType = 0x0602
	regDSICmdWC   = 0x0604
	regDSICmdWD0  = 0x0610
	regDSICmdWD1  = 0x0612
	regDSICmdWD2  = 0x0614
	regDSICmdWD3  = 0x0616
	regDSIEvent   = 0x0620
	regDSIVSW     = 0x0622
	regDSIVBPR    = 0x0624
	regDSIVAct    = 0x0626
	regDSIHSW     = 0x0628
	regDSIHBPR    = 0x062A
	regDSIHAct    = 0x062C
)

// Field bits.
const (
	sysctlSReset = 1 << 0 // SYSCTL software reset

	confctlPPEn = 1 << 6 // CONFCTL pixel pipe enable

	ppmiscRstPtr  = 1 << 14 // PP_MISC pointer reset
	ppmiscFrmStop = 1 << 15 // PP_MISC frame stop request

	pllctl1CKEn   = 1 << 4 // PLLCTL1 clock output enable
	pllctl1ResetB = 1 << 1 // PLLCTL1 reset release
	pllctl1En     = 1 << 0 // PLLCTL1 PLL enable
	pllctl1LBWS   = 2 << 8 // PLLCTL1 loop bandwidth, fixed 50%
)
