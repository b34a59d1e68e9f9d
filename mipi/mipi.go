// Package mipi defines the MIPI DSI data types and DCS commands used when
// driving a display panel, independent of any particular bridge or host
// controller.
package mipi

// DSI processor-to-peripheral transaction data types.
const (
	DSIVSyncStart         = 0x01
	DSIVSyncEnd           = 0x11
	DSIHSyncStart         = 0x21
	DSIHSyncEnd           = 0x31
	DSIColorModeOff       = 0x02
	DSIColorModeOn        = 0x12
	DSIShutdownPeripheral = 0x22
	DSITurnOnPeripheral   = 0x32
	DSIGenericShortWrite0 = 0x03
	DSIGenericShortWrite1 = 0x13
	DSIGenericShortWrite2 = 0x23
	DSIDCSShortWrite      = 0x05
	DSIDCSShortWriteParam = 0x15
	DSIDCSRead            = 0x06
	DSINullPacket         = 0x09
	DSIBlankingPacket     = 0x19
	DSIGenericLongWrite   = 0x29
	DSIDCSLongWrite       = 0x39
	DSIPackedPixel24      = 0x3E // Packed pixel stream, 24-bit RGB 8-8-8
)

// DCS commands.
const (
	DCSNop            = 0x00
	DCSSoftReset      = 0x01
	DCSEnterSleepMode = 0x10
	DCSExitSleepMode  = 0x11
	DCSSetDisplayOff  = 0x28
	DCSSetDisplayOn   = 0x29
	DCSSetPixelFormat = 0x3A
)

// DCS pixel format arguments for DCSSetPixelFormat.
const (
	DCSPixelFmt24Bit = 7
	DCSPixelFmt18Bit = 6
	DCSPixelFmt16Bit = 5
	DCSPixelFmt12Bit = 3
	DCSPixelFmt8Bit  = 2
	DCSPixelFmt3Bit  = 1
)
