// Package tc358768 controls a Toshiba TC358768AXBG/TC358778XBG DPI to DSI
// bridge via I²C.
//
// The bridge takes a parallel RGB (DPI) video stream and serializes it onto
// up to four MIPI DSI lanes. This driver owns the clock synthesis and the
// hardware bring-up: it solves the bridge PLL for the configured pixel
// clock, derives the DSI timing registers and runs the full power-on and
// power-off register sequences, including the DCS short commands that wake
// the attached panel.
//
// # Hardware Connection
//
// Connect the bridge control port to your system via I²C:
//
//	Bridge Pin  → System Pin
//	GND         → GND
//	SCL         → I²C Clock
//	SDA         → I²C Data
//	RESX        → Optional: GPIO for hardware reset
//
// The DPI input and DSI output are wired to the video source and the panel
// and are not visible to this driver.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/conn/v3/physic"
//		"periph.io/x/devices/v3/tc358768"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, _ := tc358768.NewI2C(bus, &tc358768.Opts{
//			PixelClock: 154900 * physic.KiloHertz,
//			HSyncWidth: 1,
//			HBackPorch: 60,
//			VSyncWidth: 1,
//			VBackPorch: 25,
//		})
//		defer dev.Halt()
//
//		// Bring the pipe up; the panel starts streaming on success.
//		if err := dev.Enable(); err != nil {
//			// device not usable; Enable may be retried from scratch
//		}
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If the bridge RESX pin is wired to a GPIO, provide it in the Opts struct:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := tc358768.NewI2C(bus, &tc358768.Opts{
//		PixelClock: 154900 * physic.KiloHertz,
//		RST:        rstPin, // Optional reset pin
//	})
//
// Enable releases the line before programming and Disable asserts it again
// afterwards. If RST is nil the reset steps are skipped and the driver
// relies on power-on reset; absence of the pin is never an error.
//
// # Clock Synthesis
//
// The serial bit clock is synthesized from the reference clock by the
// bridge PLL:
//
//	pll = refclk * (FBD+1) / ((PRD+1) * 2^FRS)
//
// Enable brute-forces the divider space for the closest match to the
// target frequency implied by the pixel clock and the lane ratio; the
// search is deterministic, and an unsatisfiable target fails with
// ErrOutOfRange or ErrNoSolution before any register is written. SolvePLL
// runs the same computation standalone for inspection.
//
// # Sequencing Constraints
//
// Enable and Disable are synchronous, blocking sequences of register
// writes with mandatory settle delays (the PLL lock wait, the one-frame
// drain on teardown). They must not be interleaved: a Dev is owned by one
// caller at a time and a failed Enable leaves the bridge partially
// configured with no rollback.
//
// # Active Area Registers
//
// The DSI active-area registers (HActBytes, VActLines) are programmed from
// configuration values rather than computed from the porch parameters.
// Their defaults match a fixed 1200x1920 24-bit panel; other panels must
// set them explicitly. Deriving them from a full display mode is a known
// limitation of this driver.
package tc358768
