package tc358768

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

var (
	// ErrOutOfRange means the target PLL frequency does not fall into any
	// supported frequency bracket.
	ErrOutOfRange = errors.New("tc358768: target pll frequency out of range")
	// ErrNoSolution means no divider pair reproduces a frequency inside the
	// selected bracket.
	ErrNoSolution = errors.New("tc358768: no suitable pll divider setup")
)

// frsLimits bounds the supported PLL frequency brackets in Hz. Range
// selector i covers [frsLimits[i+1], frsLimits[i]); a value landing exactly
// on a shared boundary belongs to the lower-index bracket.
var frsLimits = [...]uint64{1000000000, 500000000, 250000000, 125000000, 62500000}

// PLL is a solved PLL configuration.
//
// The synthesized frequency is refclk * (FBD+1) / ((PRD+1) * 2^FRS) and the
// DSI bit clock is half of it.
type PLL struct {
	FBD uint16 // Feedback divider (0-511)
	PRD uint8  // Pre-divider (0-15)
	FRS uint8  // Frequency range selector, post-divide exponent (0-3)

	// BitClk is the resulting DSI bit clock, exactly half the PLL output.
	BitClk physic.Frequency
}

// ByteClk returns the DSI byte clock, an eighth of the PLL output.
func (p *PLL) ByteClk() physic.Frequency {
	return p.BitClk / 4
}

// PixelClock returns the DPI pixel clock this configuration carries at the
// given lane ratio.
func (p *PLL) PixelClock(dpiLanes, dsiLanes int) physic.Frequency {
	pll := uint64(p.BitClk/physic.Hertz) * 2
	return physic.Frequency(pllToPclk(pll, dpiLanes, dsiLanes)) * physic.Hertz
}

func (p *PLL) String() string {
	return fmt.Sprintf("PLL{fbd:%d prd:%d frs:%d bitclk:%s}", p.FBD, p.PRD, p.FRS, p.BitClk)
}

// pclkToPLL converts a pixel clock in Hz into the PLL frequency that
// reproduces it at the given lane ratio. Inverse of pllToPclk modulo
// integer truncation.
func pclkToPLL(pixelClock uint64, dpiLanes, dsiLanes int) uint64 {
	byteClk := pixelClock * uint64(dpiLanes) / (8 * uint64(dsiLanes))
	return byteClk * 4 * 2
}

// pllToPclk converts a PLL frequency in Hz back into the pixel clock it
// carries at the given lane ratio.
func pllToPclk(pll uint64, dpiLanes, dsiLanes int) uint64 {
	byteClk := pll / 2 / 4
	return byteClk * 8 * uint64(dsiLanes) / uint64(dpiLanes)
}

// solvePLL searches the divider space for the setup whose output is closest
// to target. The search is exhaustive but bounded (16 pre-divider by 512
// feedback-divider candidates); the divider/frequency relationship is not
// monotonic across bracket boundaries, so no closed form is attempted.
// Ascending loop order plus strict less-than comparison makes the result
// deterministic: the lowest pre-divider wins, then the lowest feedback
// divider. An exact hit stops the search.
func solvePLL(refClk, target uint64) (PLL, error) {
	frs := -1
	var minPLL, maxPLL uint64
	for i := 0; i < len(frsLimits)-1; i++ {
		if target < frsLimits[i] && target >= frsLimits[i+1] {
			frs = i
			maxPLL = frsLimits[i]
			minPLL = frsLimits[i+1]
			break
		}
	}
	if frs < 0 {
		return PLL{}, fmt.Errorf("%w: %d Hz", ErrOutOfRange, target)
	}

	var bestPLL, bestPRD, bestFBD uint64
	bestDiff := ^uint64(0)

search:
	for prd := uint64(0); prd < 16; prd++ {
		divisor := (prd + 1) << uint(frs)

		for fbd := uint64(0); fbd < 512; fbd++ {
			pll := refClk * (fbd + 1) / divisor

			if pll >= maxPLL || pll < minPLL {
				continue
			}

			diff := pll - target
			if target > pll {
				diff = target - pll
			}
			if diff < bestDiff {
				bestDiff = diff
				bestPLL = pll
				bestPRD = prd
				bestFBD = fbd
			}
			if bestDiff == 0 {
				break search
			}
		}
	}

	if bestDiff == ^uint64(0) {
		return PLL{}, fmt.Errorf("%w: target %d Hz from refclk %d Hz", ErrNoSolution, target, refClk)
	}

	return PLL{
		FBD:    uint16(bestFBD),
		PRD:    uint8(bestPRD),
		FRS:    uint8(frs),
		BitClk: physic.Frequency(bestPLL/2) * physic.Hertz,
	}, nil
}

// SolvePLL computes the PLL configuration for a device configuration
// without touching hardware. Enable runs the same computation before its
// first register write.
func SolvePLL(opts *Opts) (PLL, error) {
	if opts == nil {
		return PLL{}, errors.New("tc358768: opts must be provided")
	}
	o, err := opts.normalized()
	if err != nil {
		return PLL{}, err
	}
	target := pclkToPLL(o.pixelClockHz(), o.DPILanes, o.DSILanes)
	return solvePLL(o.refClkHz(), target)
}
