package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"sigs.k8s.io/yaml"

	"periph.io/x/devices/v3/tc358768"
)

// Profile describes a bridge attachment and the panel timings. It is what
// a yaml profile file deserializes into.
type Profile struct {
	// Bus is the I²C bus name; empty selects the system default.
	Bus string `json:"bus,omitempty"`
	// Addr is the bridge I²C address; 0 selects the chip default.
	Addr uint16 `json:"addr,omitempty"`
	// ResetPin names the GPIO wired to RESX; empty if not wired.
	ResetPin string `json:"resetPin,omitempty"`

	PixelClockHz uint64 `json:"pixelClockHz"`
	RefClkHz     uint64 `json:"refClkHz,omitempty"`
	DPILanes     int    `json:"dpiLanes,omitempty"`
	DSILanes     int    `json:"dsiLanes,omitempty"`
	HSyncWidth   int    `json:"hSyncWidth"`
	HBackPorch   int    `json:"hBackPorch"`
	VSyncWidth   int    `json:"vSyncWidth"`
	VBackPorch   int    `json:"vBackPorch"`
	HActBytes    int    `json:"hActBytes,omitempty"`
	VActLines    int    `json:"vActLines,omitempty"`
}

// presets are the panel configurations known from the reference designs.
var presets = map[string]*Profile{
	"fortec": {
		// 1200x1920 @ 60Hz, 154.9MHz pixel clock.
		PixelClockHz: 154900000,
		HSyncWidth:   1,
		HBackPorch:   60,
		VSyncWidth:   1,
		VBackPorch:   25,
		HActBytes:    1200 * 3,
		VActLines:    1920,
	},
	"seiko-wvga": {
		// 800x480 @ 60Hz, 33.5MHz pixel clock.
		PixelClockHz: 33500000,
		HSyncWidth:   10,
		HBackPorch:   89,
		VSyncWidth:   10,
		VBackPorch:   2,
		HActBytes:    800 * 3,
		VActLines:    480,
	},
}

func presetNames() string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// currentProfile resolves the --profile / --panel flags: an explicit file
// wins over the preset.
func currentProfile() (*Profile, error) {
	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, err
		}
		p := &Profile{}
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", profilePath, err)
		}
		return p, nil
	}
	p, ok := presets[panelName]
	if !ok {
		return nil, fmt.Errorf("unknown panel %q. Must be one of: %s", panelName, presetNames())
	}
	return p, nil
}

// opts converts the panel timing part of the profile. The reset pin is
// resolved separately because it needs an initialized host.
func (p *Profile) opts() *tc358768.Opts {
	return &tc358768.Opts{
		Addr:       p.Addr,
		PixelClock: physic.Frequency(p.PixelClockHz) * physic.Hertz,
		RefClk:     physic.Frequency(p.RefClkHz) * physic.Hertz,
		DPILanes:   p.DPILanes,
		DSILanes:   p.DSILanes,
		HSyncWidth: p.HSyncWidth,
		HBackPorch: p.HBackPorch,
		VSyncWidth: p.VSyncWidth,
		VBackPorch: p.VBackPorch,
		HActBytes:  p.HActBytes,
		VActLines:  p.VActLines,
	}
}

// openDev initializes the host and binds the bridge described by the
// profile. The caller owns the returned bus and must close it.
func (p *Profile) openDev() (*tc358768.Dev, i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing host: %w", err)
	}
	b, err := i2creg.Open(p.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("opening I²C bus %q: %w", p.Bus, err)
	}
	opts := p.opts()
	if p.ResetPin != "" {
		pin := gpioreg.ByName(p.ResetPin)
		if pin == nil {
			b.Close()
			return nil, nil, fmt.Errorf("reset pin %q not found", p.ResetPin)
		}
		opts.RST = pin
	}
	dev, err := tc358768.NewI2C(b, opts)
	if err != nil {
		b.Close()
		return nil, nil, err
	}
	return dev, b, nil
}
