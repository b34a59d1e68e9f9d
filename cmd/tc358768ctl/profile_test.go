package main

import (
	"testing"

	"periph.io/x/conn/v3/physic"
	"sigs.k8s.io/yaml"
)

func TestPresets(t *testing.T) {
	for name, p := range presets {
		if p.PixelClockHz == 0 {
			t.Errorf("preset %q has no pixel clock", name)
		}
		if p.HActBytes == 0 || p.VActLines == 0 {
			t.Errorf("preset %q has no active area", name)
		}
	}
}

func TestProfileOpts(t *testing.T) {
	p := presets["fortec"]
	opts := p.opts()
	if want := 154900 * physic.KiloHertz; opts.PixelClock != want {
		t.Errorf("PixelClock = %s, want %s", opts.PixelClock, want)
	}
	if opts.HActBytes != 3600 || opts.VActLines != 1920 {
		t.Errorf("active area = %dx%d, want 3600x1920", opts.HActBytes, opts.VActLines)
	}
}

func TestProfileYAML(t *testing.T) {
	doc := `
bus: /dev/i2c-1
resetPin: GPIO24
pixelClockHz: 33500000
hSyncWidth: 10
hBackPorch: 89
vSyncWidth: 10
vBackPorch: 2
hActBytes: 2400
vActLines: 480
`
	p := &Profile{}
	if err := yaml.Unmarshal([]byte(doc), p); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if p.Bus != "/dev/i2c-1" || p.ResetPin != "GPIO24" {
		t.Errorf("attachment = %q/%q", p.Bus, p.ResetPin)
	}
	if p.PixelClockHz != 33500000 {
		t.Errorf("PixelClockHz = %d, want 33500000", p.PixelClockHz)
	}

	// Round-trips through Marshal.
	data, err := yaml.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	back := &Profile{}
	if err := yaml.Unmarshal(data, back); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if *back != *p {
		t.Errorf("round trip changed the profile: %+v != %+v", back, p)
	}
}
