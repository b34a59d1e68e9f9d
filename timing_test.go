package tc358768

import (
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDSIHSW(t *testing.T) {
	tests := []struct {
		name   string
		opts   Opts
		bitClk physic.Frequency
		want   uint32
	}{
		{
			// byteclk is exactly 0.75x the pixel clock, so the 61 pixel
			// clocks of blanking become 61*3 byte ticks over 4 lanes.
			name: "fortec",
			opts: Opts{
				PixelClock: 154900 * physic.KiloHertz,
				DSILanes:   4,
				HSyncWidth: 1,
				HBackPorch: 60,
			},
			bitClk: physic.Frequency(464700000) * physic.Hertz,
			want:   183,
		},
		{
			name: "seiko-wvga",
			opts: Opts{
				PixelClock: 33500 * physic.KiloHertz,
				DSILanes:   4,
				HSyncWidth: 10,
				HBackPorch: 89,
			},
			// byteclk 25.125MHz: (10+89)*25125000*4/33500000 = 297.
			bitClk: physic.Frequency(100500000) * physic.Hertz,
			want:   297,
		},
		{
			name: "truncates",
			opts: Opts{
				PixelClock: 100 * physic.MegaHertz,
				DSILanes:   1,
				HSyncWidth: 3,
				HBackPorch: 0,
			},
			// 3 * 33333333 * 1 / 100000000 = 0.99..., truncated to 0.
			bitClk: physic.Frequency(133333333) * physic.Hertz,
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pll := PLL{BitClk: tt.bitClk}
			if got := dsiHSW(&tt.opts, &pll); got != tt.want {
				t.Errorf("dsiHSW() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDSIVSW(t *testing.T) {
	tests := []struct {
		vsw, vbp int
		want     uint32
	}{
		{1, 25, 26},
		{10, 2, 12},
		{0, 0, 0},
	}
	for _, tt := range tests {
		o := Opts{VSyncWidth: tt.vsw, VBackPorch: tt.vbp}
		if got := dsiVSW(&o); got != tt.want {
			t.Errorf("dsiVSW(vsw=%d, vbp=%d) = %d, want %d", tt.vsw, tt.vbp, got, tt.want)
		}
	}
}
