package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func u12(x int) uint16 {
	return uint16(x) & 0x0FFF
}

func TestTranslate(t *testing.T) {
	var d Decoder
	d.Calibrate(-400, 0)

	golden := []struct {
		name string
		x    uint16
		want int
	}{
		{name: "black", x: u12(0), want: 1},
		{name: "one-step-above-black", x: u12(100), want: 2},
	}
	for _, g := range golden {
		got := d.Translate(g.x)
		if got != g.want {
			t.Errorf("%s: Translate(%d) = %d, want %d", g.name, int16(g.x), got, g.want)
		}
	}

	// ultra-black decodes to a non-positive small symbol (invariant 6).
	if got := d.Translate(u12(-400)); got > 0 {
		t.Errorf("Translate(ublack) = %d, want a non-positive value", got)
	}
}

func TestTranslateUncalibrated(t *testing.T) {
	var d Decoder
	if got := d.Translate(u12(0)); got != 0 {
		t.Errorf("uncalibrated Translate = %d, want 0", got)
	}
}

// TestTranslateMonotone checks invariant 6: Translate is monotone
// non-decreasing in its input once calibrated.
func TestTranslateMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ublack := rapid.IntRange(-2000, -1).Draw(t, "ublack")
		black := rapid.IntRange(0, 2000).Draw(t, "black")

		var d Decoder
		d.Calibrate(ublack, black)
		if d.level1 == 0 {
			return
		}

		a := rapid.IntRange(-2048, 2047).Draw(t, "a")
		b := rapid.IntRange(-2048, 2047).Draw(t, "b")
		if a > b {
			a, b = b, a
		}

		got := d.Translate(u12(a))
		want := d.Translate(u12(b))
		assert.LessOrEqual(t, got, want, "Translate must be monotone non-decreasing")
	})
}
