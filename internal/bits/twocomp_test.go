package bits

import "testing"

func TestIntN(t *testing.T) {
	golden := []struct {
		x    uint64
		n    uint
		want int64
	}{
		{x: 0b011, n: 3, want: 3},
		{x: 0b010, n: 3, want: 2},
		{x: 0b001, n: 3, want: 1},
		{x: 0b000, n: 3, want: 0},
		{x: 0b111, n: 3, want: -1},
		{x: 0b110, n: 3, want: -2},
		{x: 0b101, n: 3, want: -3},
		{x: 0b100, n: 3, want: -4},
	}
	for _, g := range golden {
		got := IntN(g.x, g.n)
		if g.want != got {
			t.Errorf("result mismatch of IntN(x=0b%03b, n=%d); expected %d, got %d", g.x, g.n, g.want, got)
			continue
		}
	}
}

func TestExpandSign(t *testing.T) {
	golden := []struct {
		x    uint16
		want int
	}{
		{x: 0x000, want: 0},
		{x: 0x001, want: 1},
		{x: 0x7FF, want: 2047},
		{x: 0x800, want: -2048},
		{x: 0xFFF, want: -1},
		// high bits beyond the 12-bit field are ignored.
		{x: 0xF800, want: -2048},
	}
	for _, g := range golden {
		got := ExpandSign(g.x)
		if g.want != got {
			t.Errorf("result mismatch of ExpandSign(x=0x%04X); expected %d, got %d", g.x, g.want, got)
		}
	}
}
