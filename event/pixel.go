package event

import "github.com/psi46/datastream/level"

// digit validates a base-6 address digit, returning (digit, errBit) where
// errBit is the matching Err* constant if digit ≥ 6, else 0.
func digit(v int, errBit uint16) (int, uint16) {
	if v >= 6 {
		return v, errBit
	}
	return v, 0
}

// rowCol composes the row/column digits into pixel coordinates and checks
// their range, following spec §4.2: y = 80 − r/2, x = 2·c + (r & 1).
func rowCol(c1, c0, r2, r1, r0 int) (x, y int16, rangeErr uint16) {
	c := 6*c1 + c0
	r := 36*r2 + 6*r1 + r0

	yy := 80 - r/2
	xx := 2*c + (r & 1)

	var errs uint16
	if xx < 0 || xx >= 52 {
		errs |= ErrColRange
	}
	if yy < 0 || yy >= 80 {
		errs |= ErrRowRange
	}
	return int16(xx), int16(yy), errs
}

// DecodeRaw decodes a digital pixel from a 24-bit packed word (spec §4.2).
func DecodeRaw(raw uint32) Pixel {
	px := Pixel{Raw: raw}

	px.PH = int16((raw & 0x0F) | ((raw >> 1) & 0xF0))
	if raw&0x10 != 0 {
		px.Error |= ErrPHFlag
	}

	c1, e := digit(int((raw>>21)&0x7), ErrC1)
	px.Error |= e
	c0, e := digit(int((raw>>18)&0x7), ErrC0)
	px.Error |= e
	r2, e := digit(int((raw>>15)&0x7), ErrR2)
	px.Error |= e
	r1, e := digit(int((raw>>12)&0x7), ErrR1)
	px.Error |= e
	r0, e := digit(int((raw>>9)&0x7), ErrR0)
	px.Error |= e

	x, y, rangeErr := rowCol(c1, c0, r2, r1, r0)
	px.X, px.Y = x, y
	px.Error |= rangeErr

	return px
}

// DecodeAna decodes an analog pixel from six consecutive 12-bit ADC
// samples, levels translated through dec (spec §4.2).
func DecodeAna(dec *level.Decoder, v [6]uint16) Pixel {
	var px Pixel

	c1, e := digit(dec.Translate(v[0]), ErrC1)
	px.Error |= e
	c0, e := digit(dec.Translate(v[1]), ErrC0)
	px.Error |= e
	r2, e := digit(dec.Translate(v[2]), ErrR2)
	px.Error |= e
	r1, e := digit(dec.Translate(v[3]), ErrR1)
	px.Error |= e
	r0, e := digit(dec.Translate(v[4]), ErrR0)
	px.Error |= e

	px.PH = int16(dec.CorrectOffset(v[5]))

	x, y, rangeErr := rowCol(c1, c0, r2, r1, r0)
	px.X, px.Y = x, y
	px.Error |= rangeErr

	// The analog wire format has no 24-bit packed word of its own — Raw is
	// only meaningful for the digital encoding (see DecodeRaw).

	return px
}
