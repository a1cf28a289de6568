package blend

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
//
// Uses Alvy Ray Smith's formula, which is exact for every product of two
// bytes and avoids an integer division:
//
//	t = a*b + 128
//	result = (t + (t >> 8)) >> 8
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and saturates at 255.
func addClamp(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}
