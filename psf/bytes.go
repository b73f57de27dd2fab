package psf

// Reading bytes from a font's binary representation.
// All multi-byte values in a PSF2 header are little endian.

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<0 | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
