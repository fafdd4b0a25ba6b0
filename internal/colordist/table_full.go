//go:build xbrzfulllut

package colordist

// Full mode: every channel-difference byte indexes a table dimension
// directly, giving a 256^3-entry table (64 MiB of float32) with no
// quantization loss.

const tableSize = 1 << 24

func buildTable() []float32 {
	t := make([]float32, tableSize)
	for i := range t {
		rDiff := float64(int16(int8(uint8(i>>16))) * 2)
		gDiff := float64(int16(int8(uint8(i>>8))) * 2)
		bDiff := float64(int16(int8(uint8(i))) * 2)
		t[i] = float32(distYCbCr(rDiff, gDiff, bDiff))
	}
	return t
}

func tableIndex(rPart, gPart, bPart uint8) uint32 {
	return uint32(rPart)<<16 | uint32(gPart)<<8 | uint32(bPart)
}
