//go:build !xbrzfulllut

package colordist

// Compact mode: each channel-difference byte is quantized to its top
// 5 bits, giving a 32^3-entry table. The dropped low bits cost at most a
// few units of distance, far below the classifier thresholds, for 1/512
// of the full table's memory.

const tableSize = 1 << 15

func buildTable() []float32 {
	t := make([]float32, tableSize)
	for i := range t {
		rDiff := float64(int16(int8(uint8(i>>10&0x1F)<<3)) * 2)
		gDiff := float64(int16(int8(uint8(i>>5&0x1F)<<3)) * 2)
		bDiff := float64(int16(int8(uint8(i&0x1F)<<3)) * 2)
		t[i] = float32(distYCbCr(rDiff, gDiff, bDiff))
	}
	return t
}

func tableIndex(rPart, gPart, bPart uint8) uint32 {
	return uint32(rPart>>3)<<10 | uint32(gPart>>3)<<5 | uint32(bPart>>3)
}
