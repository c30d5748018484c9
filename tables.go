package deflate

// Symbol and extra-bit lookups from RFC 1951 §3.2.5. lenSym and lenExtra are
// indexed by length-3. Distances are stored as distance-1: smallDistSym and
// smallDistExtra cover values below 512, largeDistSym and largeDistExtra are
// indexed by (distance-1)>>8.
var (
	lenSym   [256]uint16
	lenExtra [256]byte

	smallDistSym   [512]byte
	smallDistExtra [512]byte
	largeDistSym   [128]byte
	largeDistExtra [128]byte
)

var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]byte{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the order in which code lengths for the code length
// alphabet are transmitted (RFC 1951 §3.2.7).
var codeLengthOrder = [19]byte{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

func init() {
	for i := 0; i < 29; i++ {
		hi := 258
		if i < 28 {
			hi = lengthBase[i+1] - 1
		}
		for l := lengthBase[i]; l <= hi; l++ {
			lenSym[l-3] = uint16(257 + i)
			lenExtra[l-3] = lengthExtraBits[i]
		}
	}
	for i := 0; i < 30; i++ {
		hi := windowSize
		if i < 29 {
			hi = distBase[i+1] - 1
		}
		for dist := distBase[i]; dist <= hi; dist++ {
			if d := dist - 1; d < 512 {
				smallDistSym[d] = byte(i)
				smallDistExtra[d] = distExtraBits[i]
			} else {
				largeDistSym[d>>8] = byte(i)
				largeDistExtra[d>>8] = distExtraBits[i]
			}
		}
	}
}
