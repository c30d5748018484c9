package deflate

// Length-limited canonical Huffman construction. The three tables (literal/
// length, distance, code length) are built the same way: collect the nonzero
// frequencies, radix-sort them, run the in-place Moffat–Katajainen
// minimum-redundancy algorithm, clamp the code lengths to the table's limit
// while restoring Kraft equality, and assign canonical codes bit-reversed
// for the LSB-first output stream.

const maxSupportedHuffCodeSize = 32

type symFreq struct {
	key uint16
	sym uint16
}

// radixSortSyms sorts syms0 ascending by key using two 8-bit passes,
// skipping the high pass when every key fits in a byte. The returned slice
// is whichever of the two buffers holds the sorted result.
func radixSortSyms(syms0, syms1 []symFreq) []symFreq {
	var hist [2 * 256]uint32
	for _, s := range syms0 {
		hist[s.key&0xff]++
		hist[256+(s.key>>8)]++
	}
	totalPasses := 2
	if hist[256] == uint32(len(syms0)) {
		totalPasses = 1
	}
	cur, next := syms0, syms1
	for pass, shift := 0, uint(0); pass < totalPasses; pass, shift = pass+1, shift+8 {
		counts := hist[pass<<8 : pass<<8+256]
		var offsets [256]uint32
		total := uint32(0)
		for i, n := range counts {
			offsets[i] = total
			total += n
		}
		for _, s := range cur {
			i := s.key >> shift & 0xff
			next[offsets[i]] = s
			offsets[i]++
		}
		cur, next = next, cur
	}
	return cur
}

// calculateMinimumRedundancy computes minimum-redundancy code lengths in
// place over a frequency-sorted array, following Moffat and Katajainen
// (1996). On return each key holds the symbol's code length.
func calculateMinimumRedundancy(a []symFreq) {
	n := len(a)
	if n == 0 {
		return
	}
	if n == 1 {
		a[0].key = 1
		return
	}
	a[0].key += a[1].key
	root, leaf := 0, 2
	for next := 1; next < n-1; next++ {
		if leaf >= n || a[root].key < a[leaf].key {
			a[next].key = a[root].key
			a[root].key = uint16(next)
			root++
		} else {
			a[next].key = a[leaf].key
			leaf++
		}
		if leaf >= n || (root < next && a[root].key < a[leaf].key) {
			a[next].key += a[root].key
			a[root].key = uint16(next)
			root++
		} else {
			a[next].key += a[leaf].key
			leaf++
		}
	}
	a[n-2].key = 0
	for next := n - 3; next >= 0; next-- {
		a[next].key = a[a[next].key].key + 1
	}
	avbl, used, dpth := 1, 0, 0
	root = n - 2
	next := n - 1
	for avbl > 0 {
		for root >= 0 && int(a[root].key) == dpth {
			used++
			root--
		}
		for avbl > used {
			a[next].key = uint16(dpth)
			next--
			avbl--
		}
		avbl = 2 * used
		dpth++
		used = 0
	}
}

// enforceMaxCodeSize moves codes longer than maxCodeSize up to it, then
// promotes shorter codes until the Kraft sum is exact again.
func enforceMaxCodeSize(numCodes []int, codeListLen, maxCodeSize int) {
	if codeListLen <= 1 {
		return
	}
	for i := maxCodeSize + 1; i <= maxSupportedHuffCodeSize; i++ {
		numCodes[maxCodeSize] += numCodes[i]
	}
	total := uint32(0)
	for i := maxCodeSize; i > 0; i-- {
		total += uint32(numCodes[i]) << uint(maxCodeSize-i)
	}
	for total != 1<<uint(maxCodeSize) {
		numCodes[maxCodeSize]--
		for i := maxCodeSize - 1; i > 0; i-- {
			if numCodes[i] != 0 {
				numCodes[i]--
				numCodes[i+1] += 2
				break
			}
		}
		total--
	}
}

// optimizeHuffmanTable rebuilds the codes and code sizes for one table from
// its frequency counts. Tables 0 and 1 are limited to 15-bit codes, table 2
// to 7-bit codes.
func (c *Compressor) optimizeHuffmanTable(tableNum, tableLen int) {
	var syms0, syms1 [maxHuffSymbols]symFreq
	numUsed := 0
	for i := 0; i < tableLen; i++ {
		if n := c.huffCount[tableNum][i]; n != 0 {
			syms0[numUsed] = symFreq{key: n, sym: uint16(i)}
			numUsed++
		}
	}
	syms := radixSortSyms(syms0[:numUsed], syms1[:numUsed])
	calculateMinimumRedundancy(syms)

	var numCodes [maxSupportedHuffCodeSize + 1]int
	for _, s := range syms {
		numCodes[s.key]++
	}
	codeSizeLimit := 15
	if tableNum == 2 {
		codeSizeLimit = 7
	}
	enforceMaxCodeSize(numCodes[:], numUsed, codeSizeLimit)

	for i := range c.huffCodeSizes[tableNum] {
		c.huffCodeSizes[tableNum][i] = 0
	}
	for i := range c.huffCodes[tableNum] {
		c.huffCodes[tableNum][i] = 0
	}
	for i, j := 1, numUsed; i <= codeSizeLimit; i++ {
		for l := numCodes[i]; l > 0; l-- {
			j--
			c.huffCodeSizes[tableNum][syms[j].sym] = byte(i)
		}
	}

	var nextCode [maxSupportedHuffCodeSize + 1]uint32
	code := uint32(0)
	for i := 2; i <= codeSizeLimit; i++ {
		code = (code + uint32(numCodes[i-1])) << 1
		nextCode[i] = code
	}
	for i := 0; i < tableLen; i++ {
		size := int(c.huffCodeSizes[tableNum][i])
		if size == 0 {
			continue
		}
		cur := nextCode[size]
		nextCode[size]++
		rev := uint32(0)
		for l := size; l > 0; l-- {
			rev = rev<<1 | cur&1
			cur >>= 1
		}
		c.huffCodes[tableNum][i] = uint16(rev)
	}
}
