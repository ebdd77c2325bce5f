package bits

// The bitmap is the visited set of the graph traversals.
// It is not thread safe.

const maxBitMapSize = 1 << 32

type Bitmap interface {
	// SetBit reports false if the offset is not less than the bitmap size.
	SetBit(offset uint64) bool
	GetBit(offset uint64) bool
}

var _ Bitmap = (*x32Bitmap)(nil) // Type check assertion

type x32Bitmap struct {
	bits []uint32
	size uint64
}

// NewX32Bitmap creates a bitmap of size bits, the size is capped to
// maxBitMapSize.
func NewX32Bitmap(size uint64) Bitmap {
	size = min(size, maxBitMapSize)
	return &x32Bitmap{
		bits: make([]uint32, (size+31)>>5),
		size: size,
	}
}

func (bm *x32Bitmap) SetBit(offset uint64) bool {
	if offset >= bm.size {
		return false
	}
	bm.bits[offset>>5] |= 1 << (offset & 31)
	return true
}

func (bm *x32Bitmap) GetBit(offset uint64) bool {
	if offset >= bm.size {
		return false
	}
	return bm.bits[offset>>5]&(1<<(offset&31)) != 0
}
