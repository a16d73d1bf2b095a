// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import "unsafe"

// Unit widths in bytes.
const (
	LongSize  = 4
	ShortSize = 2
	ByteSize  = 1
)

// Layout is the decomposition of a byte image into transfer units.
//
// Units are taken largest first: Longs whole words, then at most one
// half-word, then at most one byte. Words occupy the lowest offsets of the
// image, followed by the half-word and the trailing byte.
//
//	size 4: {Longs: 1}
//	size 6: {Longs: 1, Shorts: 1}
//	size 7: {Longs: 1, Shorts: 1, Bytes: 1}
type Layout struct {
	Longs  uintptr
	Shorts uintptr
	Bytes  uintptr
}

// LayoutOf decomposes a byte image of size bytes.
// A size of zero yields the empty layout, which performs no transfers.
func LayoutOf(size uintptr) Layout {
	longs := size / LongSize
	shorts := (size - longs*LongSize) / ShortSize
	return Layout{
		Longs:  longs,
		Shorts: shorts,
		Bytes:  size - longs*LongSize - shorts*ShortSize,
	}
}

// LayoutFor returns the layout of T's byte image.
// The result depends only on unsafe.Sizeof(T).
func LayoutFor[T any]() Layout {
	var v T
	return LayoutOf(unsafe.Sizeof(v))
}

// Size returns the number of bytes covered by the layout.
func (l Layout) Size() uintptr {
	return l.Longs*LongSize + l.Shorts*ShortSize + l.Bytes*ByteSize
}

// Transfers returns the number of discrete accesses one transfer performs.
func (l Layout) Transfers() int {
	return int(l.Longs + l.Shorts + l.Bytes)
}

// ShortOffset returns the image offset of the half-word block.
func (l Layout) ShortOffset() uintptr {
	return l.Longs * LongSize
}

// ByteOffset returns the image offset of the byte block.
func (l Layout) ByteOffset() uintptr {
	return l.Longs*LongSize + l.Shorts*ShortSize
}

// Align returns the alignment a base address needs so that every unit
// lands on its natural boundary.
func (l Layout) Align() uintptr {
	switch {
	case l.Longs > 0:
		return LongSize
	case l.Shorts > 0:
		return ShortSize
	default:
		return ByteSize
	}
}
