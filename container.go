// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import "unsafe"

// Container is a staging buffer holding the byte image of one T.
//
// The image is partitioned by [LayoutFor] into a word block, a half-word
// block and a byte block, in that order from offset 0. Store and Load move
// the image to and from a register using exactly those unit widths:
// words first, then the half-word, then the byte. The container's
// footprint is exactly unsafe.Sizeof(T).
//
// T must be a fixed-layout value without pointers (see [Check]). Padding
// bytes inside T are opaque data: Load and Store carry them verbatim.
// Go value copies of T or of a Container may drop padding, so keep a
// container addressable between Load and Image when padding matters.
//
// A Container is transient. Create it right before a transfer and drop it
// afterwards; it has no identity beyond the image it holds.
//
// Example:
//
//	c := mmio.Pack(Pair{A: 0x1234, B: 0x5678})
//	c.Store(bus, 0x0400_0000) // one 32-bit store of 0x56781234
//
//	c = mmio.LoadContainer[Pair](bus, 0x0400_0000)
//	p := c.Unpack()
type Container[T any] struct {
	v T
}

// Pack returns a container holding v's byte image.
//
// The image is copied byte for byte; no field is converted or reordered.
func Pack[T any](v T) (c Container[T]) {
	copy(image(&c.v), image(&v))
	return c
}

// Construct builds T in place inside a new container.
// init receives a pointer to zeroed storage.
//
// Example:
//
//	c := mmio.Construct(func(p *Pair) { p.A = 1; p.B = 2 })
func Construct[T any](init func(*T)) (c Container[T]) {
	init(&c.v)
	return c
}

// LoadContainer reads a T image from the register at addr.
func LoadContainer[T any](bus Bus, addr uintptr) (c Container[T]) {
	c.Load(bus, addr)
	return c
}

// Unpack returns the T whose byte image equals the container's image.
// Unpack does not modify the container; calling it twice yields equal
// values.
func (c *Container[T]) Unpack() (v T) {
	copy(image(&v), image(&c.v))
	return v
}

// Store writes the image to the register at addr.
//
// Exactly Longs+Shorts+Bytes accesses are issued: each word in index
// order, then the half-word, then the byte. Absent classes issue nothing.
func (c *Container[T]) Store(bus Bus, addr uintptr) {
	img, l := image(&c.v), c.Layout()
	blockOf[uint32](img, 0, l.Longs).copyOut(bus, addr)
	blockOf[uint16](img, l.ShortOffset(), l.Shorts).copyOut(bus, addr+l.ShortOffset())
	blockOf[uint8](img, l.ByteOffset(), l.Bytes).copyOut(bus, addr+l.ByteOffset())
}

// Load replaces the image with the register contents at addr, using the
// same unit order as Store.
func (c *Container[T]) Load(bus Bus, addr uintptr) {
	img, l := image(&c.v), c.Layout()
	blockOf[uint32](img, 0, l.Longs).copyIn(bus, addr)
	blockOf[uint16](img, l.ShortOffset(), l.Shorts).copyIn(bus, addr+l.ShortOffset())
	blockOf[uint8](img, l.ByteOffset(), l.Bytes).copyIn(bus, addr+l.ByteOffset())
}

// Layout returns the unit decomposition of T.
func (c *Container[T]) Layout() Layout {
	return LayoutOf(unsafe.Sizeof(c.v))
}

// Image returns the container's byte image. The slice aliases the
// container and is valid while the container is.
func (c *Container[T]) Image() []byte {
	return image(&c.v)
}

// Words returns the word block, index 0 at the lowest offset.
func (c *Container[T]) Words() []uint32 {
	return units(blockOf[uint32](image(&c.v), 0, c.Layout().Longs))
}

// Shorts returns the half-word block: empty or one element.
func (c *Container[T]) Shorts() []uint16 {
	l := c.Layout()
	return units(blockOf[uint16](image(&c.v), l.ShortOffset(), l.Shorts))
}

// Bytes returns the trailing byte block: empty or one element.
func (c *Container[T]) Bytes() []uint8 {
	l := c.Layout()
	return units(blockOf[uint8](image(&c.v), l.ByteOffset(), l.Bytes))
}

func units[U Unit](b block[U]) []U {
	out := make([]U, b.count())
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

// image views the storage of *p as bytes.
func image[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
