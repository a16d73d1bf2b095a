// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import (
	"encoding/binary"
	"unsafe"
)

// Unit is the set of transfer unit types: word, half-word and byte.
type Unit interface {
	~uint32 | ~uint16 | ~uint8
}

// block is a run of same-width units over a slice of a byte image.
//
// Units are decoded and encoded in native byte order, so a block holds
// exactly the bits of the image it covers. A block over an empty slice is
// the absent class: it has no storage and both transfers are no-ops.
type block[U Unit] struct {
	img []byte
}

func blockOf[U Unit](img []byte, off, n uintptr) block[U] {
	var u U
	return block[U]{img: img[off : off+n*unsafe.Sizeof(u)]}
}

func (b block[U]) width() uintptr {
	var u U
	return unsafe.Sizeof(u)
}

func (b block[U]) count() int {
	return len(b.img) / int(b.width())
}

func (b block[U]) at(i int) U {
	switch off := i * int(b.width()); b.width() {
	case LongSize:
		return U(binary.NativeEndian.Uint32(b.img[off:]))
	case ShortSize:
		return U(binary.NativeEndian.Uint16(b.img[off:]))
	default:
		return U(b.img[off])
	}
}

func (b block[U]) set(i int, v U) {
	switch off := i * int(b.width()); b.width() {
	case LongSize:
		binary.NativeEndian.PutUint32(b.img[off:], uint32(v))
	case ShortSize:
		binary.NativeEndian.PutUint16(b.img[off:], uint16(v))
	default:
		b.img[off] = uint8(v)
	}
}

// copyIn loads every unit from the block at addr, index 0 first, one
// access of the unit's width per element.
func (b block[U]) copyIn(bus Bus, addr uintptr) {
	w := b.width()
	for i := range b.count() {
		b.set(i, load[U](bus, addr+uintptr(i)*w))
	}
}

// copyOut stores every unit to the block at addr, index 0 first, one
// access of the unit's width per element.
func (b block[U]) copyOut(bus Bus, addr uintptr) {
	w := b.width()
	for i := range b.count() {
		store(bus, addr+uintptr(i)*w, b.at(i))
	}
}

func load[U Unit](bus Bus, addr uintptr) U {
	var u U
	switch unsafe.Sizeof(u) {
	case LongSize:
		return U(bus.Load32(addr))
	case ShortSize:
		return U(bus.Load16(addr))
	default:
		return U(bus.Load8(addr))
	}
}

func store[U Unit](bus Bus, addr uintptr, v U) {
	switch unsafe.Sizeof(v) {
	case LongSize:
		bus.Store32(addr, uint32(v))
	case ShortSize:
		bus.Store16(addr, uint16(v))
	default:
		bus.Store8(addr, uint8(v))
	}
}
