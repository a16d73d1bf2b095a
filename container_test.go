// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio_test

import (
	"bytes"
	"slices"
	"testing"

	"code.hybscloud.com/mmio"
	"code.hybscloud.com/mmio/mmiotest"
)

const base uintptr = 0x0400_0000

type pair struct {
	A uint16
	B uint16
}

// padded has one padding byte at offset 1.
type padded struct {
	A uint8
	B uint16
}

type mixed struct {
	W uint32
	H uint16
	B uint8
}

func newBus() *mmiotest.Bus {
	return mmiotest.New(base, 0x400)
}

func st(width int, addr uintptr, v uint32) mmiotest.Access {
	return mmiotest.Access{Op: mmiotest.OpStore, Width: width, Addr: addr, Value: v}
}

func ld(width int, addr uintptr, v uint32) mmiotest.Access {
	return mmiotest.Access{Op: mmiotest.OpLoad, Width: width, Addr: addr, Value: v}
}

func checkTrace(t *testing.T, bus *mmiotest.Bus, want ...mmiotest.Access) {
	t.Helper()
	if got := bus.Trace(); !slices.Equal(got, want) {
		t.Fatalf("trace:\n got %v\nwant %v", got, want)
	}
}

// =============================================================================
// Pack / Unpack
// =============================================================================

func roundTrip[T comparable](t *testing.T, v T) {
	t.Helper()

	c := mmio.Pack(v)
	if got := c.Unpack(); got != v {
		t.Fatalf("Unpack(Pack(%v)): got %v", v, got)
	}

	bus := newBus()
	c.Store(bus, base)
	if got := mmio.Read[T](bus, base); got != v {
		t.Fatalf("Read after Store(%v): got %v", v, got)
	}
	want := uint64(mmio.LayoutFor[T]().Transfers())
	if bus.Stores() != want || bus.Loads() != want {
		t.Fatalf("%T transfers: got %d stores %d loads, want %d each", v, bus.Stores(), bus.Loads(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, true)
	roundTrip(t, uint8(0xA5))
	roundTrip(t, int8(-3))
	roundTrip(t, uint16(0xBEEF))
	roundTrip(t, uint32(0xDEADBEEF))
	roundTrip(t, int64(-0x0123456789ABCDEF))
	roundTrip(t, 3.5)
	roundTrip(t, complex64(1+2i))
	roundTrip(t, [3]byte{1, 2, 3})
	roundTrip(t, [5]byte{1, 2, 3, 4, 5})
	roundTrip(t, [3]uint16{0x1111, 0x2222, 0x3333})
	roundTrip(t, [7]byte{1, 2, 3, 4, 5, 6, 7})
	roundTrip(t, [9]byte{9, 8, 7, 6, 5, 4, 3, 2, 1})
	roundTrip(t, pair{A: 0x1234, B: 0x5678})
	roundTrip(t, mixed{W: 0xCAFEBABE, H: 0xF00D, B: 0x42})
	roundTrip(t, struct{}{})
}

func TestPackImageMatchesValue(t *testing.T) {
	c := mmio.Pack(uint32(0x04030201))
	if got := c.Image(); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("Image: got % x, want 01 02 03 04", got)
	}
}

func TestConstruct(t *testing.T) {
	c := mmio.Construct(func(p *pair) {
		p.A = 1
		p.B = 2
	})
	if got := c.Unpack(); got != (pair{A: 1, B: 2}) {
		t.Fatalf("Construct: got %+v, want {1 2}", got)
	}
}

func TestUnpackIdempotent(t *testing.T) {
	c := mmio.Pack(mixed{W: 1, H: 2, B: 3})
	a, b := c.Unpack(), c.Unpack()
	if a != b {
		t.Fatalf("Unpack twice: %+v != %+v", a, b)
	}
}

func TestBlocks(t *testing.T) {
	c := mmio.Pack([7]byte{1, 2, 3, 4, 5, 6, 7})
	if got := c.Words(); !slices.Equal(got, []uint32{0x04030201}) {
		t.Fatalf("Words: got %#x", got)
	}
	if got := c.Shorts(); !slices.Equal(got, []uint16{0x0605}) {
		t.Fatalf("Shorts: got %#x", got)
	}
	if got := c.Bytes(); !slices.Equal(got, []uint8{7}) {
		t.Fatalf("Bytes: got %#x", got)
	}

	w := mmio.Pack(uint32(7))
	if len(w.Shorts()) != 0 || len(w.Bytes()) != 0 {
		t.Fatalf("uint32 blocks: got %d shorts %d bytes, want none", len(w.Shorts()), len(w.Bytes()))
	}
}

// =============================================================================
// Store / Load
// =============================================================================

// TestStoreWidthFidelity: a 6-byte value is one word then one half-word.
func TestStoreWidthFidelity(t *testing.T) {
	bus := newBus()
	c := mmio.Pack([3]uint16{0x1111, 0x2222, 0x3333})
	c.Store(bus, base)

	checkTrace(t, bus,
		st(32, base, 0x22221111),
		st(16, base+4, 0x3333),
	)
}

// TestStoreOrder: a 7-byte value is word, half-word, byte.
func TestStoreOrder(t *testing.T) {
	bus := newBus()
	c := mmio.Pack([7]byte{1, 2, 3, 4, 5, 6, 7})
	c.Store(bus, base)

	checkTrace(t, bus,
		st(32, base, 0x04030201),
		st(16, base+4, 0x0605),
		st(8, base+6, 0x07),
	)
	if got := bus.Peek(base, 7); !bytes.Equal(got, []byte{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("memory: got % x", got)
	}
}

// TestLoadOrder: loads visit the same units in the same order.
func TestLoadOrder(t *testing.T) {
	bus := newBus()
	bus.Poke(base, []byte{1, 2, 3, 4, 5, 6, 7})

	c := mmio.LoadContainer[[7]byte](bus, base)
	checkTrace(t, bus,
		ld(32, base, 0x04030201),
		ld(16, base+4, 0x0605),
		ld(8, base+6, 0x07),
	)
	if got := c.Unpack(); got != [7]byte{1, 2, 3, 4, 5, 6, 7} {
		t.Fatalf("Unpack: got %v", got)
	}
}

func TestStoreWordsInIndexOrder(t *testing.T) {
	bus := newBus()
	c := mmio.Pack([3]uint32{0xA, 0xB, 0xC})
	c.Store(bus, base+0x10)

	checkTrace(t, bus,
		st(32, base+0x10, 0xA),
		st(32, base+0x14, 0xB),
		st(32, base+0x18, 0xC),
	)
}

// TestElideAbsentClasses: a 4-byte value issues no half-word or byte access.
func TestElideAbsentClasses(t *testing.T) {
	bus := newBus()
	mmio.Write(bus, base, uint32(0x11223344))
	_ = mmio.Read[uint32](bus, base)

	checkTrace(t, bus,
		st(32, base, 0x11223344),
		ld(32, base, 0x11223344),
	)
}

func TestZeroSizeNoAccess(t *testing.T) {
	bus := newBus()
	c := mmio.Pack(struct{}{})
	c.Store(bus, base)
	c.Load(bus, base)

	if bus.Loads() != 0 || bus.Stores() != 0 {
		t.Fatalf("zero-size transfers: got %d loads %d stores, want 0", bus.Loads(), bus.Stores())
	}
}

func TestLoadIdempotent(t *testing.T) {
	bus := newBus()
	bus.Poke(base, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04})

	var a, b mmio.Container[mixed]
	a.Load(bus, base)
	b.Load(bus, base)
	if a.Unpack() != b.Unpack() {
		t.Fatalf("two loads differ: %+v != %+v", a.Unpack(), b.Unpack())
	}
	if !bytes.Equal(a.Image(), b.Image()) {
		t.Fatalf("two load images differ: % x != % x", a.Image(), b.Image())
	}
}

// TestPaddingCarried checks padding bytes travel verbatim through an
// addressable container.
func TestPaddingCarried(t *testing.T) {
	bus := newBus()
	bus.Poke(base, []byte{0x11, 0xEE, 0x22, 0x33})

	var c mmio.Container[padded]
	c.Load(bus, base)
	if c.Image()[1] != 0xEE {
		t.Fatalf("padding after Load: got %#x, want 0xee", c.Image()[1])
	}

	c.Store(bus, base+8)
	if got := bus.Peek(base+8, 4); !bytes.Equal(got, []byte{0x11, 0xEE, 0x22, 0x33}) {
		t.Fatalf("padding after Store: got % x", got)
	}
}

// TestEndToEnd is the two half-word fields example: {0x1234, 0x5678} is a
// single 32-bit store of 0x56781234.
func TestEndToEnd(t *testing.T) {
	bus := newBus()
	c := mmio.Pack(pair{A: 0x1234, B: 0x5678})
	c.Store(bus, base)
	checkTrace(t, bus, st(32, base, 0x56781234))

	bus.Poke32(base+4, 0x56781234)
	bus.ResetTrace()
	got := mmio.LoadContainer[pair](bus, base+4)
	checkTrace(t, bus, ld(32, base+4, 0x56781234))
	if v := got.Unpack(); v != (pair{A: 0x1234, B: 0x5678}) {
		t.Fatalf("Unpack: got %+v, want {A:0x1234 B:0x5678}", v)
	}
}
