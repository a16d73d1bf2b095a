// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mmiotest provides a simulated register file for testing code
// built on package mmio.
//
// The simulated [Bus] is little-endian, records every access in order, and
// rejects accesses that are out of range or not naturally aligned. Device
// behaviour is modelled with [Bus.Poke] (hardware-side writes that are not
// traced) and [Bus.OnStore] hooks.
//
//	bus := mmiotest.New(0x0400_0000, 0x400)
//	mmio.Write(bus, 0x0400_0000, [3]uint16{1, 2, 3})
//	bus.Trace() // [store32 0x4000000 = 0x20001 store16 0x4000004 = 0x3]
package mmiotest

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/mmio"
	"code.hybscloud.com/spin"
)

// Op is the direction of an access.
type Op uint8

// Access directions.
const (
	OpLoad Op = iota
	OpStore
)

func (op Op) String() string {
	if op == OpStore {
		return "store"
	}
	return "load"
}

// Access is one recorded bus access.
type Access struct {
	Op    Op
	Width int // bits: 8, 16 or 32
	Addr  uintptr
	Value uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%s%d %#x = %#x", a.Op, a.Width, a.Addr, a.Value)
}

// Bus is a simulated little-endian register file implementing [mmio.Bus].
//
// Bus is safe for concurrent use so a test may run a device goroutine that
// pokes registers while the code under test polls them. Individual
// accesses are atomic with respect to each other; multi-unit transfers are
// not, exactly as on hardware.
type Bus struct {
	mu      sync.Mutex
	base    uintptr
	mem     []byte
	trace   []Access
	limit   int
	onStore []func(a Access, old uint32)
	logger  *slog.Logger

	loads  atomix.Uint64
	stores atomix.Uint64
}

var _ mmio.Bus = (*Bus)(nil)

// DefaultTraceLimit is the number of accesses a new Bus records before it
// stops appending to the trace. Counters keep running past the limit.
const DefaultTraceLimit = 1 << 16

// New creates a zeroed register file covering [base, base+size).
//
// Panics if size is zero.
func New(base, size uintptr) *Bus {
	if size == 0 {
		panic("mmiotest: size must be > 0")
	}
	return &Bus{
		base:   base,
		mem:    make([]byte, size),
		limit:  DefaultTraceLimit,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Logger sets the logger that receives one Debug record per traced access.
func (b *Bus) Logger(l *slog.Logger) *Bus {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = l
	return b
}

// TraceLimit sets how many accesses are recorded. Accesses past the limit
// are still counted and logged.
func (b *Bus) TraceLimit(n int) *Bus {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit = n
	return b
}

// OnStore registers fn to run after every traced store. old holds the
// unit's contents before the store.
//
// fn runs without the bus lock held and may call Poke or Peek to model
// device side effects. A write-one-to-clear flag is restored with
// old &^ a.Value.
func (b *Bus) OnStore(fn func(a Access, old uint32)) *Bus {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onStore = append(b.onStore, fn)
	return b
}

// Base returns the first address of the register file.
func (b *Bus) Base() uintptr {
	return b.base
}

// Size returns the size of the register file in bytes.
func (b *Bus) Size() uintptr {
	return uintptr(len(b.mem))
}

// Load32 performs a traced 32-bit load.
func (b *Bus) Load32(addr uintptr) uint32 {
	return b.load(addr, 32)
}

// Load16 performs a traced 16-bit load.
func (b *Bus) Load16(addr uintptr) uint16 {
	return uint16(b.load(addr, 16))
}

// Load8 performs a traced 8-bit load.
func (b *Bus) Load8(addr uintptr) uint8 {
	return uint8(b.load(addr, 8))
}

// Store32 performs a traced 32-bit store.
func (b *Bus) Store32(addr uintptr, v uint32) {
	b.store(addr, 32, v)
}

// Store16 performs a traced 16-bit store.
func (b *Bus) Store16(addr uintptr, v uint16) {
	b.store(addr, 16, uint32(v))
}

// Store8 performs a traced 8-bit store.
func (b *Bus) Store8(addr uintptr, v uint8) {
	b.store(addr, 8, uint32(v))
}

// Poke writes p at addr from the device side. Pokes are not traced,
// counted or hooked.
func (b *Bus) Poke(addr uintptr, p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.span(addr, uintptr(len(p)), 1), p)
}

// Poke16 writes a little-endian half-word from the device side.
func (b *Bus) Poke16(addr uintptr, v uint16) {
	b.Poke(addr, binary.LittleEndian.AppendUint16(nil, v))
}

// Poke32 writes a little-endian word from the device side.
func (b *Bus) Poke32(addr uintptr, v uint32) {
	b.Poke(addr, binary.LittleEndian.AppendUint32(nil, v))
}

// Peek returns a copy of n bytes at addr without tracing.
func (b *Bus) Peek(addr, n uintptr) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.span(addr, n, 1))
}

// Peek16 reads a little-endian half-word without tracing.
func (b *Bus) Peek16(addr uintptr) uint16 {
	return binary.LittleEndian.Uint16(b.Peek(addr, 2))
}

// Peek32 reads a little-endian word without tracing.
func (b *Bus) Peek32(addr uintptr) uint32 {
	return binary.LittleEndian.Uint32(b.Peek(addr, 4))
}

// Trace returns a copy of the recorded accesses, oldest first.
func (b *Bus) Trace() []Access {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.trace)
}

// ResetTrace discards the recorded accesses and zeroes the counters.
func (b *Bus) ResetTrace() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trace = b.trace[:0]
	b.loads.Store(0)
	b.stores.Store(0)
}

// Loads returns the number of traced loads since the last ResetTrace.
func (b *Bus) Loads() uint64 {
	return b.loads.Load()
}

// Stores returns the number of traced stores since the last ResetTrace.
func (b *Bus) Stores() uint64 {
	return b.stores.Load()
}

// WaitLoads spins until at least n loads have been counted. Device
// goroutines use it to step a register only after the code under test has
// observed the previous value.
func (b *Bus) WaitLoads(n uint64) {
	sw := spin.Wait{}
	for b.loads.Load() < n {
		sw.Once()
	}
}

func (b *Bus) load(addr uintptr, width int) uint32 {
	a, _, logger, _ := b.access(OpLoad, addr, width, 0)
	b.loads.Add(1)
	logger.Debug("mmio access", "access", a)
	return a.Value
}

func (b *Bus) store(addr uintptr, width int, v uint32) {
	a, old, logger, hooks := b.access(OpStore, addr, width, v)
	b.stores.Add(1)
	logger.Debug("mmio access", "access", a)
	for _, fn := range hooks {
		fn(a, old)
	}
}

// access performs one traced access under the lock and returns what the
// caller needs once the lock is released. old is the unit's contents
// before the access.
func (b *Bus) access(op Op, addr uintptr, width int, v uint32) (a Access, old uint32, logger *slog.Logger, hooks []func(Access, uint32)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := uintptr(width / 8)
	p := b.span(addr, n, n)
	switch width {
	case 32:
		old = binary.LittleEndian.Uint32(p)
	case 16:
		old = uint32(binary.LittleEndian.Uint16(p))
	default:
		old = uint32(p[0])
	}
	switch {
	case op == OpLoad:
		v = old
	case width == 32:
		binary.LittleEndian.PutUint32(p, v)
	case width == 16:
		binary.LittleEndian.PutUint16(p, uint16(v))
	default:
		p[0] = uint8(v)
	}
	return b.record(op, width, addr, v), old, b.logger, b.onStore
}

// record appends to the trace. Caller holds b.mu.
func (b *Bus) record(op Op, width int, addr uintptr, v uint32) Access {
	a := Access{Op: op, Width: width, Addr: addr, Value: v}
	if len(b.trace) < b.limit {
		b.trace = append(b.trace, a)
	}
	return a
}

// span returns the backing bytes for [addr, addr+n). Caller holds b.mu.
// Panics on out-of-range or misaligned access, which on hardware would be
// a bus fault.
func (b *Bus) span(addr, n, align uintptr) []byte {
	if addr < b.base || addr-b.base+n > uintptr(len(b.mem)) {
		panic(fmt.Sprintf("mmiotest: access %#x+%d outside [%#x, %#x)",
			addr, n, b.base, b.base+uintptr(len(b.mem))))
	}
	if addr%align != 0 {
		panic(fmt.Sprintf("mmiotest: misaligned %d-byte access at %#x", n, addr))
	}
	off := addr - b.base
	return b.mem[off : off+n]
}
