// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import "code.hybscloud.com/mmio/internal/asm"

// Bus performs width-exact accesses to a register address space.
//
// Every method is exactly one access of the stated width. Implementations
// must not split, merge, cache or reorder accesses: hardware registers
// may latch on the first or last sub-write of a multi-part transfer.
//
// A Bus provides no synchronization. Callers that share a register with
// an interrupt handler or another goroutine must serialize access
// themselves, for example by masking interrupts around multi-unit
// transfers.
type Bus interface {
	Load32(addr uintptr) uint32
	Load16(addr uintptr) uint16
	Load8(addr uintptr) uint8
	Store32(addr uintptr, v uint32)
	Store16(addr uintptr, v uint16)
	Store8(addr uintptr, v uint8)
}

// Direct is the Bus over real memory. Addresses are physical register
// addresses on bare-metal targets and must be naturally aligned.
type Direct struct{}

var _ Bus = Direct{}

// Load32 performs one volatile 32-bit load.
func (Direct) Load32(addr uintptr) uint32 { return asm.Load32(addr) }

// Load16 performs one volatile 16-bit load.
func (Direct) Load16(addr uintptr) uint16 { return asm.Load16(addr) }

// Load8 performs one volatile 8-bit load.
func (Direct) Load8(addr uintptr) uint8 { return asm.Load8(addr) }

// Store32 performs one volatile 32-bit store.
func (Direct) Store32(addr uintptr, v uint32) { asm.Store32(addr, v) }

// Store16 performs one volatile 16-bit store.
func (Direct) Store16(addr uintptr, v uint16) { asm.Store16(addr, v) }

// Store8 performs one volatile 8-bit store.
func (Direct) Store8(addr uintptr, v uint8) { asm.Store8(addr, v) }
