// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mmio provides typed, width-exact access to memory-mapped
// hardware registers.
//
// On many devices the width of a register access is part of its meaning:
// writing a 32-bit control register as four byte stores may be ignored or
// may corrupt a neighbouring register. The package moves arbitrary
// fixed-layout values to and from registers using the largest natural
// units that exactly cover the value, in a fixed order.
//
// # Quick Start
//
// Typed registers (recommended):
//
//	dispcnt := mmio.NewRegister[video.DispCnt](mmio.Direct{}, 0x0400_0000)
//	dispcnt.Set(video.DispCnt(0).WithMode(3).WithBG(2, true))
//	mode := dispcnt.Get().Mode()
//
// One-shot access:
//
//	mmio.Write(bus, addr, Pair{A: 0x1234, B: 0x5678})
//	p := mmio.Read[Pair](bus, addr)
//
// # Layout
//
// A value of n bytes is split into n/4 words, then at most one half-word,
// then at most one byte:
//
//	size  words  half-words  bytes  accesses
//	   1      0           0      1  8
//	   2      0           1      0  16
//	   4      1           0      0  32
//	   6      1           1      0  32, 16
//	   7      1           1      1  32, 16, 8
//	  12      3           0      0  32, 32, 32
//
// Words occupy the lowest offsets of the value's byte image. Stores and
// loads always run words, then the half-word, then the byte, each unit
// exactly once.
//
// # Containers
//
// [Container] is the staging buffer behind every transfer:
//
//	c := mmio.Pack(v)              // byte image of v
//	c.Store(bus, addr)             // words, half-word, byte
//	c = mmio.LoadContainer[T](bus, addr)
//	v = c.Unpack()                 // byte image back to T
//
// Pack and Unpack copy the byte image verbatim, padding included; no field
// is interpreted.
//
// # Buses
//
// [Direct] performs volatile accesses on real memory. Tests and host-side
// tools use the simulated register file in package mmiotest, which records
// every access:
//
//	bus := mmiotest.New(0x0400_0000, 0x400)
//	mmio.Write(bus, 0x0400_0000, uint32(1))
//	bus.Trace() // [store32 0x4000000 = 0x1]
//
// # Value Types
//
// T must have a fixed layout and hold no pointers. [NewRegister] enforces
// this with [Check] and rejects misaligned addresses with [CheckAddr].
// Read and Write skip these checks.
//
// # Thread Safety
//
// Nothing in this package synchronizes. A register shared with an
// interrupt handler or another goroutine must be serialized by the caller,
// for example by masking interrupts around multi-unit transfers.
//
// # Polling
//
// [Register.Poll] reads once and returns [ErrWouldBlock] when a condition
// is unmet; [Register.Wait] spins until it holds:
//
//	stat := dispstat.Wait(video.DispStat.VBlank)
package mmio
