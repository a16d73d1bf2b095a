// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import "code.hybscloud.com/spin"

// Read loads a T from the register at addr: one [LoadContainer] followed
// by [Container.Unpack].
//
// The result is a Go value copy, so padding bytes read from the register
// are not kept. Use a [Container] when padding or reserved bytes matter.
//
// Read performs no type or alignment checks; use [Register] for checked
// access.
func Read[T any](bus Bus, addr uintptr) T {
	c := LoadContainer[T](bus, addr)
	return c.Unpack()
}

// Write stores v into the register at addr: one [Pack] followed by
// [Container.Store].
//
// Padding bytes of v are whatever the Go value holds, usually zero.
// Use [Register.Update] or a loaded [Container] to keep a register's
// padding or reserved bytes.
//
// Write performs no type or alignment checks; use [Register] for checked
// access.
func Write[T any](bus Bus, addr uintptr, v T) {
	c := Pack(v)
	c.Store(bus, addr)
}

// Register is a typed read-write register at a fixed address.
//
// Register is a value type; copies refer to the same hardware register.
// It holds no cached state: every Get and Set reaches the bus.
//
// Example:
//
//	dispcnt := mmio.NewRegister[video.DispCnt](mmio.Direct{}, video.AddrDISPCNT)
//	dispcnt.Set(video.DispCnt(0).WithMode(3).WithBG(2, true))
type Register[T any] struct {
	bus  Bus
	addr uintptr
}

// NewRegister binds T to the register at addr on bus.
//
// Panics if T fails [Check] or addr fails [CheckAddr]. Both are
// programming errors in a register definition.
func NewRegister[T any](bus Bus, addr uintptr) Register[T] {
	if err := Check[T](); err != nil {
		panic(err)
	}
	if err := CheckAddr[T](addr); err != nil {
		panic(err)
	}
	return Register[T]{bus: bus, addr: addr}
}

// Addr returns the register address.
func (r Register[T]) Addr() uintptr {
	return r.addr
}

// Get reads the current register value.
func (r Register[T]) Get() T {
	return Read[T](r.bus, r.addr)
}

// Set writes v to the register.
func (r Register[T]) Set(v T) {
	Write(r.bus, r.addr, v)
}

// Reset writes the zero value of T to the register.
func (r Register[T]) Reset() {
	var zero T
	r.Set(zero)
}

// Update performs a read-modify-write: fn edits the current value in
// place and the result is written back. Bytes fn does not touch,
// padding included, are written back as read.
//
// The read and the write are separate transfers. A device or interrupt
// handler changing the register in between is overwritten.
func (r Register[T]) Update(fn func(*T)) {
	var c Container[T]
	c.Load(r.bus, r.addr)
	fn(&c.v)
	c.Store(r.bus, r.addr)
}

// Poll reads the register once and reports whether cond holds.
// Returns (value, ErrWouldBlock) when it does not.
func (r Register[T]) Poll(cond func(T) bool) (T, error) {
	return poll(r.Get, cond)
}

// Wait spins until cond holds for a read value and returns that value.
//
// Wait has no timeout. Use it only for conditions the hardware is known
// to reach, such as a scanline counter wrapping.
func (r Register[T]) Wait(cond func(T) bool) T {
	return wait(r.Get, cond)
}

// ReadOnly is a typed register that software must not write, such as a
// status or counter register.
type ReadOnly[T any] struct {
	r Register[T]
}

// NewReadOnly binds T to the read-only register at addr on bus.
// Panics under the same conditions as [NewRegister].
func NewReadOnly[T any](bus Bus, addr uintptr) ReadOnly[T] {
	return ReadOnly[T]{r: NewRegister[T](bus, addr)}
}

// Addr returns the register address.
func (r ReadOnly[T]) Addr() uintptr {
	return r.r.addr
}

// Get reads the current register value.
func (r ReadOnly[T]) Get() T {
	return r.r.Get()
}

// Poll reads the register once and reports whether cond holds.
// Returns (value, ErrWouldBlock) when it does not.
func (r ReadOnly[T]) Poll(cond func(T) bool) (T, error) {
	return r.r.Poll(cond)
}

// Wait spins until cond holds for a read value and returns that value.
func (r ReadOnly[T]) Wait(cond func(T) bool) T {
	return r.r.Wait(cond)
}

func poll[T any](get func() T, cond func(T) bool) (T, error) {
	v := get()
	if !cond(v) {
		return v, ErrWouldBlock
	}
	return v, nil
}

func wait[T any](get func() T, cond func(T) bool) T {
	sw := spin.Wait{}
	for {
		v, err := poll(get, cond)
		if err == nil {
			return v
		}
		sw.Once()
	}
}
