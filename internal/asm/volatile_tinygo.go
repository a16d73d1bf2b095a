// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build tinygo

package asm

import (
	"runtime/volatile"
	"unsafe"
)

// Load8 reads one byte at addr with a single 8-bit load.
func Load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

// Load16 reads a half-word at addr with a single 16-bit load.
func Load16(addr uintptr) uint16 {
	return volatile.LoadUint16((*uint16)(unsafe.Pointer(addr)))
}

// Load32 reads a word at addr with a single 32-bit load.
func Load32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

// Store8 writes v at addr with a single 8-bit store.
func Store8(addr uintptr, v uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), v)
}

// Store16 writes v at addr with a single 16-bit store.
func Store16(addr uintptr, v uint16) {
	volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), v)
}

// Store32 writes v at addr with a single 32-bit store.
func Store32(addr uintptr, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}
