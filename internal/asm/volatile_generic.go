// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !tinygo && !amd64 && !arm64 && !arm

package asm

import "unsafe"

// Fallback for architectures without an assembly leaf. go:noinline keeps
// every call an opaque access of the declared width.

// Load8 reads one byte at addr with a single 8-bit load.
//
//go:noinline
func Load8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

// Load16 reads a half-word at addr with a single 16-bit load.
//
//go:noinline
func Load16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

// Load32 reads a word at addr with a single 32-bit load.
//
//go:noinline
func Load32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

// Store8 writes v at addr with a single 8-bit store.
//
//go:noinline
func Store8(addr uintptr, v uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = v
}

// Store16 writes v at addr with a single 16-bit store.
//
//go:noinline
func Store16(addr uintptr, v uint16) {
	*(*uint16)(unsafe.Pointer(addr)) = v
}

// Store32 writes v at addr with a single 32-bit store.
//
//go:noinline
func Store32(addr uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(addr)) = v
}
