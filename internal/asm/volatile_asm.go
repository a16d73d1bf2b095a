// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !tinygo && (amd64 || arm64 || arm)

package asm

// Load8 reads one byte at addr with a single 8-bit load.
//
//go:nosplit
func Load8(addr uintptr) uint8

// Load16 reads a half-word at addr with a single 16-bit load.
//
//go:nosplit
func Load16(addr uintptr) uint16

// Load32 reads a word at addr with a single 32-bit load.
//
//go:nosplit
func Load32(addr uintptr) uint32

// Store8 writes v at addr with a single 8-bit store.
//
//go:nosplit
func Store8(addr uintptr, v uint8)

// Store16 writes v at addr with a single 16-bit store.
//
//go:nosplit
func Store16(addr uintptr, v uint16)

// Store32 writes v at addr with a single 32-bit store.
//
//go:nosplit
func Store32(addr uintptr, v uint32)
