// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides width-exact volatile loads and stores.
//
// Each function performs exactly one memory access of its stated width at
// the given address. The access is never split, merged, reordered against
// other calls, or elided: on amd64, arm64 and arm the functions are
// assembly leaves the compiler cannot see through, under TinyGo they map
// onto runtime/volatile, and on other architectures they fall back to
// non-inlined Go dereferences.
//
// Address contract:
// addr must be naturally aligned for the access width and must stay valid
// for the duration of the call. Passing the address of a Go stack variable
// is unsound because stacks move; use hardware addresses, globals or pinned
// heap memory.
package asm
