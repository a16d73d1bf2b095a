// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mmiotest

// RaceEnabled is true when the race detector is active.
// Tests that sequence a device goroutine on [Bus.Loads] or [Bus.Stores]
// skip under the race detector: the atomix counters appear as plain
// memory accesses to it.
const RaceEnabled = true
