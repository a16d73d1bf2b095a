// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package video

// DispCnt is the display control register value.
//
//	bits 0-2   background mode (0-5)
//	bit  3     CGB mode (read-only, set by BIOS)
//	bit  4     bitmap frame select
//	bit  5     OAM access during H-Blank
//	bit  6     one-dimensional OBJ tile mapping
//	bit  7     forced blank
//	bits 8-11  BG0-BG3 enable
//	bit  12    OBJ enable
//	bits 13-14 window 0/1 enable
//	bit  15    OBJ window enable
type DispCnt uint16

// Display control flags.
const (
	DispCntCGB DispCnt = 1 << (iota + 3)
	DispCntPage
	DispCntHBlankOAM
	DispCntOBJ1D
	DispCntForcedBlank
	DispCntBG0
	DispCntBG1
	DispCntBG2
	DispCntBG3
	DispCntOBJ
	DispCntWin0
	DispCntWin1
	DispCntOBJWin
)

const dispCntMode DispCnt = 0x0007

// Background modes.
const (
	Mode0 uint8 = iota // four tiled backgrounds
	Mode1              // two tiled, one affine
	Mode2              // two affine
	Mode3              // 240x160 15-bit bitmap
	Mode4              // 240x160 8-bit paletted bitmap, two pages
	Mode5              // 160x128 15-bit bitmap, two pages
)

// Mode returns the background mode.
func (d DispCnt) Mode() uint8 {
	return uint8(d & dispCntMode)
}

// WithMode returns d with the background mode replaced. Only the low three
// bits of m are used.
func (d DispCnt) WithMode(m uint8) DispCnt {
	return d&^dispCntMode | DispCnt(m)&dispCntMode
}

// Has reports whether every bit of f is set.
func (d DispCnt) Has(f DispCnt) bool {
	return d&f == f
}

// With returns d with f set or cleared.
func (d DispCnt) With(f DispCnt, on bool) DispCnt {
	if on {
		return d | f
	}
	return d &^ f
}

// BG reports whether background n (0-3) is enabled.
func (d DispCnt) BG(n int) bool {
	return d.Has(DispCntBG0 << n)
}

// WithBG returns d with background n (0-3) enabled or disabled.
func (d DispCnt) WithBG(n int, on bool) DispCnt {
	return d.With(DispCntBG0<<n, on)
}

// Window reports whether window n (0-1) is enabled.
func (d DispCnt) Window(n int) bool {
	return d.Has(DispCntWin0 << n)
}

// WithWindow returns d with window n (0-1) enabled or disabled.
func (d DispCnt) WithWindow(n int, on bool) DispCnt {
	return d.With(DispCntWin0<<n, on)
}
