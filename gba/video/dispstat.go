// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package video

// DispStat is the display status register value.
//
//	bit  0     in V-Blank (read-only)
//	bit  1     in H-Blank (read-only)
//	bit  2     V-Count match (read-only)
//	bit  3     V-Blank IRQ enable
//	bit  4     H-Blank IRQ enable
//	bit  5     V-Count match IRQ enable
//	bits 8-15  V-Count setting
type DispStat uint16

// Display status flags.
const (
	DispStatVBlank DispStat = 1 << iota
	DispStatHBlank
	DispStatVCountMatch
	DispStatVBlankIRQ
	DispStatHBlankIRQ
	DispStatVCountIRQ
)

// VBlank reports whether the display is in vertical blank.
func (s DispStat) VBlank() bool {
	return s.Has(DispStatVBlank)
}

// HBlank reports whether the display is in horizontal blank.
func (s DispStat) HBlank() bool {
	return s.Has(DispStatHBlank)
}

// VCountMatch reports whether VCOUNT equals the V-Count setting.
func (s DispStat) VCountMatch() bool {
	return s.Has(DispStatVCountMatch)
}

// VCountSetting returns the scanline compared against VCOUNT.
func (s DispStat) VCountSetting() uint8 {
	return uint8(s >> 8)
}

// WithVCountSetting returns s with the V-Count setting replaced.
func (s DispStat) WithVCountSetting(line uint8) DispStat {
	return s&0x00FF | DispStat(line)<<8
}

// Has reports whether every bit of f is set.
func (s DispStat) Has(f DispStat) bool {
	return s&f == f
}

// With returns s with f set or cleared.
func (s DispStat) With(f DispStat, on bool) DispStat {
	if on {
		return s | f
	}
	return s &^ f
}
