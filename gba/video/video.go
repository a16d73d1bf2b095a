// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package video defines the Game Boy Advance display registers.
//
// Each register is bound to its hardware address and transferred at its
// native width: DISPCNT, DISPSTAT and VCOUNT as 16-bit accesses, the
// undocumented GREENSWAP as an 8-bit access.
//
//	regs := video.New(mmio.Direct{})
//	regs.DISPCNT.Set(video.DispCnt(0).WithMode(video.Mode3).WithBG(2, true))
//	for {
//	    regs.WaitVBlank()
//	    draw()
//	}
package video

import "code.hybscloud.com/mmio"

// Register addresses.
const (
	AddrDISPCNT   uintptr = 0x0400_0000
	AddrGREENSWAP uintptr = 0x0400_0002
	AddrDISPSTAT  uintptr = 0x0400_0004
	AddrVCOUNT    uintptr = 0x0400_0006
)

// Scanline timing. Lines 0-159 are drawn; V-Blank covers lines 160-227.
const (
	ScreenHeight = 160
	Scanlines    = 228
)

// Registers is the display register block.
type Registers struct {
	DISPCNT   mmio.Register[DispCnt]
	GREENSWAP mmio.Register[bool] // undocumented
	DISPSTAT  mmio.Register[DispStat]
	VCOUNT    mmio.ReadOnly[uint16]
}

// New binds the display registers on bus.
func New(bus mmio.Bus) Registers {
	return Registers{
		DISPCNT:   mmio.NewRegister[DispCnt](bus, AddrDISPCNT),
		GREENSWAP: mmio.NewRegister[bool](bus, AddrGREENSWAP),
		DISPSTAT:  mmio.NewRegister[DispStat](bus, AddrDISPSTAT),
		VCOUNT:    mmio.NewReadOnly[uint16](bus, AddrVCOUNT),
	}
}

// InVBlank reports whether the current scanline is in vertical blank.
func (r Registers) InVBlank() bool {
	return r.VCOUNT.Get() >= ScreenHeight
}

// WaitVBlank spins until the start of the next vertical blank. If the
// display is already in V-Blank, it first waits for drawing to resume.
//
// A scanline lasts about 73µs, so the wait never sleeps.
func (r Registers) WaitVBlank() {
	r.VCOUNT.Wait(func(v uint16) bool { return v < ScreenHeight })
	r.VCOUNT.Wait(func(v uint16) bool { return v >= ScreenHeight })
}

// WaitVCount spins until VCOUNT reads line.
func (r Registers) WaitVCount(line uint16) {
	r.VCOUNT.Wait(func(v uint16) bool { return v == line })
}
