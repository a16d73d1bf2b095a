// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a register poll found its condition unmet.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// poll again later rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	for {
//	    stat, err := dispstat.Poll(video.DispStat.VBlank)
//	    if err == nil {
//	        handle(stat)
//	        break
//	    }
//	    if !mmio.IsWouldBlock(err) {
//	        return err
//	    }
//	    doOtherWork()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrUnsupportedType indicates a register value type that cannot be
// transferred as a raw byte image: it holds pointers or has no fixed
// layout.
var ErrUnsupportedType = errors.New("mmio: unsupported register type")

// ErrMisaligned indicates a register address that is not aligned for the
// widest unit of its layout.
var ErrMisaligned = errors.New("mmio: misaligned register address")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}
