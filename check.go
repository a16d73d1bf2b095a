// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mmio

import (
	"fmt"
	"reflect"
)

// Check reports whether T can be moved through a [Container].
//
// Accepted: booleans, sized integers, floats, complex numbers, and
// arrays and structs built from them. Rejected: anything holding a pointer
// or header (pointers, strings, slices, maps, channels, funcs, interfaces),
// and int, uint and uintptr, whose size differs between targets.
// The returned error wraps [ErrUnsupportedType].
func Check[T any]() error {
	t := reflect.TypeFor[T]()
	if path, ok := plain(t, t.String()); !ok {
		return fmt.Errorf("%w: %s (at %s)", ErrUnsupportedType, t, path)
	}
	return nil
}

// CheckAddr reports whether addr is aligned for T's layout.
// The returned error wraps [ErrMisaligned].
func CheckAddr[T any](addr uintptr) error {
	if a := LayoutFor[T]().Align(); addr%a != 0 {
		return fmt.Errorf("%w: %#x for %s needs %d-byte alignment",
			ErrMisaligned, addr, reflect.TypeFor[T](), a)
	}
	return nil
}

func plain(t reflect.Type, path string) (string, bool) {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "", true
	case reflect.Array:
		return plain(t.Elem(), path+"[]")
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if p, ok := plain(f.Type, path+"."+f.Name); !ok {
				return p, false
			}
		}
		return "", true
	default:
		return path, false
	}
}
