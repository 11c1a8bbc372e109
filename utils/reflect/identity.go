/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"reflect"
)

// SameIdentity reports whether a and b refer to the same object.
//
// Identity policy:
//   - nil matches only nil.
//   - values of different dynamic types never match.
//   - ptr/map/chan/func/slice/unsafe.Pointer compare by address
//     (slices additionally by length, so s and s[:0] differ).
//   - other comparable values compare with ==.
//   - other incomparable values (e.g. structs holding slices) never match.
//
// SameIdentity never panics.
func SameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	switch ta.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()

	case reflect.Func:
		// Funcs are only equal to nil in Go; identity is the code pointer.
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()

	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()

	default:
		if !ta.Comparable() {
			return false
		}
		// Comparable() can still hold interface fields with incomparable
		// dynamic values; == would panic on those.
		return safeEqual(a, b)
	}
}

// safeEqual compares a and b with ==, reporting false instead of panicking.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
