// Copyright 2026 The listdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package listdiff

import (
	"fmt"
	"reflect"

	"mrtz.io/listdiff/internal/classify"
	"mrtz.io/listdiff/internal/ledger"
)

// Mode selects how a correlated pair of items is tested for changes.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode
type Mode int

const (
	// Equality reports an update when a correlated pair is not content-equal
	// under [Diffable.Equal].
	Equality Mode = iota

	// Identity reports an update when a correlated pair is not the same
	// underlying object. Identity requires pointer items; requesting it for
	// anything else is a contract violation and panics.
	Identity
)

// Diffable is the capability every diffed item must provide: a stable
// identifier usable as a map key, and a content equality test.
//
// Two items with the same identifier represent the same logical row even if
// their content differs; two items with different identifiers are unrelated
// even if their content is equal.
type Diffable[K comparable] interface {
	// DiffID returns the identifier of the item. It must be stable across
	// the two lists being compared.
	DiffID() K

	// Equal reports whether the item's content equals other's.
	Equal(other any) bool
}

// Diff compares old and new and returns the changes necessary to convert from
// one to the other. Either list may be nil or empty.
//
// Delete and update positions index into old, insert positions into new, and
// a move pairs an old position with a new one. See [Result] for how a
// consumer is expected to interpret the collections.
//
// Diff is pure: identical inputs always produce an identical result, and no
// references to old or new are retained beyond the call.
func Diff[K comparable, T Diffable[K]](old, new []T, mode Mode) Result[K] {
	return DiffFunc(old, new, diffID[K, T], modeEq[T, K](mode))
}

// DiffFunc is like [Diff] for item types that do not implement [Diffable]:
// id extracts the stable identifier and eq tests a correlated pair for
// content equality. The eq function takes the role of the comparison mode; a
// caller that wants identity semantics passes a pointer comparison.
func DiffFunc[T any, K comparable](old, new []T, id func(T) K, eq func(a, b T) bool) Result[K] {
	raw := compute(old, new, id, eq)
	r := Result[K]{
		Inserts:    raw.Inserts,
		Deletes:    raw.Deletes,
		Updates:    raw.Updates,
		oldIndexes: make(map[K]int, len(old)),
		newIndexes: make(map[K]int, len(new)),
		oldIDs:     make([]K, len(old)),
	}
	if len(raw.Moves) > 0 {
		r.Moves = make([]Move, len(raw.Moves))
		for i, m := range raw.Moves {
			r.Moves[i] = Move{From: m[0], To: m[1]}
		}
	}
	for i, v := range old {
		k := id(v)
		r.oldIndexes[k] = i
		r.oldIDs[i] = k
	}
	for i, v := range new {
		r.newIndexes[id(v)] = i
	}
	return r
}

// Paths is like [Diff] with section-qualified positions: deletes, updates,
// and move sources are reported in oldSection, inserts and move targets in
// newSection. The two sections may differ, which supports diffing a list
// across a section move.
func Paths[K comparable, T Diffable[K]](oldSection, newSection int, old, new []T, mode Mode) PathResult[K] {
	return PathsFunc(oldSection, newSection, old, new, diffID[K, T], modeEq[T, K](mode))
}

// PathsFunc is like [Paths] for item types that do not implement [Diffable].
// See [DiffFunc] for the id and eq contracts.
func PathsFunc[T any, K comparable](oldSection, newSection int, old, new []T, id func(T) K, eq func(a, b T) bool) PathResult[K] {
	raw := compute(old, new, id, eq)
	r := PathResult[K]{
		oldPaths: make(map[K]Path, len(old)),
		newPaths: make(map[K]Path, len(new)),
		oldIDs:   make([]K, len(old)),
	}
	if len(raw.Inserts) > 0 {
		r.Inserts = make([]Path, len(raw.Inserts))
		for i, idx := range raw.Inserts {
			r.Inserts[i] = Path{Section: newSection, Index: idx}
		}
	}
	if len(raw.Deletes) > 0 {
		r.Deletes = make([]Path, len(raw.Deletes))
		for i, idx := range raw.Deletes {
			r.Deletes[i] = Path{Section: oldSection, Index: idx}
		}
	}
	if len(raw.Updates) > 0 {
		r.Updates = make([]Path, len(raw.Updates))
		for i, idx := range raw.Updates {
			r.Updates[i] = Path{Section: oldSection, Index: idx}
		}
	}
	if len(raw.Moves) > 0 {
		r.Moves = make([]PathMove, len(raw.Moves))
		for i, m := range raw.Moves {
			r.Moves[i] = PathMove{
				From: Path{Section: oldSection, Index: m[0]},
				To:   Path{Section: newSection, Index: m[1]},
			}
		}
	}
	for i, v := range old {
		k := id(v)
		r.oldPaths[k] = Path{Section: oldSection, Index: i}
		r.oldIDs[i] = k
	}
	for i, v := range new {
		r.newPaths[id(v)] = Path{Section: newSection, Index: i}
	}
	return r
}

// compute runs the correlation and classification passes. The degenerate
// inputs are short-circuited: they need no occurrence table and their
// classification is already known.
func compute[T any, K comparable](old, new []T, id func(T) K, eq func(a, b T) bool) classify.Raw {
	switch {
	case len(new) == 0:
		var raw classify.Raw
		if len(old) > 0 {
			raw.Deletes = make([]int, len(old))
			for i := range raw.Deletes {
				raw.Deletes[i] = i
			}
		}
		return raw
	case len(old) == 0:
		var raw classify.Raw
		raw.Inserts = make([]int, len(new))
		for i := range raw.Inserts {
			raw.Inserts[i] = i
		}
		return raw
	default:
		oldRecords, newRecords := ledger.Correlate(old, new, id, eq)
		return classify.Sweep(oldRecords, newRecords)
	}
}

func diffID[K comparable, T Diffable[K]](v T) K {
	return v.DiffID()
}

// modeEq returns the pair comparison for the mode.
func modeEq[T Diffable[K], K comparable](m Mode) func(a, b T) bool {
	switch m {
	case Equality:
		return func(a, b T) bool { return a.Equal(b) }
	case Identity:
		return sameObject[T]
	default:
		panic(fmt.Sprintf("listdiff: unknown mode %d", int(m)))
	}
}

// sameObject reports whether a and b are the same underlying object. Only
// pointer items can be compared by identity; anything else is a contract
// violation by the caller and panics at the call site.
func sameObject[T any](a, b T) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("listdiff: Identity comparison requires pointer items, got %T", a))
	}
	return va.Pointer() == vb.Pointer()
}
