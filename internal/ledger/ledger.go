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

// Package ledger implements the occurrence table and the correlation passes
// that pair up occurrences of the same identifier across the two input lists.
// The output is one record per input index; records are the internal
// representation that internal/classify translates into change collections.
package ledger

// None marks a record with no counterpart in the opposite list.
const None = -1

// Entry is the per-identifier bookkeeping shared by every occurrence of one
// identifier in either list. Entries live for a single correlation only.
type Entry struct {
	OldCount int
	NewCount int

	// Updated is set when a correlated pair of this identifier differs under
	// the active comparison.
	Updated bool

	// oldIndexes is a stack of positions in the old list. It is filled in
	// descending index order so that pops yield ascending positions, pairing
	// the earliest unclaimed old occurrence with the earliest unclaimed new
	// occurrence when an identifier occurs more than once.
	oldIndexes []int
}

func (e *Entry) push(i int) {
	e.oldIndexes = append(e.oldIndexes, i)
}

func (e *Entry) pop() int {
	i := e.oldIndexes[len(e.oldIndexes)-1]
	e.oldIndexes = e.oldIndexes[:len(e.oldIndexes)-1]
	return i
}

// Record describes a single index of one input list: the entry of the
// identifier found there and the correlated index in the opposite list, or
// None if the occurrence was never matched. An old record with Index == None
// is a delete candidate, a new record with Index == None an insert candidate.
type Record struct {
	Entry *Entry
	Index int
}

// Correlate builds the occurrence table for old and new and matches old and
// new occurrences of each identifier, index by index. On return, a record
// whose Index is not None is one half of a correlated pair, and its entry's
// Updated flag is set when that pair differs under eq.
func Correlate[T any, K comparable](old, new []T, id func(T) K, eq func(a, b T) bool) (oldRecords, newRecords []Record) {
	table := make(map[K]*Entry, max(len(old), len(new)))
	oldRecords = make([]Record, len(old))
	newRecords = make([]Record, len(new))

	// First pass: count occurrences in new. Each occurrence reserves a slot
	// at the bottom of the stack so that new occurrences in excess of the old
	// ones pop None instead of another identifier's position.
	for i, v := range new {
		k := id(v)
		e := table[k]
		if e == nil {
			e = &Entry{}
			table[k] = e
		}
		e.NewCount++
		e.push(None)
		newRecords[i] = Record{Entry: e, Index: None}
	}

	// Second pass: count occurrences in old and record their positions.
	// Descending order is mandatory: it makes the stack yield old positions
	// in ascending order when popped below.
	for i := len(old) - 1; i >= 0; i-- {
		k := id(old[i])
		e := table[k]
		if e == nil {
			e = &Entry{}
			table[k] = e
		}
		e.OldCount++
		e.push(i)
		oldRecords[i] = Record{Entry: e, Index: None}
	}

	// Third pass: pair each new occurrence with the next unclaimed old
	// occurrence of the same identifier and test the pair for changes.
	for i := range new {
		e := newRecords[i].Entry
		j := e.pop()
		if j == None {
			continue // no old occurrence left to claim
		}
		if !eq(old[j], new[i]) {
			e.Updated = true
		}
		if e.OldCount > 0 && e.NewCount > 0 {
			newRecords[i].Index = j
			oldRecords[j].Index = i
		}
	}
	return oldRecords, newRecords
}
