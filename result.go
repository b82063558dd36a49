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

import "slices"

// Move pairs the old position of an item with its new position.
type Move struct {
	From, To int
}

// Result holds the changes computed by [Diff] and [DiffFunc]. A consumer is
// expected to interpret Deletes and Updates against the old list, Inserts
// against the new list, and to apply Moves after deletes and inserts or via a
// primitive that accepts (from, to) pairs directly.
//
// An item may appear in both Updates and Moves: content and position changes
// are independent classifications. Use [Result.ForBatchUpdates] for consumers
// that cannot express that combination.
//
// A Result is immutable; the collections must not be modified.
type Result[K comparable] struct {
	Inserts []int  // positions in the new list
	Deletes []int  // positions in the old list
	Updates []int  // positions in the old list of items whose content changed
	Moves   []Move // position changes not explained by inserts and deletes

	oldIndexes map[K]int
	newIndexes map[K]int
	oldIDs     []K
}

// OldIndexOf returns the position of the identifier in the old list.
func (r Result[K]) OldIndexOf(id K) (int, bool) {
	i, ok := r.oldIndexes[id]
	return i, ok
}

// NewIndexOf returns the position of the identifier in the new list.
func (r Result[K]) NewIndexOf(id K) (int, bool) {
	i, ok := r.newIndexes[id]
	return i, ok
}

// Changes returns the total number of changes across all four collections.
func (r Result[K]) Changes() int {
	return len(r.Inserts) + len(r.Deletes) + len(r.Updates) + len(r.Moves)
}

// HasChanges reports whether the two lists differ at all.
func (r Result[K]) HasChanges() bool {
	return r.Changes() > 0
}

// ForBatchUpdates returns an equivalent result for batch consumers that
// cannot reload an item addressed by its old position, or express an update
// of an item that also moved. Every update becomes a delete at the old
// position plus an insert at the new position, and a move whose source
// position is updated is folded into that pair. The returned result has an
// empty Updates collection.
func (r Result[K]) ForBatchUpdates() Result[K] {
	if len(r.Updates) == 0 {
		return r
	}
	updated := make(map[int]bool, len(r.Updates))
	for _, u := range r.Updates {
		updated[u] = true
	}

	out := Result[K]{
		Inserts:    slices.Clone(r.Inserts),
		Deletes:    slices.Clone(r.Deletes),
		oldIndexes: r.oldIndexes,
		newIndexes: r.newIndexes,
		oldIDs:     r.oldIDs,
	}
	for _, m := range r.Moves {
		if updated[m.From] {
			delete(updated, m.From)
			out.Deletes = append(out.Deletes, m.From)
			out.Inserts = append(out.Inserts, m.To)
		} else {
			out.Moves = append(out.Moves, m)
		}
	}
	for _, u := range r.Updates {
		if !updated[u] {
			continue // already folded into a move's delete and insert
		}
		out.Deletes = append(out.Deletes, u)
		out.Inserts = append(out.Inserts, r.newIndexes[r.oldIDs[u]])
	}
	return out
}

// Path is a section-qualified position: an item index within a numbered
// section.
type Path struct {
	Section, Index int
}

// PathMove pairs the old path of an item with its new path.
type PathMove struct {
	From, To Path
}

// PathResult holds the changes computed by [Paths] and [PathsFunc]. It has
// the shape of [Result] with every position qualified by a section: deletes,
// updates, and move sources carry the old section, inserts and move targets
// the new one.
//
// A PathResult is immutable; the collections must not be modified.
type PathResult[K comparable] struct {
	Inserts []Path
	Deletes []Path
	Updates []Path
	Moves   []PathMove

	oldPaths map[K]Path
	newPaths map[K]Path
	oldIDs   []K
}

// OldPathOf returns the path of the identifier in the old list.
func (r PathResult[K]) OldPathOf(id K) (Path, bool) {
	p, ok := r.oldPaths[id]
	return p, ok
}

// NewPathOf returns the path of the identifier in the new list.
func (r PathResult[K]) NewPathOf(id K) (Path, bool) {
	p, ok := r.newPaths[id]
	return p, ok
}

// Changes returns the total number of changes across all four collections.
func (r PathResult[K]) Changes() int {
	return len(r.Inserts) + len(r.Deletes) + len(r.Updates) + len(r.Moves)
}

// HasChanges reports whether the two lists differ at all.
func (r PathResult[K]) HasChanges() bool {
	return r.Changes() > 0
}

// ForBatchUpdates is the section-qualified analog of
// [Result.ForBatchUpdates].
func (r PathResult[K]) ForBatchUpdates() PathResult[K] {
	if len(r.Updates) == 0 {
		return r
	}
	updated := make(map[Path]bool, len(r.Updates))
	for _, u := range r.Updates {
		updated[u] = true
	}

	out := PathResult[K]{
		Inserts:  slices.Clone(r.Inserts),
		Deletes:  slices.Clone(r.Deletes),
		oldPaths: r.oldPaths,
		newPaths: r.newPaths,
		oldIDs:   r.oldIDs,
	}
	for _, m := range r.Moves {
		if updated[m.From] {
			delete(updated, m.From)
			out.Deletes = append(out.Deletes, m.From)
			out.Inserts = append(out.Inserts, m.To)
		} else {
			out.Moves = append(out.Moves, m)
		}
	}
	for _, u := range r.Updates {
		if !updated[u] {
			continue // already folded into a move's delete and insert
		}
		out.Deletes = append(out.Deletes, u)
		out.Inserts = append(out.Inserts, r.newPaths[r.oldIDs[u.Index]])
	}
	return out
}
