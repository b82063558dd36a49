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

// Package classify turns correlated records into the raw change collections.
// Positions are plain indexes into the input lists; encoding them as flat or
// section-qualified positions is left to the caller.
package classify

import (
	"fmt"

	"mrtz.io/listdiff/internal/ledger"
)

// Raw holds the classified changes in sweep order: deletes in ascending old
// index order, inserts, updates, and moves in ascending new index order.
// Moves are (from, to) pairs of an old index and a new index. Updates carry
// the old index of the changed item.
type Raw struct {
	Inserts []int
	Deletes []int
	Updates []int
	Moves   [][2]int
}

// Sweep classifies the correlated records into inserts, deletes, updates, and
// moves with one forward sweep over each side.
//
// Both sweeps track a running count of unmatched records seen so far. These
// offsets normalize an item's position into a frame where pure insertions and
// deletions cancel out: a matched pair whose positions still differ in that
// frame changed position for an unrelated reason and is reported as a move.
func Sweep(oldRecords, newRecords []ledger.Record) Raw {
	var raw Raw

	// Deletes. The offset stored for an index counts the deletes strictly
	// before it, so it is recorded before the index itself is tested.
	deleteOffsets := make([]int, len(oldRecords))
	runningOffset := 0
	for i, rec := range oldRecords {
		deleteOffsets[i] = runningOffset
		if rec.Index == ledger.None {
			raw.Deletes = append(raw.Deletes, i)
			runningOffset++
		}
	}

	// Inserts, updates, and moves. An update and a move are independent
	// classifications: an item that changed both content and position
	// appears in both collections.
	runningOffset = 0
	for i, rec := range newRecords {
		insertOffset := runningOffset
		if rec.Index == ledger.None {
			raw.Inserts = append(raw.Inserts, i)
			runningOffset++
			continue
		}
		j := rec.Index
		if rec.Entry.Updated {
			raw.Updates = append(raw.Updates, j)
		}
		if j-deleteOffsets[j]+insertOffset != i {
			raw.Moves = append(raw.Moves, [2]int{j, i})
		}
	}

	// Count conservation must hold for every correct classification; a
	// violation is a bug in the correlation or the sweeps above.
	if len(oldRecords)+len(raw.Inserts)-len(raw.Deletes) != len(newRecords) {
		panic(fmt.Sprintf("listdiff: internal error: %d old + %d inserts - %d deletes != %d new",
			len(oldRecords), len(raw.Inserts), len(raw.Deletes), len(newRecords)))
	}
	return raw
}
