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

package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Test items are strings whose first byte is the identifier and whose full
// value is the content, so "a1" and "a2" are the same row with changed
// content.
func itemID(s string) byte { return s[0] }

func itemEq(a, b string) bool { return a == b }

func counterparts(recs []Record) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.Index
	}
	return out
}

func TestCorrelate(t *testing.T) {
	tests := []struct {
		name     string
		old, new []string
		wantOld  []int // counterpart per old index
		wantNew  []int // counterpart per new index
	}{
		{
			name:    "identical",
			old:     []string{"a", "b", "c"},
			new:     []string{"a", "b", "c"},
			wantOld: []int{0, 1, 2},
			wantNew: []int{0, 1, 2},
		},
		{
			name:    "disjoint",
			old:     []string{"a", "b"},
			new:     []string{"x", "y"},
			wantOld: []int{None, None},
			wantNew: []int{None, None},
		},
		{
			name:    "reorder",
			old:     []string{"a", "b", "c"},
			new:     []string{"c", "a", "b"},
			wantOld: []int{1, 2, 0},
			wantNew: []int{2, 0, 1},
		},
		{
			name:    "duplicate-shrinks",
			old:     []string{"a", "a"},
			new:     []string{"a"},
			wantOld: []int{0, None},
			wantNew: []int{0},
		},
		{
			name:    "duplicate-grows",
			old:     []string{"a"},
			new:     []string{"a", "a"},
			wantOld: []int{0},
			wantNew: []int{0, None},
		},
		{
			name:    "duplicates-pair-in-order",
			old:     []string{"a", "b", "a"},
			new:     []string{"a", "a", "b"},
			wantOld: []int{0, 2, 1},
			wantNew: []int{0, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldRecords, newRecords := Correlate(tt.old, tt.new, itemID, itemEq)
			if diff := cmp.Diff(tt.wantOld, counterparts(oldRecords)); diff != "" {
				t.Errorf("old counterparts are different (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantNew, counterparts(newRecords)); diff != "" {
				t.Errorf("new counterparts are different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCorrelateCounts(t *testing.T) {
	old := []string{"a", "b", "a"}
	new := []string{"a", "c"}
	oldRecords, _ := Correlate(old, new, itemID, itemEq)

	a := oldRecords[0].Entry
	if a.OldCount != 2 || a.NewCount != 1 {
		t.Errorf("entry a: got old=%d new=%d, want old=2 new=1", a.OldCount, a.NewCount)
	}
	if oldRecords[0].Entry != oldRecords[2].Entry {
		t.Errorf("occurrences of the same identifier must share one entry")
	}
	b := oldRecords[1].Entry
	if b.OldCount != 1 || b.NewCount != 0 {
		t.Errorf("entry b: got old=%d new=%d, want old=1 new=0", b.OldCount, b.NewCount)
	}
}

func TestCorrelateUpdated(t *testing.T) {
	tests := []struct {
		name     string
		old, new []string
		want     map[int]bool // updated flag per new index with a counterpart
	}{
		{
			name: "content-changed",
			old:  []string{"a1", "b1"},
			new:  []string{"a1", "b2"},
			want: map[int]bool{0: false, 1: true},
		},
		{
			name: "unrelated-ids-never-updated",
			old:  []string{"a1"},
			new:  []string{"b1"},
			want: map[int]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, newRecords := Correlate(tt.old, tt.new, itemID, itemEq)
			got := make(map[int]bool)
			for i, rec := range newRecords {
				if rec.Index != None {
					got[i] = rec.Entry.Updated
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("updated flags are different (-want, +got):\n%s", diff)
			}
		})
	}
}
