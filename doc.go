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

// Package listdiff computes the row-level changes needed to transform one
// ordered list of identified items into another: inserts, deletes, updates,
// and moves.
//
// The main functions are [Diff], which reports positions as plain indexes,
// and [Paths], which reports section-qualified positions for lists embedded
// in a sectioned surface. Both have Func variants that take explicit identity
// and equality functions instead of the [Diffable] capability.
//
// Items are correlated by a stable identifier, so an item whose content
// changed but whose identifier survived is reported as an update of the same
// logical row rather than a delete and insert pair. A position change that is
// fully explained by surrounding inserts and deletes is not a move; only
// items that changed position for an unrelated reason are reported as moves.
//
// Performance: time and space are O(N) amortized, where N = len(old) +
// len(new). A diff is a pure computation that performs no I/O and retains no
// references to its inputs; concurrent calls on independent inputs need no
// coordination.
//
// Important: The order of positions within each result collection is not
// guaranteed to be stable and may change with minor version upgrades. DO NOT
// rely on the order being stable.
package listdiff
