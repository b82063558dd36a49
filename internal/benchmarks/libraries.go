// Package benchmarks compares this module against other diffing libraries on
// identifier sequences. The other libraries compute longest common
// subsequence style edits without move detection or identifier correlation,
// so the comparison is about runtime and the number of touched rows, not
// about identical outputs.
package benchmarks

import (
	"strings"

	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"mrtz.io/listdiff"
	"znkr.io/diff"
)

// Impl is one diff implementation under benchmark. Diff returns the number
// of rows it would touch to transform old into new.
type Impl struct {
	Name string
	Diff func(old, new []string) int
}

var Impls = []Impl{
	{
		Name: "listdiff",
		Diff: func(old, new []string) int {
			res := listdiff.DiffFunc(old, new,
				func(s string) string { return s },
				func(a, b string) bool { return a == b },
			)
			return res.Changes()
		},
	},
	{
		Name: "znkr",
		Diff: func(old, new []string) int {
			n := 0
			for _, e := range diff.Edits(old, new) {
				if e.Op != diff.Match {
					n++
				}
			}
			return n
		},
	},
	{
		Name: "mb0",
		Diff: func(old, new []string) int {
			n := 0
			for _, c := range mb0.Diff(len(old), len(new), &pair{old, new}) {
				n += c.Del + c.Ins
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(old, new []string) int {
			dmp := diffmatchpatch.New()
			a, b, lines := dmp.DiffLinesToChars(strings.Join(old, "\n"), strings.Join(new, "\n"))
			diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
			n := 0
			for _, d := range diffs {
				if d.Type != diffmatchpatch.DiffEqual {
					n += strings.Count(d.Text, "\n") + 1
				}
			}
			return n
		},
	},
}

// pair adapts two string slices to mb0/diff's index based interface.
type pair struct {
	old, new []string
}

func (p *pair) Equal(i, j int) bool { return p.old[i] == p.new[j] }
