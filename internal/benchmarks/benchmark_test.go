package benchmarks

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type testdata struct {
	name     string
	old, new []string
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := testdata{
			name: strings.TrimPrefix(filename, "testdata/"),
		}
		for _, f := range ar.Files {
			rows := strings.Split(strings.TrimSuffix(string(f.Data), "\n"), "\n")
			switch f.Name {
			case "old":
				test.old = rows
			case "new":
				test.new = rows
			default:
				t.Fatalf("unknown file in archive: %v", f.Name)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func BenchmarkTestdata(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Diff(td.old, td.new)
					}
					b.StopTimer()
					b.ReportMetric(float64(impl.Diff(td.old, td.new)), "changes")
				})
			}
		})
	}
}

func BenchmarkGenerated(b *testing.B) {
	params := []struct {
		N, D int // list length and number of swapped pairs
	}{
		{100, 10},
		{1000, 10},
		{1000, 100},
		{10000, 100},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_D=%d", p.N, p.D)

		rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
		old := make([]string, p.N)
		for i := range old {
			old[i] = fmt.Sprintf("row-%d", i)
		}
		new := slices.Clone(old)
		for range p.D {
			i, j := rng.IntN(len(new)), rng.IntN(len(new))
			new[i], new[j] = new[j], new[i]
		}

		for _, impl := range Impls {
			b.Run("impl="+impl.Name+"/"+name, func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = impl.Diff(old, new)
				}
			})
		}
	}
}
