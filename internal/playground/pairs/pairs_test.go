package pairs

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var (
	words   = []string{"hello", "world", "it", "is", "swift"}
	numbers = []int{0, 1, 2, 3, 4}
)

func TestZipSlices(t *testing.T) {
	req := require.New(t)

	got := slices.Collect(ZipSlices(words, numbers))

	req.Equal([]lo.Tuple2[string, int]{
		lo.T2("hello", 0),
		lo.T2("world", 1),
		lo.T2("it", 2),
		lo.T2("is", 3),
		lo.T2("swift", 4),
	}, got)
}

func TestZipSlices_TruncatesToShortest(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []int
		want int
	}{
		{name: "equal lengths", a: words, b: numbers, want: 5},
		{name: "first shorter", a: words[:2], b: numbers, want: 2},
		{name: "second shorter", a: words, b: numbers[:3], want: 3},
		{name: "first empty", a: nil, b: numbers, want: 0},
		{name: "second empty", a: words, b: []int{}, want: 0},
		{name: "both empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			got := slices.Collect(ZipSlices(tt.a, tt.b))

			req.Len(got, tt.want)
			req.Equal(tt.want, Len(ZipSlices(tt.a, tt.b)))
			for i, p := range got {
				req.Equal(tt.a[i], p.A)
				req.Equal(tt.b[i], p.B)
			}
		})
	}
}

func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestZip_UnboundedInput(t *testing.T) {
	req := require.New(t)

	// Unbounded on either side still terminates at the finite input
	left := slices.Collect(Zip(naturals(), slices.Values(words[:3])))
	right := slices.Collect(Zip(slices.Values(words[:3]), naturals()))

	req.Equal([]lo.Tuple2[int, string]{lo.T2(0, "hello"), lo.T2(1, "world"), lo.T2(2, "it")}, left)
	req.Equal([]lo.Tuple2[string, int]{lo.T2("hello", 0), lo.T2("world", 1), lo.T2("it", 2)}, right)
}

func TestZip_StopsEarly(t *testing.T) {
	req := require.New(t)
	var got []string

	for p := range ZipSlices(words, numbers) {
		if p.B == 2 {
			break
		}
		got = append(got, p.A)
	}

	req.Equal([]string{"hello", "world"}, got)
}

func TestZip_Nested(t *testing.T) {
	req := require.New(t)
	labels := []string{"a", "b", "c", "d", "e"}

	got := slices.Collect(Zip(slices.Values(labels), ZipSlices(words, numbers)))

	req.Len(got, 5)
	for i, p := range got {
		label, inner := p.Unpack()
		word, num := inner.Unpack()
		req.Equal(labels[i], label)
		req.Equal(words[i], word)
		req.Equal(numbers[i], num)
	}
}

func TestZip_NestedTruncatesToShortest(t *testing.T) {
	req := require.New(t)

	got := slices.Collect(Zip(slices.Values([]string{"a", "b", "c"}), ZipSlices(words, numbers[:2])))

	req.Equal([]lo.Tuple2[string, lo.Tuple2[string, int]]{
		lo.T2("a", lo.T2("hello", 0)),
		lo.T2("b", lo.T2("world", 1)),
	}, got)
}

func TestZipMap(t *testing.T) {
	req := require.New(t)
	dict := map[string]int{"Hello": 0, "Swift": 1}

	got := slices.Collect(ZipMap(words, dict))

	// Given the map is shorter, only two words are paired
	req.Len(got, 2)
	req.Equal("hello", got[0].A)
	req.Equal("world", got[1].A)

	// And every entry of the map shows up exactly once with its own value
	seen := map[string]int{}
	for _, p := range got {
		seen[p.B.Key] = p.B.Value
	}
	req.Equal(dict, seen)
}

func TestZipMap_SequenceShorterThanMap(t *testing.T) {
	req := require.New(t)
	dict := map[string]int{"a": 1, "b": 2, "c": 3}

	got := slices.Collect(ZipMap(words[:1], dict))

	req.Len(got, 1)
	req.Equal(dict[got[0].B.Key], got[0].B.Value)
}

func TestEntries(t *testing.T) {
	req := require.New(t)
	dict := map[string]int{"Hello": 0, "Swift": 1, "Go": 2}

	got := slices.Collect(Entries(dict))

	req.ElementsMatch(lo.Entries(dict), got)
	req.Empty(slices.Collect(Entries(map[string]int{})))
}

func TestSortedEntries(t *testing.T) {
	req := require.New(t)
	dict := map[string]int{"Swift": 1, "Hello": 0, "Go": 2}

	got := slices.Collect(SortedEntries(dict))

	req.Equal([]lo.Entry[string, int]{
		{Key: "Go", Value: 2},
		{Key: "Hello", Value: 0},
		{Key: "Swift", Value: 1},
	}, got)
	req.Equal(slices.Sorted(maps.Keys(dict)), lo.Map(got, func(e lo.Entry[string, int], _ int) string {
		return e.Key
	}))
}
