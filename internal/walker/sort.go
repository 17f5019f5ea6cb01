package walker

import (
	"cmp"
	"slices"
	"strings"
)

// ComparePaths orders slash-separated paths component by component, so a
// directory's contents stay together ("a/b" sorts before "a-b").
func ComparePaths(a, b string) int {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// sortCandidates puts candidates in path order regardless of the order the
// filesystem produced them in.
func sortCandidates(cs []candidate) {
	slices.SortStableFunc(cs, func(a, b candidate) int {
		return ComparePaths(a.relativePath, b.relativePath)
	})
}
