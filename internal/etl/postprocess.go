package etl

import "slices"

// PostProcess sorts statements lexicographically as whole strings and drops
// exact duplicates, keeping the first of each run. The input is not
// modified.
func PostProcess(statements []string) []string {
	out := slices.Clone(statements)
	slices.Sort(out)
	return slices.Compact(out)
}
