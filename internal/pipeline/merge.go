package pipeline

import (
	"sort"

	"prospector/pkg/domain"
)

// Combine merges tables into one: concatenate in the given order, drop every
// record whose company name was already seen (first occurrence wins), then
// stable-sort by vertical in ascending byte order. It is a pure function over
// its inputs and is idempotent.
func Combine(tables ...domain.Table) domain.Table {
	var merged domain.Table
	seen := make(map[string]struct{})
	for _, table := range tables {
		for _, rec := range table {
			if _, dup := seen[rec.CompanyName]; dup {
				continue
			}
			seen[rec.CompanyName] = struct{}{}
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Vertical < merged[j].Vertical
	})

	return merged
}
