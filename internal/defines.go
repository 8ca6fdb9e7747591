package internal

import (
	"iter"
	"slices"
)

// Defines merges assembler define tables into one sequence, ordered by
// name. The first table to define a name wins.
func Defines(tables ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		merged := map[string]string{}
		for _, table := range tables {
			for name, value := range table {
				if _, ok := merged[name]; !ok {
					merged[name] = value
				}
			}
		}

		names := make([]string, 0, len(merged))
		for name := range merged {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			if !yield(name, merged[name]) {
				return // Stop if the consumer stops
			}
		}
	}
}
