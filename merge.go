package twmerge

import "sync"

var defaultMerger = sync.OnceValue(func() *Merger {
	m, err := New(&Options{})
	if err != nil {
		// the built-in table always compiles
		panic(err)
	}
	return m
})

// Merge merges class lists using the built-in table.
//
//	twmerge.Merge("text-red-500 p-4", "text-blue-500") // "text-blue-500 p-4"
func Merge(inputs ...string) string {
	return defaultMerger().Merge(inputs...)
}

// MergeOptional merges optional class lists using the built-in table; nil entries are skipped.
func MergeOptional(inputs ...*string) string {
	return defaultMerger().MergeOptional(inputs...)
}

// Classify returns the built-in group of token.
func Classify(token string) string {
	return defaultMerger().Classify(token)
}
