package twmerge

import "strings"

// IndexMap holds the latest token of every group and remembers the order in
// which groups were first seen. Updating a group replaces its token in place,
// the group keeps its original position.
type IndexMap struct {
	indexes map[string]int
	values  []string
}

// NewIndexMap returns an empty IndexMap sized for about n groups.
func NewIndexMap(n int) *IndexMap {
	return &IndexMap{
		indexes: make(map[string]int, n),
		values:  make([]string, 0, n),
	}
}

// Set stores token as the value of group.
func (o *IndexMap) Set(group, token string) {
	if i, ok := o.indexes[group]; ok {
		o.values[i] = token
		return
	}
	o.indexes[group] = len(o.values)
	o.values = append(o.values, token)
}

// String joins the stored tokens in first-seen group order.
func (o *IndexMap) String() string {
	return strings.Join(o.values, " ")
}
