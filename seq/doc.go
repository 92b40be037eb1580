// Package seq provides generic containment and intersection predicates and
// integer range construction.
//
// The predicates work on any slice type and on [iter.Seq] iterators, so
// arrays (via slicing), map keys ([maps.Keys]), map values and any container
// exposing an iterator are covered by one code path per form. Inputs are
// never modified.
//
//	seq.Contains([]string{"a", "b"}, "b")             // true
//	seq.HaveCommonElement([]int{1, 2}, []int{2, 3})   // true
//	seq.Range(-3)                                     // [0 -1 -2]
//	seq.Between(5, 2)                                 // [5 4 3 2]
package seq
