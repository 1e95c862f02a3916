/*
Package dsl provides a fluent Go DSL for constructing expression trees.

Trees are built bottom-up, so the builder never mutates a tree it already
handed out: every call returns a new Builder wrapping a new root.

Example usage:

	tree := dsl.Num(1).
		PlusNum(2).
		Plus(dsl.Num(3).PlusNum(4)).
		Build() // ((1 + 2) + (3 + 4))

	flat, err := dsl.SumOf(1, 2, 3) // ((1 + 2) + 3)
*/
package dsl
