/*
Package exprtree evaluates immutable arithmetic expression trees.

An expression is either a Literal holding an integer or a Sum owning two child
expressions. The set of variants is closed, so every consumer handles exactly
these two shapes. Evaluation is a pure recursive walk: a literal yields its
value and a sum yields the sum of its operands, left operand first.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/exprtree"
	)

	func main() {
		tree := exprtree.Add(exprtree.Num(4), exprtree.Num(2))

		v, trace, err := exprtree.EvaluateWithTrace(tree)
		if err != nil {
			log.Fatal(err)
		}

		for _, line := range trace {
			fmt.Println(line) // num: 4, num: 2, Sum: 4 + 2
		}
		fmt.Println(v) // 6
	}

For observability, build an Evaluator with New and attach lifecycle hooks or a
structured logger. Trees can also be decoded from YAML/JSON documents or infix
text through the exprtree CLI.
*/
package exprtree
