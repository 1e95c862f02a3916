/*
Package domain contains the core data model of exprtree.

It defines the closed expression type evaluated by the runtime, the trace produced
by traced evaluation and the lifecycle hooks used for observability. This package
is kept pure and free of external dependencies like I/O or logging.

# Key Entities

  - Expr: a closed interface. Only Literal and Sum implement it.
  - Literal: a leaf holding a fixed integer.
  - Sum: an internal node owning exactly two child expressions.
  - Trace: the ordered log written by traced evaluation.
  - LifecycleHooks: callbacks fired once per evaluated node.
*/
package domain
