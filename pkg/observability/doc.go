/*
Package observability provides Prometheus instrumentation for the evaluator.

Metrics are recorded through lifecycle hooks, so instrumentation never touches
evaluation results. Nothing here opens a network listener; callers choose how to
expose the registry (the CLI prints it with WriteText).
*/
package observability
