package domain

import "errors"

// ErrUnrecognizedExpressionKind is returned when a value that is not one of the
// declared expression variants reaches the evaluator or the decoder.
var ErrUnrecognizedExpressionKind = errors.New("unrecognized expression kind")

// ErrMaxDepthExceeded is returned when a tree is nested deeper than the configured limit.
var ErrMaxDepthExceeded = errors.New("max expression depth exceeded")
