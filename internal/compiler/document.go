package compiler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/exprtree/internal/dto"
	"github.com/aretw0/exprtree/pkg/domain"
)

const (
	rootPath = "root"

	keyNum = "num"
	keySum = "sum"
)

// ParseDocument decodes a YAML or JSON document into an expression tree.
func ParseDocument(data []byte) (domain.Expr, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if raw == nil {
		return nil, &DecodeError{Path: rootPath, Err: errors.New("empty document")}
	}
	return decodeNode(raw, rootPath)
}

func decodeNode(raw any, path string) (domain.Expr, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		// Bare scalars are literals, e.g. the items of {sum: [1, 2]}.
		v, err := ToInt(raw)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return domain.Num(v), nil
	}

	var node dto.Node
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &node,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	kind, err := resolveKind(m, node)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	switch kind {
	case domain.KindNum:
		value := node.Num
		if _, short := m[keyNum]; !short {
			value = node.Value
		}
		if value == nil {
			return nil, &DecodeError{Path: path, Err: errors.New("literal is missing its value")}
		}
		v, err := ToInt(value)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return domain.Num(v), nil

	case domain.KindSum:
		left, right := node.Left, node.Right
		if _, short := m[keySum]; short {
			if len(node.Sum) != 2 {
				return nil, &DecodeError{Path: path, Err: fmt.Errorf("sum expects 2 operands, got %d", len(node.Sum))}
			}
			left, right = node.Sum[0], node.Sum[1]
		}
		if left == nil || right == nil {
			return nil, &DecodeError{Path: path, Err: errors.New("sum is missing an operand")}
		}
		l, err := decodeNode(left, childPath(path, domain.KeyLeft))
		if err != nil {
			return nil, err
		}
		r, err := decodeNode(right, childPath(path, domain.KeyRight))
		if err != nil {
			return nil, err
		}
		return domain.Add(l, r), nil

	default:
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %q", domain.ErrUnrecognizedExpressionKind, kind)}
	}
}

func resolveKind(m map[string]any, node dto.Node) (domain.Kind, error) {
	_, hasNum := m[keyNum]
	_, hasSum := m[keySum]
	if hasNum && hasSum {
		return "", errors.New("node declares both num and sum")
	}

	switch {
	case node.Kind != "":
		kind := domain.Kind(strings.ToLower(strings.TrimSpace(node.Kind)))
		if (hasNum && kind != domain.KindNum) || (hasSum && kind != domain.KindSum) {
			return "", fmt.Errorf("kind %q conflicts with node shape", node.Kind)
		}
		return kind, nil
	case hasNum:
		return domain.KindNum, nil
	case hasSum:
		return domain.KindSum, nil
	default:
		return "", fmt.Errorf("%w: node has no kind", domain.ErrUnrecognizedExpressionKind)
	}
}

// ToInt converts a decoded scalar to an int.
// Strings are parsed as base-10 integers; anything unparsable yields a *NumberFormatError.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, &NumberFormatError{Input: strconv.FormatInt(n, 10)}
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, &NumberFormatError{Input: strconv.FormatUint(n, 10)}
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return 0, &NumberFormatError{Input: strconv.FormatFloat(n, 'g', -1, 64)}
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, &NumberFormatError{Input: n, Err: err}
		}
		return i, nil
	default:
		return 0, &NumberFormatError{Input: fmt.Sprint(v)}
	}
}

// Encode renders a tree as a YAML document in the short form.
func Encode(e domain.Expr) ([]byte, error) {
	doc, err := encodeNode(e)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func encodeNode(e domain.Expr) (map[string]any, error) {
	switch n := e.(type) {
	case domain.Literal:
		return map[string]any{keyNum: n.Value()}, nil
	case domain.Sum:
		l, err := encodeNode(n.Left())
		if err != nil {
			return nil, err
		}
		r, err := encodeNode(n.Right())
		if err != nil {
			return nil, err
		}
		return map[string]any{keySum: []any{l, r}}, nil
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrUnrecognizedExpressionKind, e)
	}
}
