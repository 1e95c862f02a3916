package compiler

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/exprtree/pkg/domain"
)

// Parser is responsible for converting raw input into an expression tree.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse takes raw content and decodes it into a tree.
// Content that looks like a document (a YAML mapping or a JSON object) is
// decoded with ParseDocument; anything else is treated as infix text.
func (p *Parser) Parse(data []byte) (domain.Expr, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if looksLikeDocument(string(trimmed)) {
		return ParseDocument(trimmed)
	}
	return ParseInfix(string(trimmed))
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(path string) (domain.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	expr, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return expr, nil
}

func looksLikeDocument(s string) bool {
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "---") {
		return true
	}
	first, _, _ := strings.Cut(s, "\n")
	return strings.Contains(first, ":")
}
