package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/exprtree/internal/presentation/graph"
	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	lit := domain.Num(9)

	tests := []struct {
		name     string
		expr     domain.Expr
		contains []string
	}{
		{
			name: "Literal Shape",
			expr: domain.Num(42),
			contains: []string{
				"graph TD\n",
				`n("42")`,
			},
		},
		{
			name: "Sum Shape And Edges",
			expr: domain.Add(domain.Num(4), domain.Num(2)),
			contains: []string{
				`n(("+"))`,
				"n -- L --> nl",
				"n -- R --> nr",
				`nl("4")`,
				`nr("2")`,
			},
		},
		{
			name: "Nested IDs",
			expr: domain.Add(domain.Num(1), domain.Add(domain.Num(2), domain.Num(3))),
			contains: []string{
				"nr -- L --> nrl",
				`nrr("3")`,
			},
		},
		{
			name: "Unrecognized Operand",
			expr: domain.Add(domain.Num(1), &lit),
			contains: []string{
				`nr{{"*domain.Literal"}}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.expr, nil)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	tree := domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(3))

	overlay, err := graph.NewOverlay(context.Background(), runtime.NewEvaluator(), tree)
	if err != nil {
		t.Fatalf("NewOverlay() failed: %v", err)
	}
	if overlay.Values["n"] != 6 || overlay.Values["nl"] != 3 || overlay.Values["nr"] != 3 {
		t.Errorf("unexpected overlay values: %v", overlay.Values)
	}

	got := graph.GenerateMermaid(tree, overlay)
	for _, want := range []string{
		`n(("+ <br/> = 6"))`,
		`nl(("+ <br/> = 3"))`,
		"classDef evaluated",
		"class nll evaluated;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
}

func TestNewOverlay_Error(t *testing.T) {
	_, err := graph.NewOverlay(context.Background(), runtime.NewEvaluator(), domain.Add(domain.Num(1), domain.Sum{}))
	if err == nil {
		t.Fatal("expected error for malformed tree")
	}
}
