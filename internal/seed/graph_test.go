package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lbertrand/boutique/internal/seed"
)

func noop(context.Context) error { return nil }

func recorder(ran *[]string, name string) func(context.Context) error {
	return func(context.Context) error {
		*ran = append(*ran, name)
		return nil
	}
}

func TestExecuteRespectsNeeds(t *testing.T) {
	var ran []string
	groups := []seed.Group{
		{Name: "products", Needs: []string{"categories"}, Run: recorder(&ran, "products")},
		{Name: "categories", Run: recorder(&ran, "categories")},
		{Name: "orders", Needs: []string{"products", "users"}, Run: recorder(&ran, "orders")},
		{Name: "users", Run: recorder(&ran, "users")},
	}

	if err := seed.Execute(context.Background(), groups); err != nil {
		t.Fatalf("execute: %v", err)
	}

	pos := make(map[string]int, len(ran))
	for i, name := range ran {
		pos[name] = i
	}
	if pos["categories"] > pos["products"] {
		t.Errorf("categories ran after products: %v", ran)
	}
	if pos["products"] > pos["orders"] || pos["users"] > pos["orders"] {
		t.Errorf("orders ran before its needs: %v", ran)
	}
}

func TestExecutePreservesDeclarationOrder(t *testing.T) {
	var ran []string
	groups := []seed.Group{
		{Name: "a", Run: recorder(&ran, "a")},
		{Name: "b", Run: recorder(&ran, "b")},
		{Name: "c", Run: recorder(&ran, "c")},
	}

	if err := seed.Execute(context.Background(), groups); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.Join(ran, ","); got != "a,b,c" {
		t.Errorf("order = %s, want a,b,c", got)
	}
}

func TestExecuteRejectsUnknownNeed(t *testing.T) {
	groups := []seed.Group{
		{Name: "a", Needs: []string{"missing"}, Run: noop},
	}
	err := seed.Execute(context.Background(), groups)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("err = %v, want unknown-group error", err)
	}
}

func TestExecuteRejectsCycle(t *testing.T) {
	called := false
	groups := []seed.Group{
		{Name: "a", Needs: []string{"b"}, Run: recorder(new([]string), "a")},
		{Name: "b", Needs: []string{"a"}, Run: func(context.Context) error {
			called = true
			return nil
		}},
	}
	err := seed.Execute(context.Background(), groups)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("err = %v, want cycle error", err)
	}
	if called {
		t.Error("group ran despite cycle")
	}
}

func TestExecuteRejectsDuplicateName(t *testing.T) {
	groups := []seed.Group{
		{Name: "a", Run: noop},
		{Name: "a", Run: noop},
	}
	if err := seed.Execute(context.Background(), groups); err == nil {
		t.Fatal("expected duplicate-group error")
	}
}
