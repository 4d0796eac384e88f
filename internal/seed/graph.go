package seed

import (
	"context"
	"fmt"
	"strings"
)

// Group is one node in the seeding DAG: a named unit of work with explicit
// prerequisites. The order of execution is data, not call sequencing, so the
// graph can be validated before any row is written.
type Group struct {
	Name  string
	Needs []string
	Run   func(ctx context.Context) error
}

// Execute validates the group graph and runs every group in a stable
// topological order (declaration order is preserved wherever the
// dependencies allow). Unknown prerequisites and cycles are configuration
// errors reported before any group runs.
func Execute(ctx context.Context, groups []Group) error {
	order, err := sortGroups(groups)
	if err != nil {
		return err
	}
	for _, g := range order {
		if err := g.Run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", g.Name, err)
		}
	}
	return nil
}

func sortGroups(groups []Group) ([]Group, error) {
	known := make(map[string]bool, len(groups))
	for _, g := range groups {
		if known[g.Name] {
			return nil, fmt.Errorf("duplicate seed group %q", g.Name)
		}
		known[g.Name] = true
	}
	for _, g := range groups {
		for _, n := range g.Needs {
			if !known[n] {
				return nil, fmt.Errorf("seed group %q needs unknown group %q", g.Name, n)
			}
		}
	}

	done := make(map[string]bool, len(groups))
	order := make([]Group, 0, len(groups))
	remaining := groups
	for len(remaining) > 0 {
		var next []Group
		progressed := false
		for _, g := range remaining {
			ready := true
			for _, n := range g.Needs {
				if !done[n] {
					ready = false
					break
				}
			}
			if !ready {
				next = append(next, g)
				continue
			}
			order = append(order, g)
			done[g.Name] = true
			progressed = true
		}
		if !progressed {
			names := make([]string, len(next))
			for i, g := range next {
				names[i] = g.Name
			}
			return nil, fmt.Errorf("dependency cycle among seed groups: %s", strings.Join(names, ", "))
		}
		remaining = next
	}
	return order, nil
}
