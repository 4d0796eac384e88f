package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Policy decides what Ensure does when the natural key already matches a row.
type Policy int

const (
	// SkipOnMatch leaves a matched row untouched and returns it. Used for
	// catalog data that must not be clobbered on repeat runs.
	SkipOnMatch Policy = iota
	// OverwriteOnMatch rewrites the full mutable attribute set of a matched
	// row. Used for identity and content singletons that must always reflect
	// the latest fixture.
	OverwriteOnMatch
)

// Kind names an entity kind the resolver knows how to upsert.
type Kind string

const (
	KindUser     Kind = "user"
	KindBrand    Kind = "brand"
	KindHero     Kind = "hero"
	KindAbout    Kind = "about"
	KindCategory Kind = "category"
	KindProduct  Kind = "product"
)

// kindSpec declares how one entity kind maps onto its table: the natural-key
// column, the full mutable column set, and the match policy. An empty keyCol
// marks a singleton resolved as the most recent row by id.
type kindSpec struct {
	table  string
	keyCol string
	cols   []string
	policy Policy
}

var kindSpecs = map[Kind]kindSpec{
	KindUser: {
		table:  "users",
		keyCol: "email",
		cols:   []string{"username", "password_hash", "role", "created_at", "updated_at"},
		policy: OverwriteOnMatch,
	},
	KindBrand: {
		table:  "brands",
		keyCol: "id",
		cols:   []string{"name", "tagline", "logo_url"},
		policy: OverwriteOnMatch,
	},
	KindHero: {
		table:  "hero_sections",
		cols:   []string{"title", "subtitle", "image_url", "cta_label", "cta_url"},
		policy: OverwriteOnMatch,
	},
	KindAbout: {
		table:  "about_pages",
		cols:   []string{"title", "body", "image_url"},
		policy: OverwriteOnMatch,
	},
	KindCategory: {
		table:  "categories",
		keyCol: "slug",
		cols:   []string{"name", "parent_id"},
		policy: SkipOnMatch,
	},
	KindProduct: {
		table:  "products",
		keyCol: "slug",
		cols:   []string{"name", "description", "price_cents", "stock", "in_stock", "category_id", "colors", "sizes", "image_url"},
		policy: SkipOnMatch,
	},
}

// Resolver performs natural-key upserts. Resolved ids are memoized for the
// run: a second Ensure or Find for the same (kind, key) returns the first
// call's id without touching the store again.
type Resolver struct {
	db    *sql.DB
	cache map[string]int64
}

// NewResolver creates a resolver over the given store handle.
func NewResolver(db *sql.DB) *Resolver {
	return &Resolver{db: db, cache: make(map[string]int64)}
}

func cacheKey(kind Kind, key string) string {
	return string(kind) + "\x00" + key
}

// Ensure resolves an entity by its natural key, creating it from vals when
// absent. vals must align with the kind's declared column list. Store errors
// are returned as-is for the caller to treat as fatal.
func (r *Resolver) Ensure(ctx context.Context, kind Kind, key string, vals []any) (int64, bool, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return 0, false, fmt.Errorf("unknown entity kind %q", kind)
	}
	if len(vals) != len(spec.cols) {
		return 0, false, fmt.Errorf("ensure %s %q: got %d values, want %d", kind, key, len(vals), len(spec.cols))
	}

	if id, hit := r.cache[cacheKey(kind, key)]; hit {
		return id, false, nil
	}

	id, found, err := r.lookup(ctx, spec, key)
	if err != nil {
		return 0, false, fmt.Errorf("lookup %s %q: %w", kind, key, err)
	}

	if found {
		if spec.policy == OverwriteOnMatch {
			set := make([]string, len(spec.cols))
			for i, c := range spec.cols {
				set[i] = c + " = ?"
			}
			args := append(append([]any{}, vals...), id)
			if _, err := r.db.ExecContext(ctx,
				fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", spec.table, strings.Join(set, ", ")),
				args...,
			); err != nil {
				return 0, false, fmt.Errorf("update %s %q: %w", kind, key, err)
			}
		}
		r.cache[cacheKey(kind, key)] = id
		return id, false, nil
	}

	cols := spec.cols
	args := vals
	if spec.keyCol != "" {
		cols = append([]string{spec.keyCol}, cols...)
		args = append([]any{key}, args...)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", spec.table, strings.Join(cols, ", "), placeholders),
		args...,
	)
	if err != nil {
		return 0, false, fmt.Errorf("insert %s %q: %w", kind, key, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("last insert id: %w", err)
	}

	r.cache[cacheKey(kind, key)] = id
	return id, true, nil
}

// Find returns the id of an already-resolved or already-stored entity without
// writing. The second return reports whether the entity exists; misses are
// not errors.
func (r *Resolver) Find(ctx context.Context, kind Kind, key string) (int64, bool, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return 0, false, fmt.Errorf("unknown entity kind %q", kind)
	}

	if id, hit := r.cache[cacheKey(kind, key)]; hit {
		return id, true, nil
	}

	id, found, err := r.lookup(ctx, spec, key)
	if err != nil {
		return 0, false, fmt.Errorf("lookup %s %q: %w", kind, key, err)
	}
	if found {
		r.cache[cacheKey(kind, key)] = id
	}
	return id, found, nil
}

func (r *Resolver) lookup(ctx context.Context, spec kindSpec, key string) (int64, bool, error) {
	var (
		query string
		args  []any
	)
	if spec.keyCol == "" {
		// Singleton: the most recent row wins.
		query = fmt.Sprintf("SELECT id FROM %s ORDER BY id DESC LIMIT 1", spec.table)
	} else {
		query = fmt.Sprintf("SELECT id FROM %s WHERE %s = ?", spec.table, spec.keyCol)
		args = []any{key}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
