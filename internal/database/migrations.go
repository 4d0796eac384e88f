package database

// migrations is an ordered list of SQL migration groups. Each entry is a
// slice of statements executed together in one transaction; the version is
// the 1-based index into the slice.
var migrations = [][]string{
	// Migration 1: accounts, content singletons, taxonomy, catalog.
	{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'USER',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE brands (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			tagline TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE hero_sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			cta_label TEXT NOT NULL DEFAULT '',
			cta_url TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE about_pages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE services (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			parent_id INTEGER REFERENCES categories(id)
		)`,

		`CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price_cents INTEGER NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			in_stock BOOLEAN NOT NULL DEFAULT FALSE,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			colors TEXT NOT NULL DEFAULT '[]',
			sizes TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE campaigns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			discount_percent INTEGER NOT NULL DEFAULT 0,
			starts_at TEXT NOT NULL,
			ends_at TEXT NOT NULL,
			category_ids TEXT NOT NULL DEFAULT '[]',
			product_ids TEXT NOT NULL DEFAULT '[]'
		)`,
	},

	// Migration 2: orders with owned line items.
	{
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			status TEXT NOT NULL DEFAULT 'PENDING',
			total_cents INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE order_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price_cents INTEGER NOT NULL
		)`,
	},

	// Migration 3: back-office and storefront content collections.
	{
		`CREATE TABLE signup_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			processed_by_id INTEGER REFERENCES users(id),
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			actor_id INTEGER REFERENCES users(id),
			action TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE inbound_emails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_email TEXT NOT NULL,
			subject TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			received_at TEXT NOT NULL
		)`,

		`CREATE TABLE legal_contents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE contact_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL DEFAULT 'INFO',
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE footer_sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE footer_links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section_id INTEGER NOT NULL REFERENCES footer_sections(id) ON DELETE CASCADE,
			label TEXT NOT NULL,
			url TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,
	},

	// Migration 4: per-user collections keyed by (user, product).
	{
		`CREATE TABLE wishlist_items (
			user_id INTEGER NOT NULL REFERENCES users(id),
			product_id INTEGER NOT NULL REFERENCES products(id),
			PRIMARY KEY (user_id, product_id)
		)`,

		`CREATE TABLE cart_items (
			user_id INTEGER NOT NULL REFERENCES users(id),
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			PRIMARY KEY (user_id, product_id)
		)`,
	},
}
