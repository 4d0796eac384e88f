// Package fixture defines the seed dataset consumed by the seeding engine.
// The engine never reaches into this package directly; a Dataset is handed to
// it as plain input, so tests can seed arbitrary subsets.
package fixture

import (
	"github.com/gosimple/slug"

	"github.com/lbertrand/boutique/internal/domain"
)

// User is a client account fixture. The password is filled in by the engine
// from configuration and hashed before it touches the store.
type User struct {
	Email    string
	Username string
	Role     domain.Role
}

// Brand is the singleton brand fixture.
type Brand struct {
	Name    string
	Tagline string
	LogoURL string
}

// Hero is the storefront banner fixture.
type Hero struct {
	Title    string
	Subtitle string
	ImageURL string
	CTALabel string
	CTAURL   string
}

// About is the about-page fixture.
type About struct {
	Title    string
	Body     string
	ImageURL string
}

// Service is a storefront service blurb.
type Service struct {
	Title       string
	Description string
	Icon        string
}

// Category is a taxonomy node. ParentSlug is empty for roots. A missing Slug
// is derived from Name during Normalize.
type Category struct {
	Slug       string
	Name       string
	ParentSlug string
}

// Product is a catalog fixture referencing its category by slug. A missing
// Slug is derived from Name during Normalize.
type Product struct {
	Slug         string
	Name         string
	Description  string
	PriceCents   int64
	Stock        int
	CategorySlug string
	Colors       []string
	Sizes        []string
	ImageURL     string
}

// Campaign references categories and products by slug; the engine resolves
// them to ids and drops any it cannot resolve.
type Campaign struct {
	Title           string
	Description     string
	DiscountPercent int
	StartsAt        string
	EndsAt          string
	CategorySlugs   []string
	ProductSlugs    []string
}

// OrderItem references a product by slug. The price is snapshotted from the
// product row when the order is built, never stored in the fixture.
type OrderItem struct {
	ProductSlug string
	Quantity    int
}

// Order references its owner by email.
type Order struct {
	UserEmail string
	Status    string
	Items     []OrderItem
}

// SignupRequest optionally records the admin as processor.
type SignupRequest struct {
	Email            string
	Status           string
	ProcessedByAdmin bool
}

// AuditLog optionally attributes the action to the admin.
type AuditLog struct {
	Action  string
	Detail  string
	ByAdmin bool
}

// InboundEmail is a captured incoming message fixture.
type InboundEmail struct {
	FromEmail string
	Subject   string
	Body      string
}

// Legal is a legal page fixture.
type Legal struct {
	Kind  string
	Title string
	Body  string
}

// ContactMessage is a contact-form submission fixture.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Notification is a back-office notification fixture.
type Notification struct {
	Title string
	Body  string
	Level string
}

// FooterLink belongs to a FooterSection.
type FooterLink struct {
	Label string
	URL   string
}

// FooterSection is created with its links in one transaction.
type FooterSection struct {
	Title string
	Links []FooterLink
}

// WishlistItem references user and product by natural key.
type WishlistItem struct {
	UserEmail   string
	ProductSlug string
}

// CartItem references user and product by natural key.
type CartItem struct {
	UserEmail   string
	ProductSlug string
	Quantity    int
}

// Dataset is the full fixture input for one seeding run.
type Dataset struct {
	Clients         []User
	Brand           Brand
	Hero            Hero
	About           About
	Services        []Service
	Categories      []Category
	Products        []Product
	Campaigns       []Campaign
	Orders          []Order
	SignupRequests  []SignupRequest
	AuditLogs       []AuditLog
	InboundEmails   []InboundEmail
	Legal           []Legal
	ContactMessages []ContactMessage
	Notifications   []Notification
	FooterSections  []FooterSection
	WishlistItems   []WishlistItem
	CartItems       []CartItem
}

// Normalize fills in derivable fields before the engine runs: category and
// product slugs missing from the fixture are generated from the name.
func (d *Dataset) Normalize() {
	for i := range d.Categories {
		if d.Categories[i].Slug == "" {
			d.Categories[i].Slug = slug.Make(d.Categories[i].Name)
		}
	}
	for i := range d.Products {
		if d.Products[i].Slug == "" {
			d.Products[i].Slug = slug.Make(d.Products[i].Name)
		}
	}
}
