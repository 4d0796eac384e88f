package domain

// Brand is a singleton: exactly one row with a fixed id ever exists.
type Brand struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	LogoURL string `json:"logoUrl"`
}

// HeroSection is the storefront banner. At most one active row is maintained
// by update-or-create on the first row found.
type HeroSection struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CTALabel string `json:"ctaLabel"`
	CTAURL   string `json:"ctaUrl"`
}

// AboutPage is the about content, resolved as "most recent row ordered by id".
type AboutPage struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
}

// Service is a storefront service blurb (pure fixture, table-empty gated).
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FooterSection owns an ordered list of links, created together in one
// transaction.
type FooterSection struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	DisplayOrder int          `json:"displayOrder"`
	Links        []FooterLink `json:"links"`
}

// FooterLink is a single link under a footer section.
type FooterLink struct {
	ID           int64  `json:"id"`
	SectionID    int64  `json:"sectionId"`
	Label        string `json:"label"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
}

// SignupRequest is a pending account request, optionally processed by an
// admin user.
type SignupRequest struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	ProcessedByID *int64 `json:"processedById,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// AuditLog records a back-office action, optionally attributed to an admin.
type AuditLog struct {
	ID        int64  `json:"id"`
	ActorID   *int64 `json:"actorId,omitempty"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"createdAt"`
}

// InboundEmail is a captured incoming message.
type InboundEmail struct {
	ID         int64  `json:"id"`
	FromEmail  string `json:"fromEmail"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	ReceivedAt string `json:"receivedAt"`
}

// LegalContent is a legal page (terms, privacy, returns).
type LegalContent struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContactMessage is a storefront contact-form submission.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// Notification is a back-office notification row.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Level     string `json:"level"`
	CreatedAt string `json:"createdAt"`
}

// WishlistItem is keyed by the (user, product) pair; duplicate inserts are
// ignored by the store.
type WishlistItem struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

// CartItem is keyed like WishlistItem, with a quantity.
type CartItem struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
