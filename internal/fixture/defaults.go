package fixture

import "github.com/lbertrand/boutique/internal/domain"

// Default returns the standard boutique dataset. Callers get a fresh copy on
// every call; the engine normalizes and consumes it without touching this
// package again.
func Default() *Dataset {
	return &Dataset{
		Clients: []User{
			{Email: "camille@exemple.fr", Username: "camille", Role: domain.RoleUser},
			{Email: "julien@exemple.fr", Username: "julien", Role: domain.RoleUser},
			{Email: "sophie@exemple.fr", Username: "sophie", Role: domain.RoleModerator},
		},

		Brand: Brand{
			Name:    "Maison Bertrand",
			Tagline: "Vêtements intemporels, coupés pour durer",
			LogoURL: "/images/logo.svg",
		},

		Hero: Hero{
			Title:    "La nouvelle collection est arrivée",
			Subtitle: "Chemises, pantalons et vestes pour la saison",
			ImageURL: "/images/hero/collection.jpg",
			CTALabel: "Découvrir",
			CTAURL:   "/collections/nouveautes",
		},

		About: About{
			Title:    "Notre maison",
			Body:     "Depuis 1987, Maison Bertrand habille celles et ceux qui préfèrent la coupe au logo. Chaque pièce est dessinée à Paris et confectionnée au Portugal.",
			ImageURL: "/images/about/atelier.jpg",
		},

		Services: []Service{
			{Title: "Livraison offerte", Description: "Dès 120 € d'achat, partout en France métropolitaine.", Icon: "truck"},
			{Title: "Retours sous 30 jours", Description: "Échange ou remboursement sans justification.", Icon: "rotate-ccw"},
			{Title: "Paiement sécurisé", Description: "Carte bancaire, PayPal et paiement en trois fois.", Icon: "lock"},
		},

		Categories: []Category{
			{Slug: "homme", Name: "Homme"},
			{Slug: "femme", Name: "Femme"},
			{Slug: "chemises", Name: "Chemises", ParentSlug: "homme"},
			{Slug: "pantalons", Name: "Pantalons", ParentSlug: "homme"},
			{Slug: "vestes", Name: "Vestes", ParentSlug: "homme"},
			{Slug: "robes", Name: "Robes", ParentSlug: "femme"},
		},

		Products: []Product{
			{
				Slug:         "chemise-oxford-blanche",
				Name:         "Chemise Oxford blanche",
				Description:  "Coton oxford double retors, col boutonné.",
				PriceCents:   89000,
				Stock:        12,
				CategorySlug: "chemises",
				Colors:       []string{"blanc", "bleu ciel"},
				Sizes:        []string{"S", "M", "L", "XL"},
				ImageURL:     "/images/products/chemise-oxford-blanche.jpg",
			},
			{
				Slug:         "chemise-lin-bleue",
				Name:         "Chemise en lin bleue",
				Description:  "Lin lavé, coupe décontractée.",
				PriceCents:   95000,
				Stock:        5,
				CategorySlug: "chemises",
				Colors:       []string{"bleu", "écru"},
				Sizes:        []string{"S", "M", "L"},
				ImageURL:     "/images/products/chemise-lin-bleue.jpg",
			},
			{
				Slug:         "pantalon-chino-beige",
				Name:         "Pantalon chino beige",
				Description:  "Twill de coton peigné, taille mi-haute.",
				PriceCents:   72000,
				Stock:        8,
				CategorySlug: "pantalons",
				Colors:       []string{"beige", "marine"},
				Sizes:        []string{"38", "40", "42", "44"},
				ImageURL:     "/images/products/pantalon-chino-beige.jpg",
			},
			{
				Slug:         "veste-laine-grise",
				Name:         "Veste en laine grise",
				Description:  "Flanelle de laine italienne, demi-doublée.",
				PriceCents:   189000,
				Stock:        3,
				CategorySlug: "vestes",
				Colors:       []string{"gris"},
				Sizes:        []string{"46", "48", "50"},
				ImageURL:     "/images/products/veste-laine-grise.jpg",
			},
			{
				Slug:         "robe-soie-noire",
				Name:         "Robe en soie noire",
				Description:  "Crêpe de soie, longueur midi. Réassort en cours.",
				PriceCents:   149000,
				Stock:        0,
				CategorySlug: "robes",
				Colors:       []string{"noir"},
				Sizes:        []string{"34", "36", "38"},
				ImageURL:     "/images/products/robe-soie-noire.jpg",
			},
		},

		Campaigns: []Campaign{
			{
				Title:           "Soldes d'été",
				Description:     "Jusqu'à -40% sur une sélection de pièces de saison.",
				DiscountPercent: 40,
				StartsAt:        "2025-06-25T08:00:00Z",
				EndsAt:          "2025-07-22T22:00:00Z",
				CategorySlugs:   []string{"chemises", "pantalons"},
				ProductSlugs:    []string{"chemise-oxford-blanche", "pantalon-chino-beige"},
			},
		},

		Orders: []Order{
			{
				UserEmail: "camille@exemple.fr",
				Status:    "DELIVERED",
				Items: []OrderItem{
					{ProductSlug: "chemise-oxford-blanche", Quantity: 1},
					{ProductSlug: "chemise-lin-bleue", Quantity: 1},
				},
			},
			{
				UserEmail: "julien@exemple.fr",
				Status:    "PENDING",
				Items: []OrderItem{
					{ProductSlug: "pantalon-chino-beige", Quantity: 2},
				},
			},
		},

		SignupRequests: []SignupRequest{
			{Email: "marc@exemple.fr", Status: "APPROVED", ProcessedByAdmin: true},
			{Email: "lea@exemple.fr", Status: "PENDING"},
		},

		AuditLogs: []AuditLog{
			{Action: "CATALOG_IMPORT", Detail: "Import initial du catalogue", ByAdmin: true},
			{Action: "SIGNUP_APPROVED", Detail: "marc@exemple.fr", ByAdmin: true},
		},

		InboundEmails: []InboundEmail{
			{FromEmail: "marc@exemple.fr", Subject: "Question taille veste", Body: "La veste en laine taille-t-elle normalement ?"},
			{FromEmail: "presse@modemag.fr", Subject: "Demande presse", Body: "Nous préparons un dossier sur les marques françaises."},
		},

		Legal: []Legal{
			{Kind: "terms", Title: "Conditions générales de vente", Body: "Les présentes conditions régissent les ventes conclues sur la boutique."},
			{Kind: "privacy", Title: "Politique de confidentialité", Body: "Vos données ne sont jamais revendues à des tiers."},
			{Kind: "returns", Title: "Retours et échanges", Body: "Vous disposez de trente jours pour retourner un article."},
		},

		ContactMessages: []ContactMessage{
			{Name: "Antoine R.", Email: "antoine@exemple.fr", Message: "Prévoyez-vous un réassort de la robe en soie ?"},
			{Name: "Claire D.", Email: "claire@exemple.fr", Message: "Ma commande est arrivée très vite, merci !"},
		},

		Notifications: []Notification{
			{Title: "Stock faible", Body: "Veste en laine grise : 3 pièces restantes.", Level: "WARNING"},
			{Title: "Nouvelle demande d'inscription", Body: "lea@exemple.fr attend une validation.", Level: "INFO"},
		},

		FooterSections: []FooterSection{
			{
				Title: "Boutique",
				Links: []FooterLink{
					{Label: "Nouveautés", URL: "/collections/nouveautes"},
					{Label: "Homme", URL: "/collections/homme"},
					{Label: "Femme", URL: "/collections/femme"},
				},
			},
			{
				Title: "Aide",
				Links: []FooterLink{
					{Label: "Contact", URL: "/contact"},
					{Label: "Livraison", URL: "/aide/livraison"},
					{Label: "Retours", URL: "/aide/retours"},
				},
			},
			{
				Title: "Légal",
				Links: []FooterLink{
					{Label: "CGV", URL: "/legal/cgv"},
					{Label: "Confidentialité", URL: "/legal/confidentialite"},
				},
			},
		},

		WishlistItems: []WishlistItem{
			{UserEmail: "camille@exemple.fr", ProductSlug: "veste-laine-grise"},
			{UserEmail: "julien@exemple.fr", ProductSlug: "chemise-oxford-blanche"},
		},

		CartItems: []CartItem{
			{UserEmail: "camille@exemple.fr", ProductSlug: "chemise-lin-bleue", Quantity: 1},
			{UserEmail: "sophie@exemple.fr", ProductSlug: "pantalon-chino-beige", Quantity: 2},
		},
	}
}
