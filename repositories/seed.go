package repositories

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
	"beaute-shop/utils"
)

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func pricePtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// Seed loads the development fixtures: two accounts (admin / customer, both
// with password "motdepasse"), a small catalog and two coupons.
func (s *Store) Seed() {
	hash, err := utils.HashPassword("motdepasse")
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	admin := &Account{
		User: models.User{
			ID: 1, Username: "admin", Email: "admin@beaute-shop.fr",
			FirstName: "Amélie", LastName: "Durand", IsAdmin: true,
		},
		PasswordHash: hash,
	}
	admin.Profile = models.Profile{ID: 1, User: admin.User, Email: admin.User.Email, CreatedAt: now, UpdatedAt: now}

	customer := &Account{
		User: models.User{
			ID: 2, Username: "claire", Email: "claire@example.com",
			FirstName: "Claire", LastName: "Moreau",
		},
		PasswordHash: hash,
	}
	customer.Profile = models.Profile{
		ID: 2, User: customer.User, Email: customer.User.Email,
		Phone: "0612345678", Address: "12 rue des Lilas, 75011 Paris",
		CreatedAt: now, UpdatedAt: now,
	}

	s.accounts = []*Account{admin, customer}
	s.nextUserID = 3

	s.categories = []*models.Category{
		{ID: 1, Name: "Soins visage", Description: "Crèmes, sérums et masques", Image: "categories/soins-visage.jpg", Slug: "soins-visage", IsActive: true},
		{ID: 2, Name: "Soins corps", Description: "Laits, huiles et gommages", Image: "categories/soins-corps.jpg", Slug: "soins-corps", IsActive: true},
		{ID: 3, Name: "Cheveux", Description: "Shampoings et soins capillaires", Image: "categories/cheveux.jpg", Slug: "cheveux", IsActive: true},
	}

	visage := *s.categories[0]
	corps := *s.categories[1]
	cheveux := *s.categories[2]

	s.products = []*models.Product{
		{
			ID: 1, Name: "Crème hydratante à l'aloe vera", Slug: "creme-hydratante-aloe-vera",
			Description: "Hydratation intense 24h pour tous types de peau.",
			Price:       price(24.90), DiscountPrice: pricePtr(19.90),
			Category: visage, Stock: 25,
			Thumbnail: "products/thumbnails/creme-aloe.jpg", Image: "products/creme-aloe.jpg",
			Ingredients:       "Aloe barbadensis, glycérine végétale, beurre de karité",
			UsageInstructions: "Appliquer matin et soir sur une peau propre.",
			Weight:            "50ml", IsActive: true, IsFeatured: true,
			CreatedAt: now.Add(-96 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 2, Name: "Sérum vitamine C éclat", Slug: "serum-vitamine-c-eclat",
			Description: "Sérum concentré anti-taches et éclat du teint.",
			Price:       price(39.00),
			Category:    visage, Stock: 8,
			Thumbnail: "products/thumbnails/serum-vitc.jpg", Image: "products/serum-vitc.jpg",
			Ingredients:       "Acide ascorbique 15%, acide hyaluronique",
			UsageInstructions: "Quelques gouttes le matin avant la crème de jour.",
			Weight:            "30ml", IsActive: true, IsFeatured: true,
			CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 3, Name: "Masque purifiant à l'argile verte", Slug: "masque-purifiant-argile",
			Description: "Purifie et resserre les pores des peaux mixtes à grasses.",
			Price:       price(14.50),
			Category:    visage, Stock: 0,
			Thumbnail: "products/thumbnails/masque-argile.jpg", Image: "products/masque-argile.jpg",
			Ingredients:       "Argile verte, huile essentielle de tea tree",
			UsageInstructions: "Une à deux fois par semaine, poser 10 minutes puis rincer.",
			Weight:            "75ml", IsActive: true,
			CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 4, Name: "Huile sèche nourrissante", Slug: "huile-seche-nourrissante",
			Description: "Huile multi-usages corps et cheveux au monoï.",
			Price:       price(29.90), DiscountPrice: pricePtr(24.90),
			Category: corps, Stock: 40,
			Thumbnail: "products/thumbnails/huile-seche.jpg", Image: "products/huile-seche.jpg",
			Ingredients:       "Monoï de Tahiti, huile d'argan, huile de coco",
			UsageInstructions: "Appliquer sur peau ou cheveux secs.",
			Weight:            "100ml", IsActive: true, IsFeatured: true,
			CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 5, Name: "Gommage corps au sucre de canne", Slug: "gommage-corps-sucre",
			Description: "Exfolie en douceur et laisse la peau satinée.",
			Price:       price(18.00),
			Category:    corps, Stock: 15,
			Thumbnail: "products/thumbnails/gommage-sucre.jpg", Image: "products/gommage-sucre.jpg",
			Ingredients:       "Sucre de canne, huile d'amande douce",
			UsageInstructions: "Masser sur peau humide puis rincer, une fois par semaine.",
			Weight:            "200g", IsActive: true,
			CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 6, Name: "Shampoing solide doux", Slug: "shampoing-solide-doux",
			Description: "Shampoing solide pour lavages fréquents, sans sulfates.",
			Price:       price(9.90),
			Category:    cheveux, Stock: 60,
			Thumbnail: "products/thumbnails/shampoing-solide.jpg", Image: "products/shampoing-solide.jpg",
			Ingredients:       "Tensioactifs doux d'origine végétale, avoine",
			UsageInstructions: "Faire mousser sur cheveux mouillés puis rincer.",
			Weight:            "80g", IsActive: true,
			CreatedAt: now.Add(-6 * time.Hour), UpdatedAt: now,
		},
		{
			ID: 7, Name: "Ancienne formule retirée", Slug: "ancienne-formule",
			Description: "Produit retiré de la vente.",
			Price:       price(5.00),
			Category:    corps, Stock: 3,
			Weight:      "50ml", IsActive: false,
			CreatedAt: now.Add(-240 * time.Hour), UpdatedAt: now,
		},
	}
	s.nextProductID = 8

	s.coupons = []*models.Coupon{
		{
			ID: 1, Code: "BIENVENUE10", Description: "10% de réduction dès 30€ d'achat",
			DiscountPercent: 10, MinimumAmount: price(30),
			ValidFrom: now.Add(-30 * 24 * time.Hour), ValidTo: now.Add(30 * 24 * time.Hour),
			IsActive: true, UsageLimit: 100,
		},
		{
			ID: 2, Code: "ETE2024", Description: "Offre d'été terminée",
			DiscountPercent: 20, MinimumAmount: price(0),
			ValidFrom: now.Add(-120 * 24 * time.Hour), ValidTo: now.Add(-60 * 24 * time.Hour),
			IsActive: true,
		},
	}

	log.Printf("Seeded %d products, %d categories, %d accounts", len(s.products), len(s.categories), len(s.accounts))
}
