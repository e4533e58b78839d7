// internal/store/memory/seed.go
package memory

import (
	"context"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

// SeedSampleProducts loads the demo catalog used when running without a
// database, so the storefront has something to render.
func SeedSampleProducts(ctx context.Context, products store.ProductStore) error {
	samples := []models.Product{
		{
			Title:            "Wireless Headphones X100",
			Price:            99.99,
			ShortDescription: "Comfort fit, 30h battery, noise reduction.",
			Details:          "Over-ear wireless headphones with balanced sound and lightweight design.",
			FAQ: models.FAQList{
				{Question: "Does it support Bluetooth 5.3?", Answer: "Yes"},
				{Question: "Can I use while charging?", Answer: "Yes"},
			},
			Features: []string{
				"Hybrid noise reduction",
				"30 hours battery life",
				"Fast charging via USB-C",
			},
			TechnicalDetails: models.JSONB{
				"drivers":   "40mm",
				"bluetooth": "5.3",
				"weight":    "240g",
			},
		},
		{
			Title:            "Smartwatch S20",
			Price:            129.0,
			ShortDescription: "Heart rate, GPS, waterproof 5ATM.",
			Details:          "Fitness smartwatch with AMOLED display and multi-day battery.",
			FAQ: models.FAQList{
				{Question: "Works with iOS and Android?", Answer: "Yes"},
				{Question: "Battery life?", Answer: "Up to 7 days"},
			},
			Features: []string{"AMOLED display", "GPS + GLONASS", "Sleep tracking"},
			TechnicalDetails: models.JSONB{
				"chipset":         "Dual-core",
				"sensors":         "HRM, SpO2, GPS",
				"waterResistance": "5ATM",
			},
		},
	}

	for i := range samples {
		if err := products.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}
	return nil
}
