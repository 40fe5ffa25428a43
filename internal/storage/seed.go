package storage

import (
	"github.com/shopspring/decimal"

	"github.com/guetofya/storefront/internal/models"
)

// SeedProducts is the initial catalog, used when no product collection
// has been stored yet.
func SeedProducts() []models.Product {
	shirtSizes := []string{"P", "M", "G", "GG", "EXG"}
	hoodieSizes := []string{"P", "M", "G", "GG"}
	shortsSizes := []string{"38", "40", "42", "44", "46"}

	return []models.Product{
		{
			ID:          "c1",
			Name:        "Camiseta Chronic 1",
			Price:       decimal.NewFromFloat(64.99),
			Description: "Camiseta streetwear original Chronic. Estampa de alta qualidade e durabilidade.",
			Images:      []string{"https://i.imgur.com/2c7168K.png", "https://i.imgur.com/lCyxGCB.png"},
			Sizes:       shirtSizes,
			Category:    models.CategoryCamisetas,
			Stock:       100,
		},
		{
			ID:          "c2",
			Name:        "Camiseta Chronic 2",
			Price:       decimal.NewFromFloat(64.99),
			Description: "Camiseta streetwear original Chronic. Conforto e estilo urbano.",
			Images:      []string{"https://i.imgur.com/1ERKSbB.png", "https://i.imgur.com/NLquKDm.png"},
			Sizes:       shirtSizes,
			Category:    models.CategoryCamisetas,
			Stock:       100,
		},
		{
			ID:          "c3",
			Name:        "Camiseta Chronic 3",
			Price:       decimal.NewFromFloat(64.99),
			Description: "Camiseta streetwear original Chronic. Design exclusivo da coleção.",
			Images:      []string{"https://i.imgur.com/T818GPO.png", "https://i.imgur.com/8xYparx.png"},
			Sizes:       shirtSizes,
			Category:    models.CategoryCamisetas,
			Stock:       100,
		},
		{
			ID:          "c4",
			Name:        "Camiseta Chronic 4",
			Price:       decimal.NewFromFloat(64.99),
			Description: "Camiseta streetwear original Chronic. Tecido premium 100% algodão.",
			Images:      []string{"https://i.imgur.com/8G4m80q.png", "https://i.imgur.com/jQz2dSl.png"},
			Sizes:       shirtSizes,
			Category:    models.CategoryCamisetas,
			Stock:       100,
		},
		{
			ID:          "c5",
			Name:        "Camiseta Chronic 5",
			Price:       decimal.NewFromFloat(64.99),
			Description: "Camiseta streetwear original Chronic. Arte urbana autêntica.",
			Images:      []string{"https://i.imgur.com/JdmMMuc.png", "https://i.imgur.com/w9paFXw.png"},
			Sizes:       shirtSizes,
			Category:    models.CategoryCamisetas,
			Stock:       100,
		},
		{
			ID:          "b1",
			Name:        "Boné Chronic 1",
			Price:       decimal.NewFromFloat(90.00),
			Description: "Boné aba reta estruturado. Ajuste snapback.",
			Images:      []string{"https://i.imgur.com/i1j2zkz.png"},
			Sizes:       []string{"ÚNICO"},
			Category:    models.CategoryBones,
			Stock:       50,
		},
		{
			ID:          "b2",
			Name:        "Boné Chronic 2",
			Price:       decimal.NewFromFloat(90.00),
			Description: "Boné estilo dad hat. Bordado frontal.",
			Images:      []string{"https://i.imgur.com/j7TRXya.png"},
			Sizes:       []string{"ÚNICO"},
			Category:    models.CategoryBones,
			Stock:       50,
		},
		{
			ID:          "m1",
			Name:        "Moletom Chronic 1",
			Price:       decimal.NewFromFloat(150.00),
			Description: "Moletom canguru com capuz. Flanelado interno para máximo conforto.",
			Images:      []string{"https://i.imgur.com/sF84OSq.png", "https://i.imgur.com/EE9X9DH.png"},
			Sizes:       hoodieSizes,
			Category:    models.CategoryMoletons,
			Stock:       30,
		},
		{
			ID:          "m2",
			Name:        "Moletom Chronic 2",
			Price:       decimal.NewFromFloat(120.00),
			Description: "Moletom careca (sem capuz). Estampa full print nas mangas.",
			Images:      []string{"https://i.imgur.com/ajcwBju.png", "https://i.imgur.com/qYnCcuK.png"},
			Sizes:       hoodieSizes,
			Category:    models.CategoryMoletons,
			Stock:       30,
		},
		{
			ID:          "ber1",
			Name:        "Bermuda Chronic 1",
			Price:       decimal.NewFromFloat(70.00),
			Description: "Bermuda tactel leve, secagem rápida. Ideal para o dia a dia.",
			Images:      []string{"https://i.imgur.com/WpoJgbS.png", "https://i.imgur.com/aCyQPXm.png"},
			Sizes:       shortsSizes,
			Category:    models.CategoryBermudas,
			Stock:       40,
		},
		{
			ID:          "ber2",
			Name:        "Bermuda Chronic 2",
			Price:       decimal.NewFromFloat(70.00),
			Description: "Bermuda cargo com bolsos laterais funcionais.",
			Images:      []string{"https://i.imgur.com/7iIJ6ve.png", "https://i.imgur.com/HO1DBMs.png"},
			Sizes:       shortsSizes,
			Category:    models.CategoryBermudas,
			Stock:       40,
		},
	}
}
