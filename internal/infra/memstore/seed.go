package memstore

import (
	"time"

	"github.com/shopspring/decimal"

	"shop/internal/domain/model"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// デモカタログ。DBが無くてもストアとして成立する量だけ入れておく
func seedProducts(now time.Time) []model.Product {
	seed := []struct {
		name     string
		desc     string
		price    string
		image    string
		category string
		stock    int64
		featured bool
	}{
		{"Wireless Headphones", "Premium wireless headphones with noise cancellation and 30-hour battery life", "199.99", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", model.CategoryElectronics, 50, true},
		{"Smart Watch", "Fitness tracking smartwatch with heart rate monitor and GPS", "299.99", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", model.CategoryElectronics, 35, true},
		{"Running Shoes", "Professional running shoes with advanced cushioning technology", "129.99", "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500", model.CategoryFashion, 100, false},
		{"Backpack", "Durable travel backpack with laptop compartment", "79.99", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500", model.CategoryFashion, 75, false},
		{"Coffee Maker", "Automatic coffee maker with programmable timer", "89.99", "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500", model.CategoryHome, 40, false},
		{"Desk Lamp", "LED desk lamp with adjustable brightness and color temperature", "49.99", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500", model.CategoryHome, 60, false},
		{"Yoga Mat", "Non-slip yoga mat with carrying strap", "34.99", "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500", model.CategorySports, 120, true},
		{"Water Bottle", "Insulated stainless steel water bottle, 32oz", "24.99", "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500", model.CategorySports, 200, false},
		{"Bluetooth Speaker", "Portable waterproof Bluetooth speaker", "69.99", "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500", model.CategoryElectronics, 80, true},
		{"Sunglasses", "Polarized UV protection sunglasses", "59.99", "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500", model.CategoryFashion, 90, false},
		{"Plant Pot", "Ceramic plant pot with drainage hole", "19.99", "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500", model.CategoryHome, 150, false},
		{"Dumbbell Set", "Adjustable dumbbell set, 5-25 lbs", "149.99", "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=500", model.CategorySports, 45, false},
	}

	products := make([]model.Product, 0, len(seed))
	for i, s := range seed {
		products = append(products, model.Product{
			ID:            int64(i + 1),
			Name:          s.name,
			Description:   s.desc,
			Price:         price(s.price),
			ImageURL:      s.image,
			Category:      s.category,
			StockQuantity: s.stock,
			Featured:      s.featured,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return products
}
