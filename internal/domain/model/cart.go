package model

import "github.com/shopspring/decimal"

// カート行。productはクライアントが取得済みのスナップショット
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// 小計（price × quantity の合計）。毎回素直に計算する
func CartSubtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// 数量の合計
func CartItemCount(items []CartItem) int64 {
	var n int64
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
