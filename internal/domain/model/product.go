package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カテゴリはUI側の固定セット（モデルでは強制しない）
const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home"
	CategorySports      = "Sports"
)

type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL      string          `gorm:"type:text" json:"image_url"`
	Category      string          `gorm:"type:varchar(50);not null" json:"category"`
	StockQuantity int64           `gorm:"not null;default:0" json:"stock_quantity"`
	Featured      bool            `gorm:"not null;default:false" json:"featured"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
