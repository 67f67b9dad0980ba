// Package payment は外部決済プロセッサとの境界。
// このリポジトリでは決済は擬似で、成功/失敗のコールバック照合はしない。
package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Intent struct {
	ID           string
	ClientSecret string
}

type Metadata struct {
	CustomerEmail string
	CustomerName  string
}

type Provider interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Intent, error)
}

type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Intent, error) {
	id := "demo_" + uuid.NewString()
	return Intent{
		ID:           id,
		ClientSecret: id + "_secret",
	}, nil
}
