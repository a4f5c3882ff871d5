package repository

import (
	"context"
	"time"

	"mining-profit/pkg/domain/model"
)

// ExchangeRateRepository 為替レートの取得元
type ExchangeRateRepository interface {
	GetExchangeRates(ctx context.Context) (*model.ExchangeRates, error)
}

// ProfitStatsRepository 採掘収益統計の取得元
type ProfitStatsRepository interface {
	GetProfitStats(ctx context.Context) (model.ProfitStats, error)
}

// EquipmentRepository 機材カタログの取得元
type EquipmentRepository interface {
	GetEquipments() ([]model.Equipment, error)
}

// SchemaRepository スキーマの準備
type SchemaRepository interface {
	EnsureSchema(ctx context.Context) error
}

// TransactionRepository 入出金履歴
type TransactionRepository interface {
	GetTransactions(ctx context.Context, coin string, since *time.Duration) ([]model.Transaction, error)
}
