package rdb

import (
	"time"

	"mining-profit/pkg/domain/model"
)

// Transaction 入出金
type Transaction struct {
	ID     int64
	Coin   string
	T      time.Time
	Amount float64
}

func (Transaction) TableName() string {
	return "transactions"
}

// ToDomainModel ドメインモデルに変換
func (t *Transaction) ToDomainModel() *model.Transaction {
	return &model.Transaction{
		ID:     t.ID,
		Coin:   t.Coin,
		T:      t.T,
		Amount: t.Amount,
	}
}
