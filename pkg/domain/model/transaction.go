package model

import "time"

// Transaction 入出金
type Transaction struct {
	ID     int64     `json:"id"`
	Coin   string    `json:"coin"`
	T      time.Time `json:"t"`
	Amount float64   `json:"amount"`
}
