package fixer

import "mining-profit/pkg/domain/model"

// latestResponse /api/latest のレスポンス
type latestResponse struct {
	Success *bool                          `json:"success"`
	Base    string                         `json:"base"`
	Date    string                         `json:"date"`
	Rates   map[model.CurrencyType]float64 `json:"rates"`
	Error   *apiError                      `json:"error"`
}

type apiError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}
