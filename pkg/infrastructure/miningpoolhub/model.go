package miningpoolhub

import "mining-profit/pkg/domain/model"

// profitStatsResponse getminingandprofitsstatistics のレスポンス
type profitStatsResponse struct {
	Success *bool              `json:"success"`
	Return  []model.ProfitStat `json:"return"`
}
