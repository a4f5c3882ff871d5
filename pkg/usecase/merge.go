package usecase

import (
	"fmt"

	"mining-profit/pkg/domain/model"
)

// HashrateScale 収益統計のハッシュレート単位を機材カタログの単位に合わせる倍率
func HashrateScale(algo string) float64 {
	if algo == model.AlgoEthash || algo == model.AlgoX16r {
		return 1000.0
	}
	return 1.0
}

// Merge 為替レート・収益統計・機材カタログから収益レポートを作る
func Merge(rates *model.ExchangeRates, stats model.ProfitStats, equipments []model.Equipment) (*model.Report, error) {
	btcjpy := rates.CrossRate(model.BTC, model.JPY)
	usdjpy := rates.CrossRate(model.USD, model.JPY)
	report := model.NewReport(btcjpy, usdjpy)

	bitcoin, err := stats.Lookup(model.Bitcoin)
	if err != nil {
		return nil, err
	}
	report.Coins.InsertIfAbsent(&model.CoinResult{
		Name:                      model.Bitcoin,
		Algo:                      model.AlgoSHA256,
		PriceYen:                  model.Number(bitcoin.HighestBuyPrice * btcjpy),
		BestYenPerKWh:             model.BitcoinBestYenPerKWh,
		DailyProfitYenPerHashrate: 0,
		Equipments:                []model.EquipmentResult{},
	})

	for _, equipment := range equipments {
		for _, p := range equipment.Performance {
			stat, err := stats.Lookup(p.CoinName)
			if err != nil {
				return nil, fmt.Errorf("check equipments of %s: %w", equipment.Name, err)
			}

			scale := HashrateScale(stat.Algo)
			perHashrate := stat.Profit * btcjpy * scale / 1e9

			// 既存のエントリは上書きしない
			coin := report.Coins.InsertIfAbsent(&model.CoinResult{
				Name:                      p.CoinName,
				Algo:                      stat.Algo,
				PriceYen:                  model.Number(stat.HighestBuyPrice * btcjpy),
				BestYenPerKWh:             0,
				DailyProfitYenPerHashrate: model.Number(perHashrate),
				Equipments:                []model.EquipmentResult{},
			})

			hashrate := p.Hashrate
			// X16r は対象外
			if stat.Algo == model.AlgoEthash {
				hashrate *= scale
			}
			dailyProfitYen := perHashrate * hashrate

			coin.Equipments = append(coin.Equipments, model.EquipmentResult{
				Name:           equipment.Name,
				DailyProfitYen: model.Number(dailyProfitYen),
				YenPerKWh:      model.Number(dailyProfitYen / (p.Wattage * 24 / 1000.0)),
			})
		}
	}

	return report, nil
}
