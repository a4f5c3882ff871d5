package usecase

import (
	"context"
	"fmt"
	"strings"

	"mining-profit/pkg/domain"
	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/domain/repository"
)

// Reporter レートと機材ごとの最良値を通知する
type Reporter struct {
	logger   domain.Logger
	notifier repository.Notifier
}

// NewReporter 生成
func NewReporter(l domain.Logger, n repository.Notifier) *Reporter {
	return &Reporter{logger: l, notifier: n}
}

// Notify 通知する、失敗してもログに残すだけ
func (r *Reporter) Notify(ctx context.Context, report *model.Report) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.PostText(ctx, Summarize(report)); err != nil {
		r.logger.Warn("failed to notify report: %v", err)
	}
}

// Summarize 通知用の要約
func Summarize(report *model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BTC/JPY: %.0f, USD/JPY: %.2f\n", float64(report.BTCJPY), float64(report.USDJPY))
	for _, name := range report.Coins.Names() {
		coin, _ := report.Coins.Get(name)
		best := coin.BestEquipment()
		if best == nil {
			fmt.Fprintf(&b, "%s (%s): %.0f yen, no equipment\n", coin.Name, coin.Algo, float64(coin.PriceYen))
			continue
		}
		fmt.Fprintf(&b, "%s (%s): %.0f yen, best %s %.2f yen/kWh (%.0f yen/day)\n",
			coin.Name, coin.Algo, float64(coin.PriceYen), best.Name, float64(best.YenPerKWh), float64(best.DailyProfitYen))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
