package usecase

import (
	"context"
	"fmt"

	"mining-profit/pkg/domain"
	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/domain/repository"

	"golang.org/x/sync/errgroup"
)

// Updater 収益レポートの作成
type Updater struct {
	logger      domain.Logger
	rateRepo    repository.ExchangeRateRepository
	statsRepo   repository.ProfitStatsRepository
	catalogRepo repository.EquipmentRepository
}

// NewUpdater 生成
func NewUpdater(
	l domain.Logger,
	rateRepo repository.ExchangeRateRepository,
	statsRepo repository.ProfitStatsRepository,
	catalogRepo repository.EquipmentRepository,
) *Updater {
	return &Updater{
		logger:      l,
		rateRepo:    rateRepo,
		statsRepo:   statsRepo,
		catalogRepo: catalogRepo,
	}
}

// Update 機材カタログを読み、為替レートと収益統計を並行に取得してからレポートを作る
func (u *Updater) Update(ctx context.Context) (*model.Report, error) {
	equipments, err := u.catalogRepo.GetEquipments()
	if err != nil {
		return nil, err
	}
	u.logger.Debug("equipments: %d", len(equipments))

	var (
		rates *model.ExchangeRates
		stats model.ProfitStats
	)
	// 片方が失敗してももう片方は最後まで実行する
	var eg errgroup.Group
	eg.Go(func() error {
		r, err := u.rateRepo.GetExchangeRates(ctx)
		if err != nil {
			return fmt.Errorf("failed to get exchange rates: %w", err)
		}
		rates = r
		return nil
	})
	eg.Go(func() error {
		s, err := u.statsRepo.GetProfitStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get profit stats: %w", err)
		}
		stats = s
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report, err := Merge(rates, stats, equipments)
	if err != nil {
		return nil, err
	}
	u.logger.Info("btcjpy: %.0f, usdjpy: %.2f, coins: %d", float64(report.BTCJPY), float64(report.USDJPY), report.Coins.Len())
	return report, nil
}
