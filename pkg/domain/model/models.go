package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExchangeRates EURを基準とした為替レート
type ExchangeRates struct {
	Base  string                   `json:"base"`
	Rates map[CurrencyType]float64 `json:"rates"`
}

// CrossRate from 1単位あたりの to の量
func (r *ExchangeRates) CrossRate(from, to CurrencyType) float64 {
	return r.Rates[to] / r.Rates[from]
}

// ProfitStat コインごとの採掘収益統計
type ProfitStat struct {
	CoinName        string  `json:"coin_name"`
	HighestBuyPrice float64 `json:"highest_buy_price"`
	Algo            string  `json:"algo"`
	Profit          float64 `json:"profit"`
}

// ProfitStats コイン名をキーにした採掘収益統計
type ProfitStats map[string]ProfitStat

// NewProfitStats 生成
func NewProfitStats(stats []ProfitStat) ProfitStats {
	m := ProfitStats{}
	for _, s := range stats {
		m[s.CoinName] = s
	}
	return m
}

// Lookup コイン名で検索
func (s ProfitStats) Lookup(coinName string) (*ProfitStat, error) {
	stat, ok := s[coinName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCoinNotFound, coinName)
	}
	return &stat, nil
}

// Performance 採掘性能（ハッシュレート, 消費電力W）
type Performance struct {
	Hashrate float64
	Wattage  float64
}

// UnmarshalJSON [hashrate, wattage] 形式を読み込む
func (p *Performance) UnmarshalJSON(b []byte) error {
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v) < 2 {
		return fmt.Errorf("performance must be [hashrate, wattage], got: %s", b)
	}
	p.Hashrate, p.Wattage = v[0], v[1]
	return nil
}

// MarshalJSON [hashrate, wattage] 形式で書き出す
func (p Performance) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Hashrate, p.Wattage})
}

// CoinPerformance コインと採掘性能の組
type CoinPerformance struct {
	CoinName string
	Performance
}

// Performances 記述順を保持したコインごとの採掘性能
type Performances []CoinPerformance

// UnmarshalJSON JSONオブジェクトをキーの出現順に読み込む
func (ps *Performances) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	t, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("performance must be an object, got: %s", b)
	}

	list := Performances{}
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		coinName, ok := t.(string)
		if !ok {
			return fmt.Errorf("unexpected token in performance: %v", t)
		}
		var p Performance
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("coin %s: %w", coinName, err)
		}
		list = append(list, CoinPerformance{CoinName: coinName, Performance: p})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*ps = list
	return nil
}

// Equipment 採掘機材
type Equipment struct {
	Name        string       `json:"name"`
	Performance Performances `json:"performance"`
}
