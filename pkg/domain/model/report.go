package model

import (
	"bytes"
	"encoding/json"
	"math"
)

// Number 出力用の数値
// NaN と ±Inf は JSON で表現できないため null として書き出す。
type Number float64

// MarshalJSON 有限値はそのまま、非有限値は null
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// EquipmentResult 機材ごとの収益
type EquipmentResult struct {
	Name           string `json:"name"`
	DailyProfitYen Number `json:"daily_profit_yen"`
	YenPerKWh      Number `json:"yen_per_kwh"`
}

// CoinResult コインごとの収益
type CoinResult struct {
	Name                      string            `json:"name"`
	Algo                      string            `json:"algo"`
	PriceYen                  Number            `json:"price_yen"`
	BestYenPerKWh             Number            `json:"best_yen_per_kwh"`
	DailyProfitYenPerHashrate Number            `json:"daily_profit_yen_per_hashrate"`
	Equipments                []EquipmentResult `json:"equipments"`
}

// BestEquipment yen_per_kwh が最大の機材
func (c *CoinResult) BestEquipment() *EquipmentResult {
	var best *EquipmentResult
	for i := range c.Equipments {
		e := &c.Equipments[i]
		if best == nil || e.YenPerKWh > best.YenPerKWh {
			best = e
		}
	}
	return best
}

// CoinTable 登録順を保持したコイン名 -> 収益の表
type CoinTable struct {
	names []string
	coins map[string]*CoinResult
}

// NewCoinTable 生成
func NewCoinTable() *CoinTable {
	return &CoinTable{
		names: []string{},
		coins: map[string]*CoinResult{},
	}
}

// InsertIfAbsent 未登録のときだけ追加し、登録済みのエントリを返す
func (t *CoinTable) InsertIfAbsent(c *CoinResult) *CoinResult {
	if existing, ok := t.coins[c.Name]; ok {
		return existing
	}
	t.names = append(t.names, c.Name)
	t.coins[c.Name] = c
	return c
}

// Get コイン名で取得
func (t *CoinTable) Get(name string) (*CoinResult, bool) {
	c, ok := t.coins[name]
	return c, ok
}

// Names 登録順のコイン名
func (t *CoinTable) Names() []string {
	return append([]string{}, t.names...)
}

// Len 登録数
func (t *CoinTable) Len() int {
	return len(t.names)
}

// MarshalJSON 登録順のJSONオブジェクトとして書き出す
func (t *CoinTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(t.coins[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON JSONオブジェクトをキーの出現順に読み込む
func (t *CoinTable) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return err
	}
	table := NewCoinTable()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		var c CoinResult
		if err := dec.Decode(&c); err != nil {
			return err
		}
		name, _ := tok.(string)
		if c.Name == "" {
			c.Name = name
		}
		table.names = append(table.names, name)
		table.coins[name] = &c
	}
	*t = *table
	return nil
}

// Report 出力ドキュメント
// workers 以降は後段の利用者向けに予約された固定値。
type Report struct {
	BTCJPY         Number        `json:"btcjpy"`
	USDJPY         Number        `json:"usdjpy"`
	Coins          *CoinTable    `json:"coins"`
	Workers        []interface{} `json:"workers"`
	DailyProfitYen Number        `json:"daily_profit_yen"`
	BalanceYen     Number        `json:"balance_yen"`
	Earnings24hYen Number        `json:"earnings_24h_yen"`
}

// NewReport 生成
func NewReport(btcjpy, usdjpy float64) *Report {
	return &Report{
		BTCJPY:  Number(btcjpy),
		USDJPY:  Number(usdjpy),
		Coins:   NewCoinTable(),
		Workers: []interface{}{},
	}
}
