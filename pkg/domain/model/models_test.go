package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"mining-profit/pkg/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipment_UnmarshalKeepsOrder(t *testing.T) {
	var equipments []model.Equipment
	err := json.Unmarshal([]byte(`[
		{"name": "gtx1070", "performance": {"zcash": [430, 150], "ethereum": [30, 150], "bitcoin-gold": [0.43, 150]}},
		{"name": "cpu", "performance": {}}
	]`), &equipments)
	require.NoError(t, err)
	require.Len(t, equipments, 2)

	assert.Equal(t, "gtx1070", equipments[0].Name)
	assert.Equal(t, model.Performances{
		{CoinName: "zcash", Performance: model.Performance{Hashrate: 430, Wattage: 150}},
		{CoinName: "ethereum", Performance: model.Performance{Hashrate: 30, Wattage: 150}},
		{CoinName: "bitcoin-gold", Performance: model.Performance{Hashrate: 0.43, Wattage: 150}},
	}, equipments[0].Performance)
	assert.Empty(t, equipments[1].Performance)
}

func TestEquipment_UnmarshalError(t *testing.T) {
	tests := map[string]string{
		"performance is array":  `{"name":"x","performance":[1,2]}`,
		"tuple too short":       `{"name":"x","performance":{"zcash":[1]}}`,
		"tuple is not numbers":  `{"name":"x","performance":{"zcash":["a","b"]}}`,
		"performance is string": `{"name":"x","performance":"zcash"}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var e model.Equipment
			assert.Error(t, json.Unmarshal([]byte(in), &e))
		})
	}
}

func TestCoinTable_InsertIfAbsent(t *testing.T) {
	table := model.NewCoinTable()
	first := table.InsertIfAbsent(&model.CoinResult{Name: "zcash", Algo: "Equihash", DailyProfitYenPerHashrate: 1})
	second := table.InsertIfAbsent(&model.CoinResult{Name: "zcash", Algo: "other", DailyProfitYenPerHashrate: 2})

	assert.Same(t, first, second)
	assert.Equal(t, 1, table.Len())
	got, ok := table.Get("zcash")
	require.True(t, ok)
	assert.Equal(t, "Equihash", got.Algo)
	assert.Equal(t, model.Number(1), got.DailyProfitYenPerHashrate)
}

func TestCoinTable_JSONKeepsInsertionOrder(t *testing.T) {
	table := model.NewCoinTable()
	for _, name := range []string{"zcash", "bitcoin", "monacoin"} {
		table.InsertIfAbsent(&model.CoinResult{Name: name, Equipments: []model.EquipmentResult{}})
	}

	b, err := json.Marshal(table)
	require.NoError(t, err)
	assert.Regexp(t, `^\{"zcash":\{.*\},"bitcoin":\{.*\},"monacoin":\{.*\}\}$`, string(b))

	decoded := model.NewCoinTable()
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.Equal(t, []string{"zcash", "bitcoin", "monacoin"}, decoded.Names())
}

func TestCoinTable_Empty(t *testing.T) {
	b, err := json.Marshal(model.NewCoinTable())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestNumber_MarshalJSON(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want string
	}{
		"integer":  {in: 1000000, want: "1000000"},
		"fraction": {in: 0.5, want: "0.5"},
		"+Inf":     {in: math.Inf(1), want: "null"},
		"-Inf":     {in: math.Inf(-1), want: "null"},
		"NaN":      {in: math.NaN(), want: "null"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(model.Number(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestProfitStats_Lookup(t *testing.T) {
	stats := model.NewProfitStats([]model.ProfitStat{
		{CoinName: "zcash", Algo: "Equihash", Profit: 1},
		{CoinName: "zcash", Algo: "Equihash", Profit: 2},
	})

	s, err := stats.Lookup("zcash")
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Profit)

	_, err = stats.Lookup("dogecoin")
	assert.ErrorIs(t, err, model.ErrCoinNotFound)
	assert.Contains(t, err.Error(), "dogecoin")
}

func TestExchangeRates_CrossRate(t *testing.T) {
	r := model.ExchangeRates{Rates: map[model.CurrencyType]float64{model.JPY: 130, model.BTC: 0.00002, model.USD: 1.1}}
	assert.InDelta(t, 6500000.0, r.CrossRate(model.BTC, model.JPY), 0.000001)
	assert.InDelta(t, 130/1.1, r.CrossRate(model.USD, model.JPY), 0.000001)
}

func TestCoinResult_BestEquipment(t *testing.T) {
	c := model.CoinResult{Equipments: []model.EquipmentResult{
		{Name: "a", YenPerKWh: 10},
		{Name: "b", YenPerKWh: 30},
		{Name: "c", YenPerKWh: 20},
	}}
	assert.Equal(t, "b", c.BestEquipment().Name)
	assert.Nil(t, (&model.CoinResult{}).BestEquipment())
}
