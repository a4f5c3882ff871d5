package model

import "errors"

// CurrencyType 通貨種別
type CurrencyType string

const (
	// JPY 日本円
	JPY CurrencyType = "JPY"
	// BTC ビットコイン
	BTC CurrencyType = "BTC"
	// USD 米ドル
	USD CurrencyType = "USD"
	// EUR ユーロ
	EUR CurrencyType = "EUR"
)

const (
	// Bitcoin ビットコインのコイン名
	Bitcoin = "bitcoin"

	// AlgoSHA256 bitcoin のアルゴリズム名
	AlgoSHA256 = "sha256"
	// AlgoEthash Ethash
	AlgoEthash = "Ethash"
	// AlgoX16r X16r
	AlgoX16r = "X16r"
)

const (
	// BitcoinBestYenPerKWh bitcoin の電力単価の基準値
	BitcoinBestYenPerKWh = 100000.0
)

var (
	// ErrCoinNotFound 収益統計に存在しないコイン
	ErrCoinNotFound = errors.New("coin is not in profit statistics")
	// ErrInvalidPayload 取得したデータの内容が不正
	ErrInvalidPayload = errors.New("invalid payload")
)
