package model

const SymbolBitcoin = "btc"
const SymbolEthereum = "eth"

type GlobalMarket struct {
	ActiveCryptocurrencies          int64              `json:"active_cryptocurrencies"`
	UpcomingIcos                    int64              `json:"upcoming_icos"`
	OngoingIcos                     int64              `json:"ongoing_icos"`
	EndedIcos                       int64              `json:"ended_icos"`
	Markets                         int64              `json:"markets"`
	TotalMarketCap                  map[string]float64 `json:"total_market_cap"`
	TotalVolume                     map[string]float64 `json:"total_volume"`
	MarketCapPercentage             map[string]float64 `json:"market_cap_percentage"`
	MarketCapChangePercentage24hUsd float64            `json:"market_cap_change_percentage_24h_usd"`
	UpdatedAt                       int64              `json:"updated_at"`
}

type GlobalMarketResponse struct {
	Data GlobalMarket `json:"data"`
}

type MarketCapShare struct {
	Bitcoin  float64 `json:"bitcoin"`
	Ethereum float64 `json:"ethereum"`
	Others   float64 `json:"others"`
}

func (s MarketCapShare) Sum() float64 {
	return s.Bitcoin + s.Ethereum + s.Others
}
