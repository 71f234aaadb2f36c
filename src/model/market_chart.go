package model

const CoinBitcoin = "bitcoin"
const CoinEthereum = "ethereum"

type MarketChart struct {
	Prices       []MarketPoint `json:"prices"`
	MarketCaps   []MarketPoint `json:"market_caps"`
	TotalVolumes []MarketPoint `json:"total_volumes"`
}

func (m MarketChart) GetPriceValues() []float64 {
	return pointValues(m.Prices)
}

func (m MarketChart) GetVolumeValues() []float64 {
	return pointValues(m.TotalVolumes)
}

func pointValues(points []MarketPoint) []float64 {
	values := make([]float64, 0, len(points))
	for _, point := range points {
		values = append(values, point.GetValue())
	}

	return values
}
