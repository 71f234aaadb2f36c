package service

import (
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

var ErrMissingKey = errors.New("missing key")
var ErrSeriesLengthMismatch = errors.New("series length mismatch")

type ComparisonSeries struct {
	Days     []float64
	Bitcoin  []float64
	Ethereum []float64
}

func (c ComparisonSeries) Len() int {
	return len(c.Days)
}

// DayIndex returns 0..n-1.
func DayIndex(n int) []float64 {
	days := make([]float64, n)
	for i := range days {
		days[i] = float64(i)
	}

	return days
}

func PriceSeries(btc model.MarketChart, eth model.MarketChart) (ComparisonSeries, error) {
	if btc.Prices == nil {
		return ComparisonSeries{}, fmt.Errorf("%w: %s prices", ErrMissingKey, model.CoinBitcoin)
	}
	if eth.Prices == nil {
		return ComparisonSeries{}, fmt.Errorf("%w: %s prices", ErrMissingKey, model.CoinEthereum)
	}

	return comparison(btc.GetPriceValues(), eth.GetPriceValues(), "prices")
}

func VolumeSeries(btc model.MarketChart, eth model.MarketChart) (ComparisonSeries, error) {
	if btc.TotalVolumes == nil {
		return ComparisonSeries{}, fmt.Errorf("%w: %s total_volumes", ErrMissingKey, model.CoinBitcoin)
	}
	if eth.TotalVolumes == nil {
		return ComparisonSeries{}, fmt.Errorf("%w: %s total_volumes", ErrMissingKey, model.CoinEthereum)
	}

	return comparison(btc.GetVolumeValues(), eth.GetVolumeValues(), "total_volumes")
}

func comparison(btc []float64, eth []float64, key string) (ComparisonSeries, error) {
	if len(btc) != len(eth) {
		return ComparisonSeries{}, fmt.Errorf(
			"%w: %s has %d points for %s and %d for %s",
			ErrSeriesLengthMismatch,
			key,
			len(btc),
			model.CoinBitcoin,
			len(eth),
			model.CoinEthereum,
		)
	}

	return ComparisonSeries{
		Days:     DayIndex(len(btc)),
		Bitcoin:  btc,
		Ethereum: eth,
	}, nil
}

// MarketCapShares derives the "others" share as 100 - btc - eth, negative values included.
func MarketCapShares(global model.GlobalMarket) (model.MarketCapShare, error) {
	if global.MarketCapPercentage == nil {
		return model.MarketCapShare{}, fmt.Errorf("%w: market_cap_percentage", ErrMissingKey)
	}

	btc, exist := global.MarketCapPercentage[model.SymbolBitcoin]
	if !exist {
		return model.MarketCapShare{}, fmt.Errorf("%w: market_cap_percentage.%s", ErrMissingKey, model.SymbolBitcoin)
	}

	eth, exist := global.MarketCapPercentage[model.SymbolEthereum]
	if !exist {
		return model.MarketCapShare{}, fmt.Errorf("%w: market_cap_percentage.%s", ErrMissingKey, model.SymbolEthereum)
	}

	return model.MarketCapShare{
		Bitcoin:  btc,
		Ethereum: eth,
		Others:   100 - (btc + eth),
	}, nil
}
