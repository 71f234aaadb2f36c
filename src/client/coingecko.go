package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"log"
	"net/url"
	"strings"
)

const CoinGeckoDSN = "https://api.coingecko.com/api/v3"
const CoinGeckoApiKeyHeader = "x-cg-demo-api-key"

type MarketDataAPIInterface interface {
	FetchMarketChart(coinId string, days int64, currency string) (model.MarketChart, error)
	FetchGlobalData() (model.GlobalMarket, error)
}

type CoinGecko struct {
	HttpClient HttpClientInterface
	DSN        string
	ApiKey     string
}

func (c *CoinGecko) FetchMarketChart(coinId string, days int64, currency string) (model.MarketChart, error) {
	var chart model.MarketChart

	if coinId == "" {
		return chart, errors.New("CoinGecko: coin id is required")
	}

	if days <= 0 {
		return chart, errors.New(fmt.Sprintf("CoinGecko: days must be positive, %d given", days))
	}

	query := url.Values{}
	query.Set("vs_currency", currency)
	query.Set("days", fmt.Sprintf("%d", days))

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?%s", c.getDSN(), url.PathEscape(coinId), query.Encode())

	body, err := c.HttpClient.Get(endpoint, c.getHeaders())
	if err != nil {
		log.Printf("[%s] FetchMarketChart: %s", coinId, err.Error())
		return chart, err
	}

	err = json.Unmarshal(body, &chart)
	if err != nil {
		return chart, errors.New(fmt.Sprintf("[%s] market chart decode: %s", coinId, err.Error()))
	}

	return chart, nil
}

func (c *CoinGecko) FetchGlobalData() (model.GlobalMarket, error) {
	var response model.GlobalMarketResponse

	body, err := c.HttpClient.Get(fmt.Sprintf("%s/global", c.getDSN()), c.getHeaders())
	if err != nil {
		log.Printf("FetchGlobalData: %s", err.Error())
		return response.Data, err
	}

	err = json.Unmarshal(body, &response)
	if err != nil {
		return response.Data, errors.New(fmt.Sprintf("global data decode: %s", err.Error()))
	}

	return response.Data, nil
}

func (c *CoinGecko) getDSN() string {
	if c.DSN == "" {
		return CoinGeckoDSN
	}

	return strings.TrimRight(c.DSN, "/")
}

func (c *CoinGecko) getHeaders() map[string]string {
	headers := make(map[string]string)

	if c.ApiKey != "" {
		headers[CoinGeckoApiKeyHeader] = c.ApiKey
	}

	return headers
}
