package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type TimestampMilli int64

func (t TimestampMilli) Value() int64 {
	return int64(t)
}

func (t TimestampMilli) Time() time.Time {
	return time.UnixMilli(t.Value())
}

// MarketPoint is a [timestamp, value] pair as returned by the market_chart endpoint.
type MarketPoint [2]float64

func (p *MarketPoint) UnmarshalJSON(b []byte) error {
	var values []float64
	err := json.Unmarshal(b, &values)
	if err != nil {
		return errors.New(fmt.Sprintf("MarketPoint: unsupported data type given, %s", err.Error()))
	}

	if len(values) != 2 {
		return errors.New(fmt.Sprintf("MarketPoint: expected [timestamp, value] pair, got %d elements", len(values)))
	}

	p[0] = values[0]
	p[1] = values[1]

	return nil
}

func (p MarketPoint) GetTimestamp() TimestampMilli {
	return TimestampMilli(int64(p[0]))
}

func (p MarketPoint) GetValue() float64 {
	return p[1]
}
