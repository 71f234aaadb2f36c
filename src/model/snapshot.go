package model

type Session struct {
	Uuid      string `json:"uuid"`
	StartedAt int64  `json:"startedAt"`
}

// MarketSnapshot is fetched once at startup and is read-only afterwards.
type MarketSnapshot struct {
	SessionUuid string       `json:"sessionUuid"`
	Currency    string       `json:"currency"`
	Days        int64        `json:"days"`
	Bitcoin     MarketChart  `json:"bitcoin"`
	Ethereum    MarketChart  `json:"ethereum"`
	Global      GlobalMarket `json:"global"`
	FetchedAt   int64        `json:"fetchedAt"`
}
