package service

import (
	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/repository"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
	"log"
)

type MarketServiceInterface interface {
	Load() (model.MarketSnapshot, error)
}

type MarketService struct {
	MarketDataAPI      client.MarketDataAPIInterface
	SnapshotRepository repository.SnapshotStorageInterface
	TimeService        utils.TimeServiceInterface
	Session            *model.Session
	Days               int64
	Currency           string
}

// Load fetches bitcoin, ethereum and global data in that order and stops at the first failure.
func (m *MarketService) Load() (model.MarketSnapshot, error) {
	snapshot := model.MarketSnapshot{
		Currency: m.Currency,
		Days:     m.Days,
	}
	if m.Session != nil {
		snapshot.SessionUuid = m.Session.Uuid
	}

	bitcoin, err := m.MarketDataAPI.FetchMarketChart(model.CoinBitcoin, m.Days, m.Currency)
	if err != nil {
		return snapshot, err
	}
	snapshot.Bitcoin = bitcoin

	ethereum, err := m.MarketDataAPI.FetchMarketChart(model.CoinEthereum, m.Days, m.Currency)
	if err != nil {
		return snapshot, err
	}
	snapshot.Ethereum = ethereum

	global, err := m.MarketDataAPI.FetchGlobalData()
	if err != nil {
		return snapshot, err
	}
	snapshot.Global = global
	snapshot.FetchedAt = m.TimeService.GetNowUnix()

	log.Printf(
		"[%s] Market data loaded: %d btc points, %d eth points, %d dominance entries",
		snapshot.SessionUuid,
		len(bitcoin.Prices),
		len(ethereum.Prices),
		len(global.MarketCapPercentage),
	)

	if m.SnapshotRepository != nil {
		err = m.SnapshotRepository.SaveSnapshot(snapshot)
		if err != nil {
			log.Printf("[%s] Snapshot is not published: %s", snapshot.SessionUuid, err.Error())
		}
	}

	return snapshot, nil
}
