package service

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"testing"
)

type MarketDataAPIMock struct {
	mock.Mock
}

func (m *MarketDataAPIMock) FetchMarketChart(coinId string, days int64, currency string) (model.MarketChart, error) {
	args := m.Called(coinId, days, currency)
	return args.Get(0).(model.MarketChart), args.Error(1)
}

func (m *MarketDataAPIMock) FetchGlobalData() (model.GlobalMarket, error) {
	args := m.Called()
	return args.Get(0).(model.GlobalMarket), args.Error(1)
}

type SnapshotRepositoryMock struct {
	mock.Mock
}

func (m *SnapshotRepositoryMock) SaveSnapshot(snapshot model.MarketSnapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

func TestLoadFetchesAllDatasets(t *testing.T) {
	assertion := assert.New(t)

	btc := makeChart([]float64{1, 2}, []float64{3, 4})
	eth := makeChart([]float64{5, 6}, []float64{7, 8})
	global := model.GlobalMarket{MarketCapPercentage: map[string]float64{"btc": 45.2, "eth": 18.7}}

	apiMock := new(MarketDataAPIMock)
	apiMock.On("FetchMarketChart", "bitcoin", int64(30), "usd").Return(btc, nil).Once()
	apiMock.On("FetchMarketChart", "ethereum", int64(30), "usd").Return(eth, nil).Once()
	apiMock.On("FetchGlobalData").Return(global, nil).Once()

	snapshotRepositoryMock := new(SnapshotRepositoryMock)
	snapshotRepositoryMock.On("SaveSnapshot", mock.MatchedBy(func(snapshot model.MarketSnapshot) bool {
		return snapshot.SessionUuid == "session-1" && snapshot.FetchedAt == 1700000000
	})).Return(errors.New("redis is down"))

	marketService := MarketService{
		MarketDataAPI:      apiMock,
		SnapshotRepository: snapshotRepositoryMock,
		TimeService:        &TimeServiceMock{},
		Session:            &model.Session{Uuid: "session-1"},
		Days:               30,
		Currency:           "usd",
	}

	snapshot, err := marketService.Load()
	assertion.Nil(err)
	assertion.Equal(btc, snapshot.Bitcoin)
	assertion.Equal(eth, snapshot.Ethereum)
	assertion.Equal(global, snapshot.Global)
	assertion.Equal("usd", snapshot.Currency)
	assertion.Equal(int64(30), snapshot.Days)
	apiMock.AssertExpectations(t)
	snapshotRepositoryMock.AssertExpectations(t)
}

func TestLoadStopsOnFirstFailure(t *testing.T) {
	assertion := assert.New(t)

	apiMock := new(MarketDataAPIMock)
	apiMock.On("FetchMarketChart", "bitcoin", int64(30), "usd").Return(model.MarketChart{}, errors.New("Request [https://fake.url] failed with error code: 500"))

	marketService := MarketService{
		MarketDataAPI: apiMock,
		TimeService:   &TimeServiceMock{},
		Days:          30,
		Currency:      "usd",
	}

	_, err := marketService.Load()
	assertion.NotNil(err)
	apiMock.AssertNotCalled(t, "FetchMarketChart", "ethereum", mock.Anything, mock.Anything)
	apiMock.AssertNotCalled(t, "FetchGlobalData")
}

func TestLoadFailsOnGlobalData(t *testing.T) {
	assertion := assert.New(t)

	apiMock := new(MarketDataAPIMock)
	apiMock.On("FetchMarketChart", mock.Anything, int64(30), "usd").Return(makeChart([]float64{1}, []float64{1}), nil)
	apiMock.On("FetchGlobalData").Return(model.GlobalMarket{}, errors.New("timeout"))

	snapshotRepositoryMock := new(SnapshotRepositoryMock)

	marketService := MarketService{
		MarketDataAPI:      apiMock,
		SnapshotRepository: snapshotRepositoryMock,
		TimeService:        &TimeServiceMock{},
		Days:               30,
		Currency:           "usd",
	}

	_, err := marketService.Load()
	assertion.Equal("timeout", err.Error())
	apiMock.AssertNumberOfCalls(t, "FetchMarketChart", 2)
	snapshotRepositoryMock.AssertNotCalled(t, "SaveSnapshot", mock.Anything)
}
