package config

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/controller"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/repository"
	"gitlab.com/open-soft/go-crypto-dashboard/src/service"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
	"io"
	"log"
	"time"
)

func InitServiceContainer(config Config, input io.Reader, output io.Writer) (Container, error) {
	var ctx = context.Background()
	timeService := utils.TimeHelper{}
	formatter := utils.Formatter{}

	session := model.Session{
		Uuid:      uuid.New().String(),
		StartedAt: timeService.GetNowUnix(),
	}

	container := Container{
		Session:     &session,
		TimeService: &timeService,
	}

	coinGecko := client.CoinGecko{
		HttpClient: &client.HttpClient{
			Timeout: config.CoinGeckoTimeout,
		},
		DSN:    config.CoinGeckoDSN,
		ApiKey: config.CoinGeckoApiKey,
	}

	marketService := service.MarketService{
		MarketDataAPI: &coinGecko,
		TimeService:   &timeService,
		Session:       &session,
		Days:          config.Days,
		Currency:      config.Currency,
	}

	if config.RedisDSN != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisDSN,
			Password: config.RedisPassword,
			DB:       0,
		})
		container.RDB = rdb

		err := rdb.Ping(ctx).Err()
		if err != nil {
			log.Printf("Redis [%s] is not available, snapshot publishing is disabled: %s", config.RedisDSN, err.Error())
		} else {
			snapshotRepository := repository.SnapshotRepository{
				RDB: rdb,
				Ctx: &ctx,
				TTL: config.SnapshotTTL,
			}
			container.SnapshotRepository = &snapshotRepository
			marketService.SnapshotRepository = &snapshotRepository
		}
	}

	chartService := service.ChartService{
		OutputDir:   config.OutputDir,
		Days:        config.Days,
		Currency:    config.Currency,
		Session:     &session,
		Viewer:      service.NewChartViewer(config.Viewer),
		Formatter:   &formatter,
		TimeService: &timeService,
	}

	if config.DatabaseDSN != "" {
		db, err := sql.Open("mysql", config.DatabaseDSN)
		if err != nil {
			return container, fmt.Errorf("MySQL can't connect: %w", err)
		}
		db.SetMaxIdleConns(2)
		db.SetMaxOpenConns(2)
		db.SetConnMaxLifetime(time.Minute)
		container.Db = db

		chartRepository := repository.ChartRepository{
			DB: db,
		}

		err = chartRepository.Migrate()
		if err != nil {
			log.Printf("MySQL [chart_render] is not available, render history is disabled: %s", err.Error())
		} else {
			container.ChartRepository = &chartRepository
			chartService.ChartRepository = &chartRepository
		}
	}

	container.MarketService = &marketService
	container.ChartService = &chartService
	container.DashboardController = &controller.DashboardController{
		MarketService: &marketService,
		ChartService:  &chartService,
		Input:         input,
		Output:        output,
	}

	return container, nil
}

type Container struct {
	Session             *model.Session
	TimeService         *utils.TimeHelper
	Db                  *sql.DB
	RDB                 *redis.Client
	SnapshotRepository  *repository.SnapshotRepository
	ChartRepository     *repository.ChartRepository
	MarketService       *service.MarketService
	ChartService        *service.ChartService
	DashboardController *controller.DashboardController
}

func (c *Container) Close() {
	if c.Db != nil {
		_ = c.Db.Close()
	}

	if c.RDB != nil {
		_ = c.RDB.Close()
	}
}
