package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"log"
	"time"
)

type SnapshotStorageInterface interface {
	SaveSnapshot(snapshot model.MarketSnapshot) error
}

// SnapshotRepository publishes the startup market snapshot to Redis for other readers.
type SnapshotRepository struct {
	RDB *redis.Client
	Ctx *context.Context
	TTL time.Duration
}

func (s *SnapshotRepository) SaveSnapshot(snapshot model.MarketSnapshot) error {
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	pipe := s.RDB.TxPipeline()
	pipe.Set(*s.Ctx, s.GetLatestCacheKey(), string(encoded), s.TTL)
	pipe.Set(*s.Ctx, s.GetSessionCacheKey(snapshot.SessionUuid), string(encoded), s.TTL)
	_, err = pipe.Exec(*s.Ctx)

	if err != nil {
		log.Printf("[%s] SaveSnapshot: %s", snapshot.SessionUuid, err.Error())
		return err
	}

	return nil
}

func (s *SnapshotRepository) GetLatestCacheKey() string {
	return "dashboard:snapshot:latest"
}

func (s *SnapshotRepository) GetSessionCacheKey(sessionUuid string) string {
	return fmt.Sprintf("dashboard:snapshot:%s", sessionUuid)
}
