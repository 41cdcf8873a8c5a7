package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/gymstats/equipment"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=equipment_cache_mocks_test.go -package=exercises_test

type equipmentSource interface {
	EquipmentConfig(ctx context.Context, userID, exerciseID int) (equipment.Config, error)
}

// EquipmentCache keeps exercise equipment configs in memory. Sessions read
// them for every volume and progress computation.
type EquipmentCache struct {
	source        equipmentSource
	cache         *freecache.Cache
	expireSeconds int
}

func NewEquipmentCache(source equipmentSource, sizeBytes int, expire time.Duration) *EquipmentCache {
	return &EquipmentCache{
		source:        source,
		cache:         freecache.NewCache(sizeBytes),
		expireSeconds: int(expire.Seconds()),
	}
}

func equipmentCacheKey(userID, exerciseID int) []byte {
	return []byte(fmt.Sprintf("equipment::%d::%d", userID, exerciseID))
}

func (c *EquipmentCache) EquipmentConfig(ctx context.Context, userID, exerciseID int) (equipment.Config, error) {
	key := equipmentCacheKey(userID, exerciseID)
	if cached, err := c.cache.Get(key); err == nil {
		var cfg equipment.Config
		if err := json.Unmarshal(cached, &cfg); err == nil {
			return cfg, nil
		} else {
			log.Errorf("unmarshal cached equipment of exercise %d: %s", exerciseID, err)
		}
	}

	cfg, err := c.source.EquipmentConfig(ctx, userID, exerciseID)
	if err != nil {
		return equipment.Config{}, err
	}

	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		log.Errorf("marshal equipment of exercise %d: %s", exerciseID, err)
		return cfg, nil
	}
	if err := c.cache.Set(key, cfgBytes, c.expireSeconds); err != nil {
		log.Errorf("cache equipment of exercise %d: %s", exerciseID, err)
	}

	return cfg, nil
}

// Invalidate drops the cached config, after the exercise changed or was deleted.
func (c *EquipmentCache) Invalidate(userID, exerciseID int) {
	c.cache.Del(equipmentCacheKey(userID, exerciseID))
}

func (c *EquipmentCache) HitRate() float64 {
	return c.cache.HitRate()
}
