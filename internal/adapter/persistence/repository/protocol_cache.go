package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultProtocolCacheTTL = 5 * time.Minute

// CachedProtocolRepository is a read-through Redis cache in front of the
// catalog. Cache failures fall back to the inner repository; a stale or
// missing cache never fails a checkout.

type CachedProtocolRepository struct {
	inner interfaces.IProtocolRepository
	rdb   *redis.Client
	ttl   time.Duration
}

var _ interfaces.IProtocolRepository = (*CachedProtocolRepository)(nil)

func NewCachedProtocolRepository(inner interfaces.IProtocolRepository, rdb *redis.Client, ttl time.Duration) *CachedProtocolRepository {
	if ttl <= 0 {
		ttl = defaultProtocolCacheTTL
	}
	return &CachedProtocolRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func (r *CachedProtocolRepository) GetByID(ctx context.Context, id string) (entities.Protocol, error) {
	key := fmt.Sprintf("protocol:%s", id)

	if data, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var p entities.Protocol
		if err := json.Unmarshal(data, &p); err == nil {
			return p, nil
		}
		log.Printf("[catalog][cache] corrupt entry key=%s", key)
	} else if err != redis.Nil {
		log.Printf("[catalog][cache] get failed key=%s err=%v", key, err)
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return entities.Protocol{}, err
	}
	if p.ID == "" {
		return p, nil
	}

	if data, err := json.Marshal(p); err == nil {
		if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			log.Printf("[catalog][cache] set failed key=%s err=%v", key, err)
		}
	}
	return p, nil
}
