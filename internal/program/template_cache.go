package program

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte = 1024 * 1024
	// templates are immutable, cached entries never expire on their own
	templateCacheExpire = 0
)

type templateGetter interface {
	GetTemplate(ctx context.Context, id int64) (*Template, error)
}

// CachedTemplates is a read-through template cache in front of a template store.
type CachedTemplates struct {
	store templateGetter
	cache *freecache.Cache
}

func NewCachedTemplates(store templateGetter, cacheSizeMB int) *CachedTemplates {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &CachedTemplates{
		store: store,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
	}
}

func (c *CachedTemplates) GetTemplate(ctx context.Context, id int64) (*Template, error) {
	cacheKey := []byte(fmt.Sprintf("template::%d", id))
	if templateBytes, err := c.cache.Get(cacheKey); err == nil {
		template := &Template{}
		if err := json.Unmarshal(templateBytes, template); err == nil {
			log.Tracef("template %d found in cache", id)
			return template, nil
		}
		log.Errorf("failed to unmarshal cached template %d, dropping it", id)
		c.cache.Del(cacheKey)
	}

	template, err := c.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	templateBytes, err := json.Marshal(template)
	if err != nil {
		log.Errorf("failed to marshal template %d for cache: %s", id, err)
		return template, nil
	}
	if err := c.cache.Set(cacheKey, templateBytes, templateCacheExpire); err != nil {
		log.Errorf("failed to write template %d to cache: %s", id, err)
	} else {
		log.Debugf("template %d cache set", id)
	}

	return template, nil
}

func (c *CachedTemplates) EntryCount() int64 {
	return c.cache.EntryCount()
}
