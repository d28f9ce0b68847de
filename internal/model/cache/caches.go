package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/pkg/cache"
)

var (
	// OrgBySlug caches gateway-slug tenant resolution; keyed by slug.
	OrgBySlug *cache.Set[model.Org]

	// BandsByOrg caches whole band catalogs; keyed by org id.
	BandsByOrg *cache.Set[[]*model.Band]

	// ClientsByOrg caches client catalogs; keyed by org id.
	ClientsByOrg *cache.Set[[]*model.Client]

	// ProductsByOrg caches product catalogs; keyed by org id.
	ProductsByOrg *cache.Set[[]*model.Product]

	once bool
)

// Initialize creates the cache singletons. It must run before any controller
// is registered. Derived event statuses are deliberately never cached: they
// are a function of the reading clock and are recomputed on every read.
func Initialize(client *redis.Client) {
	if once {
		return
	}
	once = true

	OrgBySlug = cache.NewSet[model.Org](client, "org#slug")
	BandsByOrg = cache.NewSet[[]*model.Band](client, "bands#org")
	ClientsByOrg = cache.NewSet[[]*model.Client](client, "clients#org")
	ProductsByOrg = cache.NewSet[[]*model.Product](client, "products#org")
}
