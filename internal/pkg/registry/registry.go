package registry

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stars_admin/internal/pkg/notify"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/internal/pkg/worker"
	"stars_admin/pkg/cache"
	"stars_admin/pkg/metrics"
)

// ModuleContext carries the shared infrastructure modules wire into.
type ModuleContext struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Router   *gin.Engine
	Cache    cache.CacheService
	Bus      *cache.InvalidationBus
	Upstream *upstream.Client
	Notifier notify.Notifier
	Audit    *worker.WorkerPool
	Metrics  *metrics.MetricsCollector
}

// Module is implemented by each domain package.
type Module interface {
	Name() string

	// Init performs dependency injection and route registration.
	Init(ctx *ModuleContext) error

	// Priority orders initialization; lower numbers run first.
	Priority() int
}

var moduleRegistry = make(map[string]Module)

// Register adds a module to the registry. Called from module init().
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// GetModules returns all registered modules.
func GetModules() map[string]Module {
	return moduleRegistry
}

// InitModules initializes all modules in priority order.
func InitModules(ctx *ModuleContext) error {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}

	for i := 0; i < len(modules); i++ {
		for j := i + 1; j < len(modules); j++ {
			if modules[i].Priority() > modules[j].Priority() {
				modules[i], modules[j] = modules[j], modules[i]
			}
		}
	}

	for _, module := range modules {
		if err := module.Init(ctx); err != nil {
			return err
		}
	}
	return nil
}
