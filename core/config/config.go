package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (pointer to loaded value)
	loadMu     sync.Mutex
)

// Load parses environment variables into cfg. The first call for a given type
// reads the environment; later calls copy the cached value.
// A .env file in the working directory is loaded once, if present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil destination")
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = *cached.(*T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	// Another goroutine may have loaded it while we waited
	if cached, ok := cache.Load(typ); ok {
		*cfg = *cached.(*T)
		return nil
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	cache.Store(typ, &loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error. Useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// reset clears the type cache. Used by tests.
func reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
