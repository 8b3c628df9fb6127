package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	dotenvOnce sync.Once

	mu      sync.Mutex
	entries = map[reflect.Type]*entry{}
)

func loadDefaultDotenv() {
	dotenvOnce.Do(func() {
		// A missing .env is normal outside development.
		_ = godotenv.Load()
	})
}

// LoadEnv reads the given .env files into the process environment. Variables
// already set are not overridden, so earlier files win over later ones and
// the real environment wins over all of them.
func LoadEnv(files ...string) error {
	dotenvOnce.Do(func() {})
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load fills v from the environment. The first successful parse of a type is
// cached; later calls for the same type copy the cached value. A failed parse
// is cached too until Reset is called.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultDotenv()

	key := reflect.TypeFor[T]()

	mu.Lock()
	e, ok := entries[key]
	if !ok {
		e = &entry{}
		entries[key] = e
	}
	mu.Unlock()

	e.once.Do(func() {
		parsed, err := Parse[T]()
		if err != nil {
			e.err = err
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse reads T from the current environment without touching the cache.
func Parse[T any]() (T, error) {
	loadDefaultDotenv()
	v, err := env.ParseAs[T]()
	if err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// Reset drops every cached configuration.
func Reset() {
	mu.Lock()
	entries = map[reflect.Type]*entry{}
	mu.Unlock()
}
