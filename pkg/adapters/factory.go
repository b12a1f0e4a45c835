package adapters

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// AdapterConstructor возвращает новый, еще не подключенный адаптер
type AdapterConstructor func() Adapter

// registry сопоставляет тип СУБД ("sqlite", "postgres", "mysql", "mssql")
// с конструктором адаптера. Заполняется из init() пакетов адаптеров.
type registry struct {
	mu           sync.RWMutex
	constructors map[string]AdapterConstructor
}

var adapterRegistry = &registry{constructors: make(map[string]AdapterConstructor)}

func (r *registry) add(dbType string, constructor AdapterConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[dbType] = constructor
}

func (r *registry) types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.constructors))
	for dbType := range r.constructors {
		types = append(types, dbType)
	}
	sort.Strings(types)
	return types
}

// instance создает адаптер; неизвестный тип - ErrConnection
// одинаково для New и NewWithoutConnect
func (r *registry) instance(dbType string) (Adapter, error) {
	r.mu.RLock()
	constructor, ok := r.constructors[dbType]
	r.mu.RUnlock()

	if !ok {
		return nil, &OpError{
			Op:   "connect",
			Kind: ErrConnection,
			Err: fmt.Errorf("unknown database type: %q (available types: %v)",
				dbType, r.types()),
		}
	}
	return constructor(), nil
}

// Register регистрирует адаптер. Вызывается в init() пакета адаптера:
//
//	func init() {
//	    adapters.Register(AdapterType, func() adapters.Adapter {
//	        return &Adapter{}
//	    })
//	}
func Register(dbType string, constructor AdapterConstructor) {
	adapterRegistry.add(dbType, constructor)
}

// GetRegisteredTypes возвращает отсортированный список зарегистрированных типов
func GetRegisteredTypes() []string {
	return adapterRegistry.types()
}

// New создает адаптер по cfg.Type и подключается к БД.
// Неизвестный тип и ошибка подключения возвращаются как ErrConnection.
//
//	adapter, err := adapters.New(ctx, adapters.Config{
//	    Type: "sqlite",
//	    DSN:  "file:scores.db",
//	})
//	if err != nil {
//	    return err
//	}
//	defer adapter.Close(ctx)
func New(ctx context.Context, cfg Config) (Adapter, error) {
	adapter, err := adapterRegistry.instance(cfg.Type)
	if err != nil {
		return nil, err
	}

	// адаптер сам логирует и типизирует ошибку подключения
	if err := adapter.Connect(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Type, err)
	}
	return adapter, nil
}

// NewWithoutConnect создает адаптер без подключения.
// До Connect все операции возвращают ErrNotConnected.
func NewWithoutConnect(dbType string) (Adapter, error) {
	return adapterRegistry.instance(dbType)
}
