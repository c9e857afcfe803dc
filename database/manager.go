package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pool sizing for a single-node deployment. Two collections and short-lived
// operations need no per-environment tuning.
const (
	maxPoolSize      = 100
	minPoolSize      = 10
	maxConnIdleTime  = 30 * time.Second
	operationTimeout = 10 * time.Second
)

// Manager owns the MongoDB client shared by every repository and caches
// collection handles per name. Initialize must complete before any
// repository is constructed.
type Manager struct {
	client      *mongo.Client
	database    *mongo.Database
	collections map[string]*mongo.Collection
	mu          sync.RWMutex
}

var (
	instance *Manager
	once     sync.Once
)

// GetManager returns the process-wide manager.
func GetManager() *Manager {
	once.Do(func() {
		instance = &Manager{
			collections: make(map[string]*mongo.Collection),
		}
	})
	return instance
}

// Initialize connects to MongoDB and selects the working database.
func (m *Manager) Initialize(mongoURI, dbName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return fmt.Errorf("database already initialized")
	}

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime).
		SetServerSelectionTimeout(operationTimeout).
		SetConnectTimeout(operationTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	m.client = client
	m.database = client.Database(dbName)

	log.Printf("Connected to MongoDB database: %s", dbName)
	return nil
}

// GetCollection returns a cached collection handle.
func (m *Manager) GetCollection(name string) *mongo.Collection {
	m.mu.RLock()
	if collection, ok := m.collections[name]; ok {
		m.mu.RUnlock()
		return collection
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if collection, ok := m.collections[name]; ok {
		return collection
	}
	collection := m.database.Collection(name)
	m.collections[name] = collection
	return collection
}

// HealthCheck verifies connectivity for the health endpoint.
func (m *Manager) HealthCheck() error {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()

	if client == nil {
		return fmt.Errorf("database not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %v", err)
	}

	m.client = nil
	m.database = nil
	m.collections = make(map[string]*mongo.Collection)

	log.Println("Database connection closed")
	return nil
}
