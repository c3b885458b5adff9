// Package mongo implements the repository ports on MongoDB. Each repository
// owns one collection and bounds every call with defaultTimeout.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "sustainalink-api"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a client for cfg.URI and pings the primary before handing
// back the configured database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(cfg.Timeout)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return client, client.Database(cfg.Database), nil
}

// Repositories bundles every collection-backed store.
type Repositories struct {
	Users     *UserRepository
	Products  *ProductRepository
	Suppliers *SupplierRepository
	Reports   *ESGReportRepository
	Rewards   *RewardRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Products:  NewProductRepository(db),
		Suppliers: NewSupplierRepository(db),
		Reports:   NewESGReportRepository(db),
		Rewards:   NewRewardRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on for uniqueness
// and list queries.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	for name, ensure := range map[string]func(context.Context) error{
		collectionUsers:     r.Users.EnsureIndexes,
		collectionProducts:  r.Products.EnsureIndexes,
		collectionSuppliers: r.Suppliers.EnsureIndexes,
		collectionReports:   r.Reports.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
