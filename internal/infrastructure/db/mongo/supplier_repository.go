package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const collectionSuppliers = "suppliers"

type SupplierRepository struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{col: db.Collection(collectionSuppliers)}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Supplier
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return &s, nil
}

func supplierFilter(f ports.SupplierFilter) bson.M {
	filter := bson.M{"is_active": true}
	if f.RiskLevel != "" {
		filter["risk_level"] = f.RiskLevel
	}
	if f.Verified != nil {
		filter["is_verified"] = *f.Verified
	}
	if f.Tier != 0 {
		filter["supply_chain_tier"] = f.Tier
	}
	if f.Search != "" {
		filter["$or"] = containsFold(f.Search, "company_name", "industry")
	}
	return filter
}

func (r *SupplierRepository) List(ctx context.Context, f ports.SupplierFilter) ([]*domain.Supplier, int64, error) {
	sort := bson.D{{Key: "overall_esg_score", Value: -1}, {Key: "company_name", Value: 1}}
	items, total, err := findPage[domain.Supplier](ctx, r.col, supplierFilter(f), sort, f.Page)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	return items, total, nil
}

// EnsureIndexes makes company names unique regardless of case.
func (r *SupplierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	caseInsensitiveCollation := &options.Collation{Locale: "en", Strength: 2}
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "company_name", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitiveCollation),
		},
		{Keys: bson.D{{Key: "risk_level", Value: 1}, {Key: "overall_esg_score", Value: -1}}},
	})
	return err
}
