package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const collectionReports = "esg_reports"

type ESGReportRepository struct {
	col *mongo.Collection
}

func NewESGReportRepository(db *mongo.Database) *ESGReportRepository {
	return &ESGReportRepository{col: db.Collection(collectionReports)}
}

func (r *ESGReportRepository) Create(ctx context.Context, report *domain.ESGReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if report.ID == "" {
		report.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("insert esg report: %w", err)
	}
	return nil
}

func reportFilter(f ports.ESGReportFilter) bson.M {
	filter := bson.M{}
	if f.SupplierID != "" {
		filter["supplier_id"] = f.SupplierID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Year != 0 {
		filter["report_period.year"] = f.Year
	}
	return filter
}

func (r *ESGReportRepository) List(ctx context.Context, f ports.ESGReportFilter) ([]*domain.ESGReport, int64, error) {
	sort := bson.D{{Key: "report_period.end_date", Value: -1}}
	items, total, err := findPage[domain.ESGReport](ctx, r.col, reportFilter(f), sort, f.Page)
	if err != nil {
		return nil, 0, fmt.Errorf("list esg reports: %w", err)
	}
	return items, total, nil
}

func (r *ESGReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "supplier_id", Value: 1}, {Key: "report_period.end_date", Value: -1}}},
		{Keys: bson.D{{Key: "report_period.year", Value: 1}}},
	})
	return err
}
