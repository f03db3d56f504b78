package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kooply/label-service/internal/domain/model"
)

// defaultListLimit caps unbounded listings.
const defaultListLimit = 500

// LabelRepository persists labels in the labels collection.
type LabelRepository struct {
	collection *mongo.Collection
}

// NewLabelRepository creates a new label repository.
func NewLabelRepository(db *MongoDB) *LabelRepository {
	return &LabelRepository{collection: db.Labels}
}

// InsertMany implements LabelRepositoryInterface. Ordered inserts: the first
// duplicate aborts the whole write, which is what the batch contract wants.
func (r *LabelRepository) InsertMany(ctx context.Context, labels []model.Label) error {
	if len(labels) == 0 {
		return nil
	}
	docs := make([]interface{}, len(labels))
	for i := range labels {
		docs[i] = labels[i]
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// FindByLabelID implements LabelRepositoryInterface.
func (r *LabelRepository) FindByLabelID(ctx context.Context, labelID string) (*model.Label, error) {
	var label model.Label
	err := r.collection.FindOne(ctx, bson.M{"label_id": labelID}).Decode(&label)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateStatus implements LabelRepositoryInterface. The filter carries the
// expected current status so two concurrent transitions cannot both apply.
func (r *LabelRepository) UpdateStatus(ctx context.Context, labelID string, expected model.LabelStatus, change model.StatusChange) (*model.Label, error) {
	filter := bson.M{"label_id": labelID, "status": expected}
	update := bson.M{
		"$set":  bson.M{"status": change.Status, "updated_at": time.Now().UTC()},
		"$push": bson.M{"history": change},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Label
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List implements LabelRepositoryInterface.
func (r *LabelRepository) List(ctx context.Context, filter LabelFilter) ([]model.Label, error) {
	query := bson.M{}
	if filter.Prefix != "" {
		query["prefix"] = filter.Prefix
	}
	if filter.BatchID != "" {
		query["batch_id"] = filter.BatchID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "prefix", Value: 1}, {Key: "sequence", Value: 1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	labels := make([]model.Label, 0, limit)
	if err := cursor.All(ctx, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
