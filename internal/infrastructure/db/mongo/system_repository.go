package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

var systemDuplicates = map[string]error{
	indexSystemName: domain.ErrDuplicateName,
}

// SystemRepository implements ports.SystemRepository using MongoDB.
type SystemRepository struct {
	col *mongo.Collection
}

func NewSystemRepository(db *mongo.Database) *SystemRepository {
	return &SystemRepository{col: db.Collection(collectionSystems)}
}

func (r *SystemRepository) Create(ctx context.Context, s *domain.System) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.Parts == nil {
		s.Parts = []string{}
	}
	_, err := r.col.InsertOne(ctx, s)
	return mapDuplicate(err, systemDuplicates)
}

func (r *SystemRepository) findOne(ctx context.Context, filter bson.M) (*domain.System, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.System
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSystemNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SystemRepository) FindByID(ctx context.Context, id string) (*domain.System, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *SystemRepository) FindByName(ctx context.Context, name string) (*domain.System, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *SystemRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.System, error) {
	if len(ids) == 0 {
		return []*domain.System{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.System](ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
}

// Update writes the system's scalar fields. The part set is left alone; it
// only changes through AddParts, RemovePart and PullPart.
func (r *SystemRepository) Update(ctx context.Context, s *domain.System) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": s.ID}, systemUpdate(s))
	if err != nil {
		return mapDuplicate(err, systemDuplicates)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSystemNotFound
	}
	return nil
}

func systemUpdate(s *domain.System) bson.M {
	return bson.M{"$set": bson.M{
		"name":        s.Name,
		"assigned_to": s.AssignedTo,
		"status":      s.Status,
		"updated_at":  s.UpdatedAt,
	}}
}

func systemFilter(f ports.SystemFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.PartID != "" {
		filter["parts"] = f.PartID
	}
	return filter
}

func (r *SystemRepository) List(ctx context.Context, f ports.SystemFilter) ([]*domain.System, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.System](ctx, r.col, systemFilter(f), newestFirst())
}

func (r *SystemRepository) Count(ctx context.Context, f ports.SystemFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, systemFilter(f))
}

func (r *SystemRepository) AddParts(ctx context.Context, systemID string, partIDs []string) error {
	return r.updateOne(ctx, systemID, bson.M{
		"$addToSet": bson.M{"parts": bson.M{"$each": partIDs}},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *SystemRepository) RemovePart(ctx context.Context, systemID, partID string) error {
	return r.updateOne(ctx, systemID, bson.M{
		"$pull": bson.M{"parts": partID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *SystemRepository) updateOne(ctx context.Context, systemID string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": systemID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSystemNotFound
	}
	return nil
}

// PullPart removes partID from every system that lists it.
func (r *SystemRepository) PullPart(ctx context.Context, partID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"parts": partID},
		bson.M{
			"$pull": bson.M{"parts": partID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
