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

var partDuplicates = map[string]error{
	indexPartBarcode: domain.ErrDuplicateBarcode,
	indexPartSerial:  domain.ErrDuplicateSerial,
}

// PartRepository implements ports.PartRepository using MongoDB.
type PartRepository struct {
	col *mongo.Collection
}

func NewPartRepository(db *mongo.Database) *PartRepository {
	return &PartRepository{col: db.Collection(collectionParts)}
}

func normalizePart(p *domain.Part) {
	if p.AssignedSystems == nil {
		p.AssignedSystems = []string{}
	}
	if p.Specs == nil {
		p.Specs = []domain.Spec{}
	}
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	normalizePart(p)
	_, err := r.col.InsertOne(ctx, p)
	return mapDuplicate(err, partDuplicates)
}

func (r *PartRepository) findOne(ctx context.Context, filter bson.M) (*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Part
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PartRepository) FindByID(ctx context.Context, id string) (*domain.Part, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PartRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Part, error) {
	return r.findOne(ctx, bson.M{"barcode": barcode})
}

func (r *PartRepository) FindBySerial(ctx context.Context, serial string) (*domain.Part, error) {
	return r.findOne(ctx, bson.M{"serial_number": serial})
}

func (r *PartRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Part, error) {
	if len(ids) == 0 {
		return []*domain.Part{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Part](ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *PartRepository) Update(ctx context.Context, p *domain.Part) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	normalizePart(p)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return mapDuplicate(err, partDuplicates)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

func (r *PartRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

// partFilter builds the query for f. A part is free when no system owns it
// or its type may be shared.
func partFilter(f ports.PartFilter) bson.M {
	var and []bson.M
	if f.Status != "" {
		and = append(and, bson.M{"status": f.Status})
	}
	if f.PartType != "" {
		and = append(and, bson.M{"part_type": f.PartType})
	}
	if f.SystemID != "" {
		and = append(and, bson.M{"assigned_systems": f.SystemID})
	}
	shared := f.MultiAssignTypes
	if shared == nil {
		shared = []string{}
	}
	if f.MultiAssignOnly {
		and = append(and, bson.M{"part_type": bson.M{"$in": shared}})
	}
	if f.Free {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"assigned_systems": bson.M{"$size": 0}},
			bson.M{"assigned_systems": nil},
			bson.M{"part_type": bson.M{"$in": shared}},
		}})
	}
	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func (r *PartRepository) List(ctx context.Context, f ports.PartFilter) ([]*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Part](ctx, r.col, partFilter(f), newestFirst())
}

func (r *PartRepository) Count(ctx context.Context, f ports.PartFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, partFilter(f))
}

// AttachSystem adds systemID to the owners of every part in partIDs.
func (r *PartRepository) AttachSystem(ctx context.Context, partIDs []string, systemID string) error {
	if len(partIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": partIDs}},
		bson.M{
			"$addToSet": bson.M{"assigned_systems": systemID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount != int64(len(partIDs)) {
		return domain.ErrPartNotFound
	}
	return nil
}

func (r *PartRepository) DetachSystem(ctx context.Context, partIDs []string, systemID string) error {
	if len(partIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": partIDs}},
		bson.M{
			"$pull": bson.M{"assigned_systems": systemID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
