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

var employeeDuplicates = map[string]error{
	indexEmployeeNumber: domain.ErrDuplicateEmployeeID,
	indexEmployeeEmail:  domain.ErrDuplicateEmail,
	indexEmployeePhone:  domain.ErrDuplicatePhone,
}

// EmployeeRepository implements ports.EmployeeRepository using MongoDB.
type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return mapDuplicate(err, employeeDuplicates)
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	if err := r.col.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *EmployeeRepository) FindByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Employee, error) {
	if len(ids) == 0 {
		return []*domain.Employee{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Employee](ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return mapDuplicate(err, employeeDuplicates)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func employeeFilter(f ports.EmployeeFilter) bson.M {
	filter := bson.M{}
	if f.Unassigned {
		filter["allocated_sys"] = nil
	}
	if f.AllocatedSys != "" {
		filter["allocated_sys"] = f.AllocatedSys
	}
	return filter
}

func (r *EmployeeRepository) List(ctx context.Context, f ports.EmployeeFilter) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Employee](ctx, r.col, employeeFilter(f), newestFirst())
}

func (r *EmployeeRepository) Count(ctx context.Context, f ports.EmployeeFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, employeeFilter(f))
}

// ReleaseSystem clears allocated_sys on every employee pointing at systemID.
func (r *EmployeeRepository) ReleaseSystem(ctx context.Context, systemID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"allocated_sys": systemID},
		bson.M{"$set": bson.M{"allocated_sys": nil, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
