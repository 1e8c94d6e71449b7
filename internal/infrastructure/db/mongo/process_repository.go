package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

const processesCollection = "processes"

type MongoProcessRepository struct {
	coll *mongo.Collection
}

func NewProcessRepository(db *mongo.Database) *MongoProcessRepository {
	return &MongoProcessRepository{coll: db.Collection(processesCollection)}
}

type mongoProcess struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Number    string               `bson:"number"`
	Court     string               `bson:"court,omitempty"`
	Subject   string               `bson:"subject,omitempty"`
	Status    domain.ProcessStatus `bson:"status"`
	OwnerID   string               `bson:"owner_id"`
	CreatedAt int64                `bson:"created_at"`
	UpdatedAt int64                `bson:"updated_at"`
}

func (r *MongoProcessRepository) Create(ctx context.Context, p *domain.Process) (*domain.Process, error) {
	doc := mongoProcess{
		Number:    p.Number,
		Court:     p.Court,
		Subject:   p.Subject,
		Status:    p.Status,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert process: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProcessRepository) FindByID(ctx context.Context, id string) (*domain.Process, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProcessNotFound
	}

	var mp mongoProcess
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProcessNotFound
		}
		return nil, fmt.Errorf("find process: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProcessRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Process, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Process
	for cursor.Next(ctx) {
		var mp mongoProcess
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode process: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return out, nil
}

func (r *MongoProcessRepository) Update(ctx context.Context, p *domain.Process) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProcessNotFound
	}

	update := bson.M{"$set": bson.M{
		"number":     p.Number,
		"court":      p.Court,
		"subject":    p.Subject,
		"status":     p.Status,
		"updated_at": p.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update process: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProcessNotFound
	}
	return nil
}

func (r *MongoProcessRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProcessNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete process: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProcessNotFound
	}
	return nil
}

func (mp *mongoProcess) toDomain() *domain.Process {
	return &domain.Process{
		ID:        mp.ID.Hex(),
		Number:    mp.Number,
		Court:     mp.Court,
		Subject:   mp.Subject,
		Status:    mp.Status,
		OwnerID:   mp.OwnerID,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
