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

const petitionsCollection = "petitions"

type MongoPetitionRepository struct {
	coll *mongo.Collection
}

func NewPetitionRepository(db *mongo.Database) *MongoPetitionRepository {
	return &MongoPetitionRepository{coll: db.Collection(petitionsCollection)}
}

type mongoPetition struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Body          string             `bson:"body"`
	ProcessNumber string             `bson:"process_number,omitempty"`
	AuthorID      string             `bson:"author_id"`
	AuthorName    string             `bson:"author_name,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (r *MongoPetitionRepository) Create(ctx context.Context, p *domain.Petition) (*domain.Petition, error) {
	doc := mongoPetition{
		Title:         p.Title,
		Body:          p.Body,
		ProcessNumber: p.ProcessNumber,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		CreatedAt:     p.CreatedAt.Unix(),
		UpdatedAt:     p.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert petition: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPetitionRepository) FindByID(ctx context.Context, id string) (*domain.Petition, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetitionNotFound
	}

	var mp mongoPetition
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPetitionNotFound
		}
		return nil, fmt.Errorf("find petition: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPetitionRepository) List(ctx context.Context) ([]*domain.Petition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list petitions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Petition
	for cursor.Next(ctx) {
		var mp mongoPetition
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode petition: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list petitions: %w", err)
	}
	return out, nil
}

func (r *MongoPetitionRepository) Update(ctx context.Context, p *domain.Petition) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrPetitionNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":          p.Title,
		"body":           p.Body,
		"process_number": p.ProcessNumber,
		"updated_at":     p.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update petition: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetitionNotFound
	}
	return nil
}

func (r *MongoPetitionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPetitionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete petition: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPetitionNotFound
	}
	return nil
}

func (mp *mongoPetition) toDomain() *domain.Petition {
	return &domain.Petition{
		ID:            mp.ID.Hex(),
		Title:         mp.Title,
		Body:          mp.Body,
		ProcessNumber: mp.ProcessNumber,
		AuthorID:      mp.AuthorID,
		AuthorName:    mp.AuthorName,
		CreatedAt:     unixToTime(mp.CreatedAt),
		UpdatedAt:     unixToTime(mp.UpdatedAt),
	}
}
