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

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

const bookmarkCollection = "bookmarks"

type BookmarkRepository struct {
	coll *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{coll: db.Collection(bookmarkCollection)}
}

type mongoBookmark struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Link        string             `bson:"link"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mb *mongoBookmark) toDomain() domain.Bookmark {
	return domain.Bookmark{
		ID:          mb.ID.Hex(),
		OwnerID:     mb.OwnerID,
		Title:       mb.Title,
		Description: mb.Description,
		Link:        mb.Link,
		CreatedAt:   mb.CreatedAt,
		UpdatedAt:   mb.UpdatedAt,
	}
}

func (r *BookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	doc := mongoBookmark{
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookmarkRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Bookmark, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]domain.Bookmark, 0)
	for cur.Next(ctx) {
		var mb mongoBookmark
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bookmark: %w", err)
		}
		items = append(items, mb.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return items, nil
}

// FindByID filters by owner in the same query as the id lookup, so a
// bookmark belonging to another owner reads exactly like a missing one.
func (r *BookmarkRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Bookmark, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookmarkNotFound
	}

	var mb mongoBookmark
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	b := mb.toDomain()
	return &b, nil
}

// UpdateByID applies the non-nil fields. The owner filter is part of the
// update query itself, so ownership verification and mutation are a single
// atomic operation.
func (r *BookmarkRepository) UpdateByID(ctx context.Context, ownerID, id string, fields ports.UpdateBookmarkFields) (*domain.Bookmark, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookmarkNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Link != nil {
		set["link"] = *fields.Link
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mb mongoBookmark
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "owner_id": ownerID}, bson.M{"$set": set}, opts).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	b := mb.toDomain()
	return &b, nil
}

func (r *BookmarkRepository) DeleteByID(ctx context.Context, ownerID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookmarkNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

func ensureBookmarkIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(bookmarkCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
