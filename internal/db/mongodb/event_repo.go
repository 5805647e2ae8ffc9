package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Devlife/internal/core/events"
)

type mongoEventRepo struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new MongoDB event repository
// Events are stored as single documents with comments and likes embedded,
// so every engagement mutation below is one atomic document write
func NewEventRepository(db *mongo.Database) events.Repository {
	return &mongoEventRepo{collection: db.Collection("events")}
}

// Create inserts a new event document
func (r *mongoEventRepo) Create(ctx context.Context, event *events.Event) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by id
func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*events.Event, error) {
	var event events.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, events.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// List returns events newest-first, windowed by limit/offset
func (r *mongoEventRepo) List(ctx context.Context, limit, offset int) ([]*events.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]*events.Event, 0, limit)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return result, nil
}

// Count returns the total number of event documents.
// Computed independently of List; a feed page and its total may disagree
// under concurrent writes.
func (r *mongoEventRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// ListByAuthor returns the author's events oldest-first
func (r *mongoEventRepo) ListByAuthor(ctx context.Context, authorID string) ([]*events.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"postedBy": authorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by author: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*events.Event
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return result, nil
}

// Update applies the allow-listed patch and the updated timestamp in one
// $set. The patch type carries no author field, so ownership cannot be
// reassigned here by construction.
func (r *mongoEventRepo) Update(ctx context.Context, id string, patch events.UpdateEventRequest, updated time.Time) (*events.Event, error) {
	set := bson.M{"updated": updated}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}
	if patch.Photo != nil {
		set["photo"] = patch.Photo
	}

	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, events.ErrEventNotFound)
}

// Delete removes the event document with everything embedded in it
func (r *mongoEventRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.DeletedCount == 0 {
		return events.ErrEventNotFound
	}
	return nil
}

// AddLike adds userID to the liker set via $addToSet.
// Idempotent at the store: a second like matches the existing entry and
// leaves the set unchanged.
func (r *mongoEventRepo) AddLike(ctx context.Context, eventID, userID string) (*events.Event, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
		events.ErrEventNotFound,
	)
}

// RemoveLike removes userID from the liker set via $pull; no-op if absent
func (r *mongoEventRepo) RemoveLike(ctx context.Context, eventID, userID string) (*events.Event, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$pull": bson.M{"likes": userID}},
		events.ErrEventNotFound,
	)
}

// PushComment appends the comment to the end of the comment sequence
func (r *mongoEventRepo) PushComment(ctx context.Context, eventID string, comment events.Comment) (*events.Event, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$push": bson.M{"comments": comment}},
		events.ErrEventNotFound,
	)
}

// PullComment removes the comment with the given id; other comments keep
// their order and identity
func (r *mongoEventRepo) PullComment(ctx context.Context, eventID, commentID string) (*events.Event, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}},
		events.ErrEventNotFound,
	)
}

// SetCommentText replaces the matched comment's text and the event's
// updated marker through the positional operator. One document write, so a
// concurrent reader never observes the comment absent mid-edit.
func (r *mongoEventRepo) SetCommentText(ctx context.Context, eventID, commentID, text string, updated time.Time) (*events.Event, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": eventID, "comments.id": commentID},
		bson.M{"$set": bson.M{"comments.$.text": text, "updated": updated}},
		events.ErrCommentNotFound,
	)
}

// findOneAndUpdate runs an atomic update and decodes the post-mutation
// document. notFound is the sentinel returned when the filter matched
// nothing.
func (r *mongoEventRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M, notFound error) (*events.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event events.Event
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}
