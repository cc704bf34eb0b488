// File: database/repository/listing/listingMongoCrud.go
package listingRepo

import (
	"errors"
	"fmt"
	"time"

	"estateconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSeq atomically increments and returns the listing sequence counter.
// Sequence IDs double as the recency proxy for newest-first sorting.
func (r *MongoListingRepo) nextSeq() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "listings"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance listing counter: %w", err)
	}
	return doc.Seq, nil
}

// Create inserts a new listing document.
func (r *MongoListingRepo) Create(listing *models.Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}

	seq, err := r.nextSeq()
	if err != nil {
		return err
	}
	listing.ID = seq

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetByID retrieves a listing by its sequence ID.
func (r *MongoListingRepo) GetByID(id int64) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch listing %d: %w", id, err)
	}
	return &listing, nil
}

// UpdateStatus moves a listing through the review lifecycle.
func (r *MongoListingRepo) UpdateStatus(id int64, status models.ListingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of listing %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing %d not found", id)
	}
	return nil
}

// Delete removes a listing document by its sequence ID.
func (r *MongoListingRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("listing %d not found", id)
	}
	return nil
}
