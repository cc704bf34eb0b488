// File: database/repository/listing/listingMongoQueries.go
package listingRepo

import (
	"fmt"
	"time"

	"estateconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoListingRepo) find(filter bson.M) ([]models.Listing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// GetAll retrieves all listings, insertion-ordered by sequence ID.
func (r *MongoListingRepo) GetAll() ([]models.Listing, error) {
	return r.find(bson.M{})
}

// GetActive retrieves all listings with status "active".
func (r *MongoListingRepo) GetActive() ([]models.Listing, error) {
	return r.find(bson.M{"status": models.StatusActive})
}

// GetByCreator retrieves the listings created by a user.
func (r *MongoListingRepo) GetByCreator(userID string) ([]models.Listing, error) {
	return r.find(bson.M{"createdBy": userID})
}

// CountByKind returns listing counts grouped by kind.
func (r *MongoListingRepo) CountByKind() (map[models.ListingKind]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$kind", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate listing kinds: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Kind  models.ListingKind `bson:"_id"`
		Count int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode kind counts: %w", err)
	}

	counts := make(map[models.ListingKind]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}

// Count returns the total number of listings.
func (r *MongoListingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

// CountPending returns the number of listings awaiting review.
func (r *MongoListingRepo) CountPending() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending listings: %w", err)
	}
	return n, nil
}
