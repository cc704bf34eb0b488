// File: database/repository/listing/listing_mongo.go
package listingRepo

import (
	"context"
	"time"

	"estateconnect/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoListingRepo is the MongoDB-backed implementation of ListingRepository.
type MongoListingRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoListingRepo returns a repository bound to the listings collection.
func NewMongoListingRepo() *MongoListingRepo {
	db := database.DB()
	return &MongoListingRepo{
		coll:     db.Collection("listings"),
		counters: db.Collection("counters"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
