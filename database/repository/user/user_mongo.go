// File: database/repository/user/user_mongo.go
package userRepo

import (
	"context"
	"time"

	"estateconnect/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo is the MongoDB-backed implementation of UserRepository.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a repository bound to the users collection.
func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{coll: database.DB().Collection("users")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
