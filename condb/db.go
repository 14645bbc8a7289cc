package condb

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the MongoDB database named by MONGO_DB (default "legacy").
// A missing MONGO_URI or an unreachable server returns nil: the store layer
// then answers every operation with a transport error and the site runs on
// its fallback content instead of crashing at startup.
func Connect() *mongo.Database {
	if err := godotenv.Load(); err != nil {
		log.Println("condb: no .env file, using environment as-is")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Println("condb: MONGO_URI not set, running without a database")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("condb: connect failed:", err)
		return nil
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("condb: ping failed:", err)
		return nil
	}

	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "legacy"
	}

	log.Println("Connected to MongoDB")
	return client.Database(name)
}
