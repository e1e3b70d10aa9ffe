package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/checkin/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LimitsDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewLimitsDB() (*LimitsDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("CHECKIN_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env CHECKIN_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("checkinDB")
	coll := db.Collection("limits")

	return &LimitsDB{client, coll}, nil
}

// Лимиты действий в день, если документа нет - дефолт (1 чекин, 10 бонусов)
func (l *LimitsDB) GetLimits(ctx context.Context) (model.Limits, error) {
	var limits model.Limits
	err := l.coll.FindOne(ctx, bson.M{}).Decode(&limits)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.DefaultLimits(), nil
		}
		return model.DefaultLimits(), err
	}
	if limits.CheckIn <= 0 || limits.Bonus <= 0 {
		return model.DefaultLimits(), nil
	}
	return limits, nil
}
