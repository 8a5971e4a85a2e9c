package mongo

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout. Derived metrics are expected to be computed
// by the caller before insert.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.UserID == "" {
		return primitive.NilObjectID, errors.New("workout requires user_id")
	}
	workout.ID = primitive.NewObjectID()
	if workout.Exercises == nil {
		workout.Exercises = []domain.WorkoutExercise{}
	}

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// Feed retrieves up to limit workouts sorted by date descending, newest
// first. An empty userID means no user filter.
func (r *mongoWorkoutRepository) Feed(ctx context.Context, userID string, limit int64) ([]domain.Workout, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	workouts := []domain.Workout{}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// IncrementLikes atomically increments the likes counter and returns the
// updated document. This is a single find-and-modify at the storage layer so
// concurrent likes on the same workout never lose an increment.
func (r *mongoWorkoutRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"likes": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var workout domain.Workout
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// Serves the feed query: filter by user, newest first.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := db.Collection(workoutCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}
