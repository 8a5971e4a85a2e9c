package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Collection names, one per domain record type. Declared here explicitly
// rather than derived from type names.
const (
	userCollectionName      = "user"
	workoutCollectionName   = "workout"
	challengeCollectionName = "challenge"
	reactionCollectionName  = "reaction" // reserved, no endpoint yet
)

// CollectionNames returns the collections exposed by the schema overview
// endpoint, in a stable order.
func CollectionNames() []string {
	return []string{userCollectionName, workoutCollectionName, challengeCollectionName}
}

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection. Use a separate context
	// for the ping, as the initial connection might have succeeded but the
	// server might be unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		// If ping fails, disconnect the client before returning the error
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// Status describes the state of the storage connection as reported by the
// diagnostic endpoint.
type Status struct {
	Connected   bool
	Error       string
	Collections []string
}

// StatusProbe reports on a live database handle.
type StatusProbe struct {
	db *mongo.Database
}

// NewStatusProbe creates a probe over the given database handle. The handle
// may be nil, in which case the probe reports a not-configured status.
func NewStatusProbe(db *mongo.Database) *StatusProbe {
	return &StatusProbe{db: db}
}

// DatabaseName returns the name of the probed database, or "" when no
// database handle is configured.
func (p *StatusProbe) DatabaseName() string {
	if p.db == nil {
		return ""
	}
	return p.db.Name()
}

// Check pings the server and lists up to max collection names. It never
// returns an error; failures degrade into the Status.Error field.
func (p *StatusProbe) Check(ctx context.Context, max int) Status {
	if p.db == nil {
		return Status{Error: "database handle not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return Status{Error: err.Error()}
	}

	names, err := p.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return Status{Connected: true, Error: err.Error()}
	}
	if len(names) > max {
		names = names[:max]
	}
	return Status{Connected: true, Collections: names}
}
