package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

const sessionCollection = "sessions"

// SessionStore persists sessions in MongoDB. Each document holds the two
// entries that make up a session — the upstream bearer token and the
// serialized user profile — in a single record, so they can only ever exist
// or disappear together. A TTL index on expires_at reaps stale sessions.
type SessionStore struct {
	coll *mongo.Collection
	ttl  time.Duration
}

type sessionDoc struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"token"`
	User      string    `bson:"user"` // JSON-serialized profile
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func NewSessionStore(db *mongo.Database, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{coll: db.Collection(sessionCollection), ttl: ttl}
}

// EnsureIndexes creates the TTL index. Call once at startup.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	profile, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("serialize session user: %w", err)
	}

	now := time.Now().UTC()
	doc := sessionDoc{
		ID:        sess.ID,
		Token:     sess.Token,
		User:      string(profile),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": sess.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find loads a session. Entries that are expired, missing their token, or
// whose stored profile no longer parses are deleted and reported as not
// found — corrupt data means "no session", never an error.
func (s *SessionStore) Find(ctx context.Context, id string) (*domain.Session, error) {
	var doc sessionDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if !doc.ExpiresAt.IsZero() && time.Now().After(doc.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	var user domain.User
	if doc.Token == "" || json.Unmarshal([]byte(doc.User), &user) != nil {
		_ = s.Delete(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{ID: doc.ID, Token: doc.Token, User: user}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
