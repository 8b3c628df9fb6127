package domainsettings

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoCollection is the collection MongoStore uses when none is given.
const DefaultMongoCollection = "language_domains"

// mongoDomain is one document of the language domains collection.
// home_url is duplicated on every document so a single find returns everything.
type mongoDomain struct {
	Language  string `bson:"language"`
	URL       string `bson:"url"`
	Position  int    `bson:"position"`
	IsDefault bool   `bson:"is_default"`
	HomeURL   string `bson:"home_url"`
}

// MongoStore reads settings from a collection with one document per language.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a MongoStore using collection in db.
// An empty collection name selects DefaultMongoCollection.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// Load implements Store.
func (s *MongoStore) Load(ctx context.Context) (Snapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "language", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}

	var docs []mongoDomain
	if err := cur.All(ctx, &docs); err != nil {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}
	if len(docs) == 0 {
		return Snapshot{}, ErrSettingsNotFound
	}

	snap := Snapshot{Domains: make(Domains, 0, len(docs))}
	for _, doc := range docs {
		if snap.HomeURL == "" {
			snap.HomeURL = doc.HomeURL
		}
		if doc.IsDefault {
			snap.DefaultLanguage = doc.Language
		}
		snap.Domains = append(snap.Domains, Domain{Language: doc.Language, URL: doc.URL})
	}
	return snap, nil
}

// Save replaces the whole collection content with snap.
// Without a replica set the delete and insert are not atomic.
func (s *MongoStore) Save(ctx context.Context, snap Snapshot) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if len(snap.Domains) == 0 {
		return nil
	}

	docs := make([]any, 0, len(snap.Domains))
	for i, d := range snap.Domains {
		docs = append(docs, mongoDomain{
			Language:  d.Language,
			URL:       d.URL,
			Position:  i,
			IsDefault: d.Language == snap.DefaultLanguage,
			HomeURL:   snap.HomeURL,
		})
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}
