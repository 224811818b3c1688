package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"dukaan/internal/models"
)

// FirestoreStore keeps order documents in a single Firestore collection.
// The serverTimestamp tag on OrderRecord.CreatedAt makes Firestore assign
// the creation time at write, so callers cannot supply their own clock.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsFile, collection string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	if collection == "" {
		collection = "orders"
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

func (s *FirestoreStore) Save(ctx context.Context, id string, rec *models.OrderRecord) error {
	_, err := s.client.Collection(s.collection).Doc(id).Set(ctx, rec)
	return err
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (*models.OrderRecord, error) {
	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var rec models.OrderRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *FirestoreStore) List(ctx context.Context, limit int) (map[string]*models.OrderRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	iter := s.client.Collection(s.collection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()
	out := make(map[string]*models.OrderRecord)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var rec models.OrderRecord
		if err := snap.DataTo(&rec); err != nil {
			return nil, err
		}
		out[snap.Ref.ID] = &rec
	}
	return out, nil
}

// NewID reserves a fresh document id without writing anything.
func (s *FirestoreStore) NewID() string {
	return s.client.Collection(s.collection).NewDoc().ID
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
