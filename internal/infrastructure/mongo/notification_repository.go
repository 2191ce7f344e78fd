package mongo

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// notificationDoc forma del documento en la colección.
type notificationDoc struct {
	ID        string    `bson:"_id"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"created_at"`
}

func toDoc(n *entity.Notification) notificationDoc {
	return notificationDoc{ID: n.ID, Subject: n.Subject, Message: n.Message, Read: n.Read, CreatedAt: n.CreatedAt}
}

func (d notificationDoc) entity() *entity.Notification {
	return &entity.Notification{ID: d.ID, Subject: d.Subject, Message: d.Message, Read: d.Read, CreatedAt: d.CreatedAt}
}

// NotificationRepo implementación del puerto NotificationRepository sobre una colección MongoDB.
type NotificationRepo struct {
	coll *mongo.Collection
}

// NewNotificationRepository construye el adaptador sobre db.collection.
func NewNotificationRepository(client *mongo.Client, database, collection string) *NotificationRepo {
	return &NotificationRepo{coll: client.Database(database).Collection(collection)}
}

// EnsureIndexes crea el índice por fecha usado al listar.
func (r *NotificationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create notifications index: %w", err)
	}
	return nil
}

// Save inserta la notificación. El ID lo asigna el servicio.
func (r *NotificationRepo) Save(ctx context.Context, n *entity.Notification) error {
	if _, err := r.coll.InsertOne(ctx, toDoc(n)); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Stream recorre la colección por fecha de creación sin cargarla entera en memoria.
func (r *NotificationRepo) Stream(ctx context.Context) iter.Seq2[*entity.Notification, error] {
	return func(yield func(*entity.Notification, error) bool) {
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
		cur, err := r.coll.Find(ctx, bson.D{}, opts)
		if err != nil {
			yield(nil, fmt.Errorf("find notifications: %w", err))
			return
		}
		defer cur.Close(context.Background())
		for cur.Next(ctx) {
			var doc notificationDoc
			if err := cur.Decode(&doc); err != nil {
				yield(nil, fmt.Errorf("decode notification: %w", err))
				return
			}
			if !yield(doc.entity(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate notifications: %w", err))
		}
	}
}
