package mongo

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
)

const usersCollection = "usuarios"

// UserDirectory is the Mongo-backed directory. The unique index on email
// settles the check-and-insert race server-side: the second insert for a
// given email fails with a duplicate-key error regardless of interleaving.
type UserDirectory struct {
	coll *mongo.Collection
}

var _ ports.UserDirectory = (*UserDirectory)(nil)

func NewUserDirectory(db *mongo.Database) *UserDirectory {
	return &UserDirectory{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (d *UserDirectory) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (d *UserDirectory) Insert(ctx context.Context, user *domain.User) (string, error) {
	doc := *user
	doc.ID = xid.New().String()

	if _, err := d.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailInUse
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return doc.ID, nil
}

// ListAll returns users sorted by _id ascending. Ids are k-sortable xids,
// so this is insertion order.
func (d *UserDirectory) ListAll(ctx context.Context) ([]*domain.User, error) {
	return d.find(ctx, bson.M{})
}

func (d *UserDirectory) FindByFilters(ctx context.Context, filters map[string]string) ([]*domain.User, error) {
	query := bson.M{}
	for field, value := range filters {
		if field == "administrador" {
			// Stored as a bool; a value that is neither literal matches nothing.
			switch value {
			case "true":
				query[field] = true
			case "false":
				query[field] = false
			default:
				return []*domain.User{}, nil
			}
			continue
		}
		query[field] = value
	}
	return d.find(ctx, query)
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := d.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (d *UserDirectory) HasField(name string) bool {
	return domain.FilterableField(name)
}

func (d *UserDirectory) find(ctx context.Context, query bson.M) ([]*domain.User, error) {
	cursor, err := d.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]*domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
