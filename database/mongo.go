package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"saaarchi/models"
)

const projectsCollection = "projects"

// MongoStore is the MongoDB-backed ProjectStore. Documents use the same
// collection and camelCase field names as the site's original data.
type MongoStore struct {
	Client     *mongo.Client
	collection *mongo.Collection
}

type projectDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Date        string             `bson:"date"`
	Tags        []string           `bson:"tags"`
	Description string             `bson:"description"`
	Thumbnail   string             `bson:"thumbnail"`
	Images      []string           `bson:"images"`
	Location    string             `bson:"location"`
	AreaLabel   string             `bson:"areaLabel"`
	Program     string             `bson:"program"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Printf("MongoDB connection established (database=%s)", database)
	return &MongoStore{
		Client:     client,
		collection: client.Database(database).Collection(projectsCollection),
	}, nil
}

func (s *MongoStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	for cursor.Next(ctx) {
		var doc projectDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, doc.toProject())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func (s *MongoStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var doc projectDocument
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project := doc.toProject()
	return &project, nil
}

func (s *MongoStore) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	now := mongoNow()
	doc := toDocument(p)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	project := doc.toProject()
	log.Printf("Created project: %s (ID: %s)", project.Title, project.ID)
	return &project, nil
}

// UpdateProject replaces every mutable field; _id and createdAt are kept.
func (s *MongoStore) UpdateProject(ctx context.Context, id string, p models.Project) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	doc := toDocument(p)
	update := bson.M{"$set": bson.M{
		"title":       doc.Title,
		"date":        doc.Date,
		"tags":        doc.Tags,
		"description": doc.Description,
		"thumbnail":   doc.Thumbnail,
		"images":      doc.Images,
		"location":    doc.Location,
		"areaLabel":   doc.AreaLabel,
		"program":     doc.Program,
		"status":      doc.Status,
		"updatedAt":   mongoNow(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated projectDocument
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	project := updated.toProject()
	log.Printf("Updated project: %s", project.ID)
	return &project, nil
}

func (s *MongoStore) DeleteProject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}

	log.Printf("Deleted project: %s", id)
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
		return
	}
	log.Println("MongoDB connection closed")
}

// MongoDB keeps millisecond precision; truncating keeps returned values equal
// to what a later read yields.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func toDocument(p models.Project) projectDocument {
	return projectDocument{
		Title:       p.Title,
		Date:        p.Date,
		Tags:        nonNil(p.Tags),
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      nonNil(p.Images),
		Location:    p.Location,
		AreaLabel:   p.AreaLabel,
		Program:     p.Program,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d projectDocument) toProject() models.Project {
	status := models.Status(d.Status)
	if status == "" {
		status = models.StatusInProgress
	}

	return models.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Date:        d.Date,
		Tags:        nonNil(d.Tags),
		Description: d.Description,
		Thumbnail:   d.Thumbnail,
		Images:      nonNil(d.Images),
		Location:    d.Location,
		AreaLabel:   d.AreaLabel,
		Program:     d.Program,
		Status:      status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
