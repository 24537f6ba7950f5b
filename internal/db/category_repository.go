package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"qaboard-backend-go/internal/models"
)

const categoriesCollection = "categories"

// firestoreCategoryRepository implements CategoryRepository using Firestore.
type firestoreCategoryRepository struct {
	client *firestore.Client
}

// NewFirestoreCategoryRepository creates a new instance of firestoreCategoryRepository.
func NewFirestoreCategoryRepository(client *firestore.Client) CategoryRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CategoryRepository.")
	}
	return &firestoreCategoryRepository{client: client}
}

// List retrieves every category document. Ordering (ascending `order`) is the
// data source adapter's responsibility, not the repository's.
func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	iter := r.client.Collection(categoriesCollection).Documents(ctx)
	defer iter.Stop()

	var categories []*models.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var category models.Category
		if err := doc.DataTo(&category); err != nil {
			log.Printf("Error decoding category data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		if category.Slug == "" {
			category.Slug = doc.Ref.ID
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

// GetBySlug retrieves a category document by its slug (the document ID).
func (r *firestoreCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		return nil, errors.New("slug cannot be empty for GetBySlug operation")
	}
	docSnap, err := r.client.Collection(categoriesCollection).Doc(slug).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("category '%s' not found: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category '%s': %w", slug, err)
	}

	var category models.Category
	if err := docSnap.DataTo(&category); err != nil {
		return nil, fmt.Errorf("failed to decode category data for '%s': %w", slug, err)
	}
	if category.Slug == "" {
		category.Slug = docSnap.Ref.ID
	}
	return &category, nil
}

// Upsert writes a category with merge semantics, keyed by slug.
// MergeAll requires map data, so the snapshot fields are written explicitly;
// fields not listed here survive on the remote document.
func (r *firestoreCategoryRepository) Upsert(ctx context.Context, category *models.Category) error {
	if category == nil || category.Slug == "" {
		return errors.New("category slug cannot be empty for Upsert operation")
	}
	data := map[string]interface{}{
		"slug":    category.Slug,
		"titleEn": category.TitleEn,
		"titleZh": category.TitleZh,
		"order":   category.Order,
	}
	_, err := r.client.Collection(categoriesCollection).Doc(category.Slug).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert category '%s': %w", category.Slug, err)
	}
	return nil
}
