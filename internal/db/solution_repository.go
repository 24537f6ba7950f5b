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

const solutionsCollection = "solutions"

// firestoreSolutionRepository implements SolutionRepository using Firestore.
// Solutions live under questions/{id}/solutions/{solutionId}.
type firestoreSolutionRepository struct {
	client *firestore.Client
}

// NewFirestoreSolutionRepository creates a new instance of firestoreSolutionRepository.
func NewFirestoreSolutionRepository(client *firestore.Client) SolutionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for SolutionRepository.")
	}
	return &firestoreSolutionRepository{client: client}
}

func (r *firestoreSolutionRepository) col(questionID string) *firestore.CollectionRef {
	return r.client.Collection(questionsCollection).Doc(questionID).Collection(solutionsCollection)
}

// ListByQuestion retrieves every solution of a question. An empty result is
// valid (the question simply has no solutions yet).
func (r *firestoreSolutionRepository) ListByQuestion(ctx context.Context, questionID string) ([]*models.Solution, error) {
	if questionID == "" {
		return nil, errors.New("questionID cannot be empty for ListByQuestion operation")
	}
	iter := r.col(questionID).Documents(ctx)
	defer iter.Stop()

	var solutions []*models.Solution
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate solutions for question '%s': %w", questionID, err)
		}

		var solution models.Solution
		if err := doc.DataTo(&solution); err != nil {
			log.Printf("Error decoding solution data (question: %s, ID: %s): %v. Skipping.", questionID, doc.Ref.ID, err)
			continue
		}
		if solution.ID == "" {
			solution.ID = doc.Ref.ID
		}
		solutions = append(solutions, &solution)
	}
	return solutions, nil
}

// Create adds a new solution document under the question, keyed by solution.ID.
func (r *firestoreSolutionRepository) Create(ctx context.Context, questionID string, solution *models.Solution) error {
	if questionID == "" {
		return errors.New("questionID cannot be empty for Create operation")
	}
	if solution == nil || solution.ID == "" {
		return errors.New("solution ID cannot be empty for Create operation")
	}
	_, err := r.col(questionID).Doc(solution.ID).Create(ctx, solution)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("solution '%s' already exists under question '%s': %w", solution.ID, questionID, err)
		}
		return fmt.Errorf("failed to create solution '%s' under question '%s': %w", solution.ID, questionID, err)
	}
	return nil
}

// Upsert writes a solution with merge semantics (seeding only).
func (r *firestoreSolutionRepository) Upsert(ctx context.Context, questionID string, solution *models.Solution) error {
	if questionID == "" {
		return errors.New("questionID cannot be empty for Upsert operation")
	}
	if solution == nil || solution.ID == "" {
		return errors.New("solution ID cannot be empty for Upsert operation")
	}
	data := map[string]interface{}{
		"id":           solution.ID,
		"contentEn":    solution.ContentEn,
		"contentZh":    solution.ContentZh,
		"upvotesCount": solution.UpvotesCount,
		"createdBy":    solution.CreatedBy,
	}
	_, err := r.col(questionID).Doc(solution.ID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert solution '%s' under question '%s': %w", solution.ID, questionID, err)
	}
	return nil
}

// Upvote records a vote under questions/{id}/solutions/{sid}/votes/{uid} and
// increments the solution's counter in the same transaction.
func (r *firestoreSolutionRepository) Upvote(ctx context.Context, questionID, solutionID, uid string) (int, error) {
	if questionID == "" || solutionID == "" || uid == "" {
		return 0, errors.New("questionID, solutionID and uid are required for Upvote operation")
	}
	solutionRef := r.col(questionID).Doc(solutionID)
	voteRef := solutionRef.Collection(votesCollection).Doc(uid)
	return upvoteInTransaction(ctx, r.client, solutionRef, voteRef, uid)
}
