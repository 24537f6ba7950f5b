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

const (
	questionsCollection = "questions"
	votesCollection     = "votes"
)

// firestoreQuestionRepository implements QuestionRepository using Firestore.
type firestoreQuestionRepository struct {
	client *firestore.Client
}

// NewFirestoreQuestionRepository creates a new instance of firestoreQuestionRepository.
func NewFirestoreQuestionRepository(client *firestore.Client) QuestionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for QuestionRepository.")
	}
	return &firestoreQuestionRepository{client: client}
}

func (r *firestoreQuestionRepository) col() *firestore.CollectionRef {
	return r.client.Collection(questionsCollection)
}

// List retrieves every question document. Sorting by upvotesCount is the data
// source adapter's responsibility.
func (r *firestoreQuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	return r.listQuery(ctx, r.col().Query)
}

// ListByCategory retrieves every question whose category field equals slug.
// An empty result is a valid result, not an error.
func (r *firestoreQuestionRepository) ListByCategory(ctx context.Context, slug string) ([]*models.Question, error) {
	if slug == "" {
		return nil, errors.New("slug cannot be empty for ListByCategory operation")
	}
	return r.listQuery(ctx, r.col().Where("category", "==", slug))
}

func (r *firestoreQuestionRepository) listQuery(ctx context.Context, query firestore.Query) ([]*models.Question, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var questions []*models.Question
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate questions: %w", err)
		}

		var question models.Question
		if err := doc.DataTo(&question); err != nil {
			log.Printf("Error decoding question data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		if question.ID == "" {
			question.ID = doc.Ref.ID
		}
		questions = append(questions, &question)
	}
	return questions, nil
}

// GetByID retrieves a question document by its ID.
func (r *firestoreQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty for GetByID operation")
	}
	docSnap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("question '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get question '%s': %w", id, err)
	}

	var question models.Question
	if err := docSnap.DataTo(&question); err != nil {
		return nil, fmt.Errorf("failed to decode question data for '%s': %w", id, err)
	}
	if question.ID == "" {
		question.ID = docSnap.Ref.ID
	}
	return &question, nil
}

// Create adds a new question document, keyed by question.ID.
// CreatedAt is populated server-side via the serverTimestamp tag.
func (r *firestoreQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question == nil || question.ID == "" {
		return errors.New("question ID cannot be empty for Create operation")
	}
	_, err := r.col().Doc(question.ID).Create(ctx, question)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("question '%s' already exists: %w", question.ID, err)
		}
		return fmt.Errorf("failed to create question '%s': %w", question.ID, err)
	}
	return nil
}

// Upsert writes a question with merge semantics (seeding only). The counter is
// written as provided by the snapshot; fields absent here are preserved.
func (r *firestoreQuestionRepository) Upsert(ctx context.Context, question *models.Question) error {
	if question == nil || question.ID == "" {
		return errors.New("question ID cannot be empty for Upsert operation")
	}
	data := map[string]interface{}{
		"id":           question.ID,
		"category":     question.Category,
		"titleEn":      question.TitleEn,
		"titleZh":      question.TitleZh,
		"detailEn":     question.DetailEn,
		"detailZh":     question.DetailZh,
		"upvotesCount": question.UpvotesCount,
		"createdBy":    question.CreatedBy,
	}
	_, err := r.col().Doc(question.ID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert question '%s': %w", question.ID, err)
	}
	return nil
}

// Upvote records a vote for uid under questions/{id}/votes/{uid} and increments
// upvotesCount, all in one transaction. The transactional read of the vote
// document makes the duplicate check race-free, and the increment cannot lose
// concurrent updates from other identities.
func (r *firestoreQuestionRepository) Upvote(ctx context.Context, questionID, uid string) (int, error) {
	if questionID == "" || uid == "" {
		return 0, errors.New("questionID and uid are required for Upvote operation")
	}
	questionRef := r.col().Doc(questionID)
	voteRef := questionRef.Collection(votesCollection).Doc(uid)
	return upvoteInTransaction(ctx, r.client, questionRef, voteRef, uid)
}

// upvoteInTransaction runs the shared upvote protocol for a target document
// (question or solution) and its vote subcollection document.
func upvoteInTransaction(ctx context.Context, client *firestore.Client, targetRef, voteRef *firestore.DocumentRef, uid string) (int, error) {
	var newCount int
	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		targetSnap, err := tx.Get(targetRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return fmt.Errorf("failed to read upvote target: %w", err)
		}

		_, err = tx.Get(voteRef)
		if err == nil {
			return ErrAlreadyVoted
		}
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to read vote document: %w", err)
		}

		current := 0
		if raw, err := targetSnap.DataAt("upvotesCount"); err == nil {
			if n, ok := raw.(int64); ok {
				current = int(n)
			}
		}
		newCount = current + 1

		if err := tx.Create(voteRef, &models.Vote{UID: uid}); err != nil {
			return fmt.Errorf("failed to create vote document: %w", err)
		}
		return tx.Update(targetRef, []firestore.Update{
			{Path: "upvotesCount", Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}
