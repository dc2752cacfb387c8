package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

var (
	// ErrAuthenticationRequired is returned when an anonymous caller tries to submit a rating.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrInvalidScore is returned when the submitted score is outside the accepted range.
	ErrInvalidScore = errors.New("score out of range")
)

// RatingUpserter defines the write operation for ratings.
type RatingUpserter interface {
	Upsert(ctx context.Context, userID, movieID int64, score int) (models.RatingDB, bool, error)
}

// RatingLister defines read operations for ratings.
type RatingLister interface {
	ListByMovieID(ctx context.Context, movieID int64) ([]models.RatingDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.RatingDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RatingService handles rating submissions and Kafka publishing.
type RatingService struct {
	writeRepo   RatingUpserter
	readRepo    RatingLister
	kafkaWriter KafkaWriter
}

// NewRatingService creates a new RatingService.
func NewRatingService(writeRepo RatingUpserter, readRepo RatingLister, kafkaWriter KafkaWriter) *RatingService {
	return &RatingService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a rating activity event to Kafka.
func (s *RatingService) publishEvent(ctx context.Context, event models.RatingEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rating event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.MovieID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rating event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Rating event published to Kafka", "event_id", event.EventID, "movie_id", event.MovieID)
	}
}

// Submit records the acting user's score for a movie. The first submission
// for a (user, movie) pair creates a row; later ones overwrite its score.
// Returns true when the rating was newly created.
func (s *RatingService) Submit(ctx context.Context, userID, movieID int64, score int) (bool, error) {
	if userID == 0 {
		logger.Log.Infow("anonymous rating submission rejected", "movie_id", movieID)
		return false, ErrAuthenticationRequired
	}
	if score < models.MinScore || score > models.MaxScore {
		logger.Log.Infow("rating score out of range", "user_id", userID, "movie_id", movieID, "score", score)
		return false, ErrInvalidScore
	}

	rating, created, err := s.writeRepo.Upsert(ctx, userID, movieID, score)
	if err != nil {
		logger.Log.Errorw("failed to upsert rating", "user_id", userID, "movie_id", movieID, "error", err)
		return false, err
	}

	operation := "updated"
	if created {
		operation = "created"
	}
	event := models.RatingEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    rating.UserID,
		MovieID:   rating.MovieID,
		Score:     rating.Score,
		Operation: operation,
	}
	s.publishEvent(ctx, event)

	return created, nil
}

// ListForMovie returns all ratings for a movie ordered by user id ascending.
func (s *RatingService) ListForMovie(ctx context.Context, movieID int64) ([]models.RatingDB, error) {
	ratings, err := s.readRepo.ListByMovieID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "movie_id", movieID, "error", err)
		return nil, err
	}
	return ratings, nil
}

// ListForUser returns all ratings submitted by a user ordered by movie id.
func (s *RatingService) ListForUser(ctx context.Context, userID int64) ([]models.RatingDB, error) {
	ratings, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "user_id", userID, "error", err)
		return nil, err
	}
	return ratings, nil
}
