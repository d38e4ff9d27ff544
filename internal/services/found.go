package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// FoundReader lists acknowledgments for a pet owner.
type FoundReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FoundPetContact, error)
}

// FoundWriter inserts acknowledgments.
type FoundWriter interface {
	Save(ctx context.Context, alertID, finderID uuid.UUID) (uuid.UUID, error)
}

// FoundService handles finder acknowledgments. Acknowledging never touches
// the alert itself and sends no synchronous notification to the owner; the
// owner discovers acknowledgments through ListForOwner.
type FoundService struct {
	reader      FoundReader
	writer      FoundWriter
	kafkaWriter KafkaWriter
}

// NewFoundService creates a new FoundService.
func NewFoundService(reader FoundReader, writer FoundWriter, kafkaWriter KafkaWriter) *FoundService {
	return &FoundService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Acknowledge records that the finder located the pet of the given alert.
// The alert is not checked for existence or resolution state.
func (s *FoundService) Acknowledge(ctx context.Context, alertID, finderID uuid.UUID) (uuid.UUID, error) {
	id, err := s.writer.Save(ctx, alertID, finderID)
	if err != nil {
		logger.Log.Errorw("failed to save acknowledgment", "alert_id", alertID, "finder_id", finderID, "error", err)
		return uuid.Nil, err
	}

	publishAlertEvent(ctx, s.kafkaWriter, models.AlertEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "pet_found",
		AlertID:   alertID.String(),
		UserID:    finderID.String(),
	})

	return id, nil
}

// ListForOwner returns the acknowledgments for the owner's alerts together
// with each finder's contact details, newest first.
func (s *FoundService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FoundPetContact, error) {
	contacts, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list acknowledgments", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return contacts, nil
}
