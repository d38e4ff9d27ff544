package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// ErrAlertNotFound is returned when a resolution matches no alert rows.
var ErrAlertNotFound = errors.New("emergency alert not found")

// NotifyOutcome reports how the neighbor fan-out went. The alert write
// itself already succeeded in every case; the outcome only selects the
// success message shown to the caller.
type NotifyOutcome int

const (
	NotifyDelivered    NotifyOutcome = iota // batch accepted by the gateway
	NotifyNoRecipients                      // no neighbor in the colonia has a token
	NotifyFailed                            // gateway call failed, logged and swallowed
)

// notifyKind selects the push template.
type notifyKind string

const (
	kindLost      notifyKind = "lost"
	kindRecovered notifyKind = "recovered"
)

// AlertReader defines read operations for alerts.
type AlertReader interface {
	ListByColonia(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error)
	ListByReporter(ctx context.Context, userID uuid.UUID) ([]models.EmergencyAlertDB, error)
}

// AlertWriter defines write operations for alerts.
type AlertWriter interface {
	Save(ctx context.Context, userID uuid.UUID, petName, petType string, description, imageURL *string, colonia string, lostDate time.Time) (uuid.UUID, error)
	DeleteByReporterAndPet(ctx context.Context, userID uuid.UUID, petName, petType string) ([]string, error)
}

// NeighborTokensReader lists push tokens of users sharing a colonia.
type NeighborTokensReader interface {
	GetNeighborPushTokens(ctx context.Context, colonia, excludeEmail string) ([]string, error)
}

// Pusher submits one batched call to the push gateway.
type Pusher interface {
	SendBatch(ctx context.Context, messages []models.PushMessage) error
}

// LostPetsCache caches colony feeds.
type LostPetsCache interface {
	Get(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error)
	Set(ctx context.Context, colonia string, alerts []models.EmergencyAlertDB) error
	Invalidate(ctx context.Context, colonia string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AlertPetInput is the pet snapshot denormalized into a new alert.
type AlertPetInput struct {
	Name        string
	Type        string
	Description *string
	PhotoURL    *string
	LostDate    *time.Time // nil defaults to today
}

// AlertsService implements the lost-pet alert lifecycle: create, feed
// queries, resolution, and the best-effort neighbor notification fan-out
// around each state change.
type AlertsService struct {
	userReader    UserGetter
	profileReader ProfileReader
	tokensReader  NeighborTokensReader
	reader        AlertReader
	writer        AlertWriter
	pusher        Pusher
	cache         LostPetsCache
	kafkaWriter   KafkaWriter
}

// NewAlertsService creates a new AlertsService.
func NewAlertsService(
	userReader UserGetter,
	profileReader ProfileReader,
	tokensReader NeighborTokensReader,
	reader AlertReader,
	writer AlertWriter,
	pusher Pusher,
	cache LostPetsCache,
	kafkaWriter KafkaWriter,
) *AlertsService {
	return &AlertsService{
		userReader:    userReader,
		profileReader: profileReader,
		tokensReader:  tokensReader,
		reader:        reader,
		writer:        writer,
		pusher:        pusher,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
	}
}

// Report inserts a lost-pet alert for the reporter and triggers the
// neighbor fan-out in the same colonia, excluding the reporter's own
// token. Only the alert insert can fail the call; notification problems
// degrade to the returned outcome.
func (s *AlertsService) Report(ctx context.Context, email, colonia string, pet AlertPetInput) (NotifyOutcome, error) {
	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve reporter", "email", email, "error", err)
		return NotifyFailed, err
	}
	if user == nil {
		return NotifyFailed, ErrUserNotFound
	}

	lostDate := time.Now()
	if pet.LostDate != nil {
		lostDate = *pet.LostDate
	}

	alertID, err := s.writer.Save(ctx, user.UserID, pet.Name, pet.Type, pet.Description, pet.PhotoURL, colonia, lostDate)
	if err != nil {
		logger.Log.Errorw("failed to save alert", "email", email, "colonia", colonia, "error", err)
		return NotifyFailed, err
	}

	s.invalidateFeed(ctx, colonia)

	outcome := s.notifyNeighbors(ctx, colonia, email, pet.Name, pet.Type, kindLost)

	s.publishEvent(ctx, models.AlertEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "alert_created",
		AlertID:   alertID.String(),
		UserID:    user.UserID.String(),
		PetName:   pet.Name,
		PetType:   pet.Type,
		Colonia:   colonia,
	})

	return outcome, nil
}

// Feed returns the colony lost-pets feed, newest first, through the
// best-effort Redis cache.
func (s *AlertsService) Feed(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, colonia); err != nil {
			logger.Log.Warnw("feed cache read failed", "colonia", colonia, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	alerts, err := s.reader.ListByColonia(ctx, colonia)
	if err != nil {
		logger.Log.Errorw("failed to list alerts by colonia", "colonia", colonia, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, colonia, alerts); err != nil {
			logger.Log.Warnw("feed cache write failed", "colonia", colonia, "error", err)
		}
	}

	return alerts, nil
}

// OwnerFeed returns the alerts reported by the account with the given
// email, newest first.
func (s *AlertsService) OwnerFeed(ctx context.Context, email string) ([]models.EmergencyAlertDB, error) {
	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve reporter", "email", email, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	alerts, err := s.reader.ListByReporter(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list alerts by reporter", "email", email, "error", err)
		return nil, err
	}

	return alerts, nil
}

// Resolve marks a pet recovered: it deletes every alert matching the
// composite (reporter, pet name, pet type) key and re-notifies the
// reporter's colonia with the recovered template. Zero deleted rows is the
// ErrAlertNotFound case.
func (s *AlertsService) Resolve(ctx context.Context, email, petName, petType string) (NotifyOutcome, error) {
	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve reporter", "email", email, "error", err)
		return NotifyFailed, err
	}
	if user == nil {
		return NotifyFailed, ErrUserNotFound
	}

	// The colonia for the recovered fan-out comes from the reporter's own
	// profile, not from the alert rows being deleted.
	profile, err := s.profileReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get reporter profile", "email", email, "error", err)
		return NotifyFailed, err
	}

	colonias, err := s.writer.DeleteByReporterAndPet(ctx, user.UserID, petName, petType)
	if err != nil {
		logger.Log.Errorw("failed to delete alert", "email", email, "pet_name", petName, "error", err)
		return NotifyFailed, err
	}
	if len(colonias) == 0 {
		return NotifyFailed, ErrAlertNotFound
	}

	// Each deleted alert was stored under the colonia supplied at report
	// time, which can differ from the reporter's current profile colonia.
	invalidated := map[string]struct{}{}
	for _, colonia := range colonias {
		if _, ok := invalidated[colonia]; ok {
			continue
		}
		invalidated[colonia] = struct{}{}
		s.invalidateFeed(ctx, colonia)
	}

	outcome := NotifyNoRecipients
	colonia := ""
	if profile != nil {
		colonia = profile.Address
		outcome = s.notifyNeighbors(ctx, colonia, email, petName, petType, kindRecovered)
	}

	s.publishEvent(ctx, models.AlertEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "alert_recovered",
		UserID:    user.UserID.String(),
		PetName:   petName,
		PetType:   petType,
		Colonia:   colonia,
	})

	return outcome, nil
}

// notifyNeighbors selects the tokens of the colonia's other users and
// submits one batched gateway call. Best-effort, at most once: any failure
// is logged and folded into the outcome, never into an error.
func (s *AlertsService) notifyNeighbors(ctx context.Context, colonia, excludeEmail, petName, petType string, kind notifyKind) NotifyOutcome {
	tokens, err := s.tokensReader.GetNeighborPushTokens(ctx, colonia, excludeEmail)
	if err != nil {
		logger.Log.Errorw("failed to load neighbor tokens", "colonia", colonia, "error", err)
		return NotifyFailed
	}
	if len(tokens) == 0 {
		logger.Log.Infow("no neighbors with push tokens", "colonia", colonia)
		return NotifyNoRecipients
	}

	title, body := pushCopy(kind, petName, petType)

	messages := make([]models.PushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, models.PushMessage{
			To:    token,
			Title: title,
			Body:  body,
			Sound: "default",
			Data: map[string]string{
				"kind":    string(kind),
				"colonia": colonia,
			},
		})
	}

	if err := s.pusher.SendBatch(ctx, messages); err != nil {
		logger.Log.Errorw("push delivery failed", "colonia", colonia, "batch_size", len(messages), "error", err)
		return NotifyFailed
	}

	return NotifyDelivered
}

// pushCopy builds the notification title and body for a pet and kind.
func pushCopy(kind notifyKind, petName, petType string) (title, body string) {
	switch kind {
	case kindRecovered:
		title = "🎉 ¡Mascota recuperada!"
		body = fmt.Sprintf("%s (%s) ya está de vuelta en casa. ¡Gracias por tu ayuda!", petName, petType)
	default:
		title = "🚨 ¡Mascota perdida en tu colonia!"
		body = fmt.Sprintf("%s (%s) se perdió cerca de ti. Si lo ves, avisa a su dueño.", petName, petType)
	}
	return title, body
}

// invalidateFeed drops the cached colony feed, best-effort.
func (s *AlertsService) invalidateFeed(ctx context.Context, colonia string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, colonia); err != nil {
		logger.Log.Warnw("feed cache invalidation failed", "colonia", colonia, "error", err)
	}
}

// publishEvent publishes an alert-lifecycle event to Kafka, best-effort.
func (s *AlertsService) publishEvent(ctx context.Context, event models.AlertEvent) {
	publishAlertEvent(ctx, s.kafkaWriter, event)
}

// publishAlertEvent is shared by the services that emit lifecycle events.
func publishAlertEvent(ctx context.Context, writer KafkaWriter, event models.AlertEvent) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal alert event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish alert event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Alert event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}
