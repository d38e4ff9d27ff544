package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// ProfileReader defines read operations for profiles.
type ProfileReader interface {
	GetByEmail(ctx context.Context, email string) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Save(ctx context.Context, userID uuid.UUID, firstName, lastName, phone string, birthDate *time.Time, postalCode, address, city string) (uuid.UUID, error)
	SetPictureURL(ctx context.Context, email, url string) (int64, error)
}

// UserCompleter defines the account mutations driven by profile flows.
type UserCompleter interface {
	SetComplete(ctx context.Context, userID uuid.UUID) error
	SetPushToken(ctx context.Context, email, token string) (int64, error)
}

// ProfileService handles profile completion, reads, photo and push-token
// updates.
type ProfileService struct {
	userReader    UserGetter
	profileReader ProfileReader
	profileWriter ProfileWriter
	userWriter    UserCompleter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(userReader UserGetter, profileReader ProfileReader, profileWriter ProfileWriter, userWriter UserCompleter) *ProfileService {
	return &ProfileService{
		userReader:    userReader,
		profileReader: profileReader,
		profileWriter: profileWriter,
		userWriter:    userWriter,
	}
}

// parseBirthDate accepts DD/MM/YYYY as sent by the registration form.
// Anything else is stored as null, matching the form's own leniency.
func parseBirthDate(birthDate string) *time.Time {
	if birthDate == "" {
		return nil
	}
	t, err := time.Parse("02/01/2006", birthDate)
	if err != nil {
		logger.Log.Warnw("unparseable birth date, storing null", "birth_date", birthDate)
		return nil
	}
	return &t
}

// Complete attaches a profile to an account and marks the account complete.
// The caller runs it inside a per-request transaction: either both writes
// land or neither does.
func (svc *ProfileService) Complete(
	ctx context.Context,
	email, firstName, lastName, phone, birthDate, postalCode, address, city string,
) (userID, profileID uuid.UUID, err error) {
	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, uuid.Nil, ErrUserNotFound
	}

	profileID, err = svc.profileWriter.Save(ctx, user.UserID, firstName, lastName, phone,
		parseBirthDate(birthDate), postalCode, address, city)
	if err != nil {
		logger.Log.Errorw("failed to save profile", "err", err)
		return uuid.Nil, uuid.Nil, err
	}

	if err := svc.userWriter.SetComplete(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to mark user complete", "err", err)
		return uuid.Nil, uuid.Nil, err
	}

	return user.UserID, profileID, nil
}

// Get returns the profile for the account with the given email.
func (svc *ProfileService) Get(ctx context.Context, email string) (*models.ProfileDB, error) {
	profile, err := svc.profileReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// SetPicture stores the profile photo URL for the given account.
func (svc *ProfileService) SetPicture(ctx context.Context, email, url string) error {
	rows, err := svc.profileWriter.SetPictureURL(ctx, email, url)
	if err != nil {
		logger.Log.Errorw("failed to set profile picture", "err", err)
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SavePushToken registers the device push token for the given account.
func (svc *ProfileService) SavePushToken(ctx context.Context, email, token string) error {
	rows, err := svc.userWriter.SetPushToken(ctx, email, token)
	if err != nil {
		logger.Log.Errorw("failed to save push token", "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
