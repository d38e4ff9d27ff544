package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// ErrInvalidPetType is returned for pet types outside the supported enum.
var ErrInvalidPetType = errors.New("invalid pet type")

// PetReader defines read operations for pets.
type PetReader interface {
	ListByOwnerEmail(ctx context.Context, email string) ([]models.PetDB, error)
}

// PetWriter defines write operations for pets.
type PetWriter interface {
	Save(ctx context.Context, userID uuid.UUID, petType, name, color, size string, features, imageURL *string) (uuid.UUID, error)
}

// PetsService handles the pet registry.
type PetsService struct {
	userReader UserGetter
	reader     PetReader
	writer     PetWriter
}

// NewPetsService creates a new PetsService instance.
func NewPetsService(userReader UserGetter, reader PetReader, writer PetWriter) *PetsService {
	return &PetsService{
		userReader: userReader,
		reader:     reader,
		writer:     writer,
	}
}

// Create registers a pet owned by the account with the given email.
func (svc *PetsService) Create(
	ctx context.Context,
	email, petType, name, color, size string,
	features, photoURL *string,
) (uuid.UUID, error) {
	if petType != models.PetTypeDog && petType != models.PetTypeCat {
		return uuid.Nil, ErrInvalidPetType
	}

	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}

	id, err := svc.writer.Save(ctx, user.UserID, petType, name, color, size, features, photoURL)
	if err != nil {
		logger.Log.Errorw("failed to save pet", "err", err)
		return uuid.Nil, err
	}

	return id, nil
}

// List returns the pets of the account with the given email, newest first.
func (svc *PetsService) List(ctx context.Context, email string) ([]models.PetDB, error) {
	pets, err := svc.reader.ListByOwnerEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list pets", "err", err)
		return nil, err
	}
	return pets, nil
}
