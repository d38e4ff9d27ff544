package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okhuysen/peturnidad-api/internal/models"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

func TestPetsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	petID := uuid.New()

	tests := []struct {
		name      string
		petType   string
		user      *models.UserDB
		readerErr error
		writerErr error
		wantErr   error
	}{
		{
			name:    "dog created",
			petType: models.PetTypeDog,
			user:    &models.UserDB{UserID: userID},
		},
		{
			name:    "cat created",
			petType: models.PetTypeCat,
			user:    &models.UserDB{UserID: userID},
		},
		{
			name:    "invalid pet type",
			petType: "hamster",
			wantErr: services.ErrInvalidPetType,
		},
		{
			name:    "user not found",
			petType: models.PetTypeDog,
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			petType:   models.PetTypeDog,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			petType:   models.PetTypeDog,
			user:      &models.UserDB{UserID: userID},
			writerErr: errors.New("insert error"),
			wantErr:   errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserReader := services.NewMockUserGetter(ctrl)
			mockWriter := services.NewMockPetWriter(ctrl)

			svc := services.NewPetsService(mockUserReader, services.NewMockPetReader(ctrl), mockWriter)

			// Type validation happens before the account lookup.
			if tt.petType == models.PetTypeDog || tt.petType == models.PetTypeCat {
				mockUserReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(tt.user, tt.readerErr)

				if tt.user != nil && tt.readerErr == nil {
					mockWriter.EXPECT().
						Save(gomock.Any(), userID, tt.petType, "Firulais", "café", "mediano", gomock.Nil(), gomock.Nil()).
						Return(petID, tt.writerErr)
				}
			}

			id, err := svc.Create(context.Background(), "alice@example.com", tt.petType, "Firulais", "café", "mediano", nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, petID, id)
			}
		})
	}
}

func TestPetsService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pets := []models.PetDB{
		{PetID: uuid.New(), Name: "Firulais", Type: models.PetTypeDog},
		{PetID: uuid.New(), Name: "Michi", Type: models.PetTypeCat},
	}

	tests := []struct {
		name      string
		pets      []models.PetDB
		readerErr error
		wantErr   error
	}{
		{name: "two pets", pets: pets},
		{name: "no pets", pets: []models.PetDB{}},
		{name: "reader error", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockPetReader(ctrl)
			svc := services.NewPetsService(services.NewMockUserGetter(ctrl), mockReader, services.NewMockPetWriter(ctrl))

			mockReader.EXPECT().
				ListByOwnerEmail(gomock.Any(), "alice@example.com").
				Return(tt.pets, tt.readerErr)

			got, err := svc.List(context.Background(), "alice@example.com")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.pets, got)
			}
		})
	}
}
