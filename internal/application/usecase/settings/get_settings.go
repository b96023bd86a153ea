// Package settings contains user-preference use cases.
package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/adapter"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// GetSettingsInput represents the input for fetching user settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of fetching user settings.
type GetSettingsOutput struct {
	Settings *entity.UserSettings
}

// GetSettingsUseCase returns the user's settings, creating defaults on
// first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute fetches the user's settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	stored, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewRetrievalError(
			domainerror.ErrCodeSettingsLoadFailed,
			"failed to load user settings",
			err,
		)
	}
	if stored != nil {
		return &GetSettingsOutput{Settings: stored}, nil
	}

	created := entity.NewUserSettings(input.UserID)
	if err := uc.settingsRepo.Save(ctx, created); err != nil {
		return nil, domainerror.NewMutationError(
			domainerror.ErrCodeSettingsSaveFailed,
			"failed to store default settings",
			err,
		)
	}

	return &GetSettingsOutput{Settings: created}, nil
}
