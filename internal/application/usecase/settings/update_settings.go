package settings

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/adapter"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating user settings.
type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Currency string
}

// UpdateSettingsOutput represents the output of updating user settings.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
}

// UpdateSettingsUseCase handles settings update logic.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if len(currency) != 3 {
		return nil, domainerror.NewSettingsValidationError("currency must be a 3-letter ISO code")
	}

	stored, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewRetrievalError(
			domainerror.ErrCodeSettingsLoadFailed,
			"failed to load user settings",
			err,
		)
	}
	if stored == nil {
		stored = entity.NewUserSettings(input.UserID)
	}

	stored.Currency = currency
	stored.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, stored); err != nil {
		return nil, domainerror.NewMutationError(
			domainerror.ErrCodeSettingsSaveFailed,
			"failed to store user settings",
			err,
		)
	}

	return &UpdateSettingsOutput{Settings: stored}, nil
}
