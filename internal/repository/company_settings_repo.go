package repository

import (
	"errors"

	"field-service-api/internal/models"

	"gorm.io/gorm"
)

type CompanySettingsRepository interface {
	Get() (*models.CompanySettings, error)
	Update(settings *models.CompanySettings) error
}

type GormCompanySettingsRepository struct {
	db *gorm.DB
}

func NewGormCompanySettingsRepository(db *gorm.DB) (CompanySettingsRepository, error) {
	if err := db.AutoMigrate(&models.CompanySettings{}); err != nil {
		return nil, err
	}

	return &GormCompanySettingsRepository{db: db}, nil
}

// Get returns the single settings row, creating it with defaults on first use.
func (r *GormCompanySettingsRepository) Get() (*models.CompanySettings, error) {
	var settings models.CompanySettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.CompanySettings{
			DefaultDrivingTimeMinutes: 0,
			MinSlotMinutes:            15,
		}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *GormCompanySettingsRepository) Update(settings *models.CompanySettings) error {
	if !settings.IsValid() {
		return errors.New("invalid company settings")
	}
	return r.db.Save(settings).Error
}
