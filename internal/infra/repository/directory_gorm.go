package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MedCareServices01/clinic-scheduler/internal/auth"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// DirectoryGormRepository backs the authorization gate with the three
// disjoint role directories.
type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

func (r *DirectoryGormRepository) FindAdminIDByUsername(
	ctx context.Context,
	username string,
) (uint, error) {

	var a models.Admin
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, scheduling.NotFound("admin_not_found")
		}
		return 0, scheduling.Internal("store_read_failed")
	}
	return a.ID, nil
}

func (r *DirectoryGormRepository) FindDoctorIDByEmail(
	ctx context.Context,
	email string,
) (uint, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, scheduling.NotFound("doctor_not_found")
		}
		return 0, scheduling.Internal("store_read_failed")
	}
	return d.ID, nil
}

func (r *DirectoryGormRepository) FindPatientIDByEmail(
	ctx context.Context,
	email string,
) (uint, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, scheduling.NotFound("patient_not_found")
		}
		return 0, scheduling.Internal("store_read_failed")
	}
	return p.ID, nil
}

// ListDoctors feeds the doctor filter; the directory is read-mostly and
// small enough to filter in memory.
func (r *DirectoryGormRepository) ListDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, scheduling.Internal("store_read_failed")
	}
	return doctors, nil
}

// Compile-time check
var _ auth.Directory = (*DirectoryGormRepository)(nil)
