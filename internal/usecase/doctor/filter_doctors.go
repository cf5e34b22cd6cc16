package doctor

import (
	"context"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// Lister is the one directory capability this use case needs.
type Lister interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

type FilterDoctors struct {
	dir Lister
}

func NewFilterDoctors(dir Lister) *FilterDoctors {
	return &FilterDoctors{dir: dir}
}

// Execute applies one criteria predicate to the doctor directory. Absent
// criteria fields mean "don't constrain", so every filter combination is
// the same code path.
func (uc *FilterDoctors) Execute(
	ctx context.Context,
	filter scheduling.DoctorFilter,
) ([]models.Doctor, error) {

	doctors, err := uc.dir.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Doctor, 0, len(doctors))
	for i := range doctors {
		if filter.Matches(&doctors[i]) {
			matched = append(matched, doctors[i])
		}
	}

	return matched, nil
}
