package appointment

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory scheduling.Repository. Like the real store it
// enforces the (doctor, slot) uniqueness constraint at write time under a
// single lock, so racing bookings are decided exactly once.
type fakeRepo struct {
	mu sync.Mutex

	nextID       uint
	appointments map[uint]*models.Appointment
	doctors      map[uint]*models.Doctor
	patients     map[uint]*models.Patient

	failWrites bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:       1,
		appointments: make(map[uint]*models.Appointment),
		doctors:      make(map[uint]*models.Doctor),
		patients:     make(map[uint]*models.Patient),
	}
}

func (f *fakeRepo) addDoctor(d models.Doctor) *models.Doctor {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d.ID == 0 {
		d.ID = f.nextID
		f.nextID++
	}
	f.doctors[d.ID] = &d
	return &d
}

func (f *fakeRepo) addPatient(p models.Patient) *models.Patient {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	}
	f.patients[p.ID] = &p
	return &p
}

func (f *fakeRepo) slotTaken(doctorID uint, start time.Time, excludeID uint) bool {
	for _, ap := range f.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.DoctorID == doctorID && ap.AppointmentTime.Equal(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return scheduling.Internal("store_write_failed")
	}
	if f.slotTaken(ap.DoctorID, ap.AppointmentTime, 0) {
		return scheduling.SlotUnavailable("slot_unavailable")
	}

	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if !ok {
		return nil, scheduling.NotFound("appointment_not_found")
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return scheduling.Internal("store_write_failed")
	}
	if f.slotTaken(ap.DoctorID, ap.AppointmentTime, ap.ID) {
		return scheduling.SlotUnavailable("slot_unavailable")
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) CountConflicts(
	_ context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
	excludeAppointmentID uint,
) (int64, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, ap := range f.appointments {
		if ap.ID == excludeAppointmentID || ap.DoctorID != doctorID {
			continue
		}
		apEnd := ap.AppointmentTime.Add(scheduling.SlotDuration)
		if ap.AppointmentTime.Before(end) && apEnd.After(start) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) listDay(doctorID uint, dayStart, dayEnd time.Time) []models.Appointment {
	var aps []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID != doctorID {
			continue
		}
		if ap.AppointmentTime.Before(dayStart) || !ap.AppointmentTime.Before(dayEnd) {
			continue
		}
		aps = append(aps, *ap)
	}
	sortByTime(aps)
	return aps
}

func (f *fakeRepo) ListForDoctorDay(
	_ context.Context,
	doctorID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listDay(doctorID, dayStart, dayEnd), nil
}

func (f *fakeRepo) ListForDoctorDayByPatientName(
	_ context.Context,
	doctorID uint,
	patientName string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var aps []models.Appointment
	for _, ap := range f.listDay(doctorID, dayStart, dayEnd) {
		p, ok := f.patients[ap.PatientID]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(patientName)) {
			aps = append(aps, ap)
		}
	}
	return aps, nil
}

func (f *fakeRepo) ListForPatient(
	_ context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var aps []models.Appointment
	for _, ap := range f.appointments {
		if ap.PatientID == patientID {
			aps = append(aps, *ap)
		}
	}
	sortByTime(aps)
	return aps, nil
}

func (f *fakeRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.doctors[id]
	if !ok {
		return nil, scheduling.NotFound("doctor_not_found")
	}
	copied := *d
	return &copied, nil
}

func (f *fakeRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.patients[id]
	if !ok {
		return nil, scheduling.NotFound("patient_not_found")
	}
	copied := *p
	return &copied, nil
}

func sortByTime(aps []models.Appointment) {
	for i := 1; i < len(aps); i++ {
		for j := i; j > 0 && aps[j].AppointmentTime.Before(aps[j-1].AppointmentTime); j-- {
			aps[j], aps[j-1] = aps[j-1], aps[j]
		}
	}
}

// Compile-time check
var _ scheduling.Repository = (*fakeRepo)(nil)

type discardSink struct{}

func (discardSink) Log(string, *uint, string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(discardSink{})
}
