package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

func slotAt(hour int) time.Time {
	return time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC)
}

func TestBookAppointment(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Specialty: "cardiology", Email: "mendes@clinic.test"})
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		StartTime: slotAt(10),
	})
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if scheduling.Status(ap.Status) != scheduling.StatusScheduled {
		t.Fatalf("new appointment status = %d, want scheduled", ap.Status)
	}
	if ap.PatientID != patient.ID || ap.DoctorID != doctor.ID {
		t.Fatalf("appointment references wrong records: %+v", ap)
	}
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	repo := newFakeRepo()
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID:  999,
		PatientID: patient.ID,
		StartTime: slotAt(10),
	})
	if !scheduling.IsKind(err, scheduling.KindNotFound) {
		t.Fatalf("expected NotFound for unknown doctor, got %v", err)
	}
}

func TestBookAppointmentOutsideOperatingHours(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	for _, start := range []time.Time{
		slotAt(8),
		slotAt(17),
		slotAt(10).Add(30 * time.Minute),
	} {
		_, err := uc.Execute(context.Background(), BookAppointmentInput{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			StartTime: start,
		})
		if !scheduling.IsKind(err, scheduling.KindSlotUnavailable) {
			t.Fatalf("start %v: expected SlotUnavailable, got %v", start, err)
		}
	}
}

func TestBookAppointmentConflict(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})
	p1 := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})
	p2 := repo.addPatient(models.Patient{Name: "Bruno Lima", Email: "bruno@example.test", Phone: "222"})

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	if _, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID: doctor.ID, PatientID: p1.ID, StartTime: slotAt(9),
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID: doctor.ID, PatientID: p2.ID, StartTime: slotAt(9),
	})
	if !scheduling.IsKind(err, scheduling.KindSlotUnavailable) {
		t.Fatalf("expected SlotUnavailable for double booking, got %v", err)
	}

	// The same slot with a different doctor is independent.
	other := repo.addDoctor(models.Doctor{Name: "Dr. Costa", Email: "costa@clinic.test"})
	if _, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID: other.ID, PatientID: p2.ID, StartTime: slotAt(9),
	}); err != nil {
		t.Fatalf("booking with another doctor failed: %v", err)
	}
}

// Two concurrent bookings of the identical doctor/slot must not both
// succeed, even though both pre-checks can observe "no conflict": the
// write-time constraint decides the race.
func TestBookAppointmentRace(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		losers    int
	)

	for i := 0; i < attempts; i++ {
		patient := repo.addPatient(models.Patient{
			Name:  "Patient",
			Email: string(rune('a'+i)) + "@example.test",
			Phone: string(rune('0' + i)),
		})

		wg.Add(1)
		go func(patientID uint) {
			defer wg.Done()

			_, err := uc.Execute(context.Background(), BookAppointmentInput{
				DoctorID: doctor.ID, PatientID: patientID, StartTime: slotAt(11),
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case scheduling.IsKind(err, scheduling.KindSlotUnavailable):
				losers++
			default:
				t.Errorf("unexpected error kind: %v", err)
			}
		}(patient.ID)
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("exactly one concurrent booking must win, got %d", successes)
	}
	if losers != attempts-1 {
		t.Fatalf("expected %d losers with SlotUnavailable, got %d", attempts-1, losers)
	}
}

func TestBookAppointmentStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})
	repo.failWrites = true

	uc := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		DoctorID: doctor.ID, PatientID: patient.ID, StartTime: slotAt(9),
	})
	if !scheduling.IsKind(err, scheduling.KindInternal) {
		t.Fatalf("expected Internal on store failure, got %v", err)
	}
}
