package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

func TestGetAvailabilityEmptyDay(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), doctor.ID, slotAt(0))
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(slots) != scheduling.SlotsPerDay {
		t.Fatalf("empty day must expose %d slots, got %d", scheduling.SlotsPerDay, len(slots))
	}
	if slots[0].Start != "09:00" || slots[len(slots)-1].Start != "16:00" {
		t.Fatalf("slot range wrong: first %s last %s", slots[0].Start, slots[len(slots)-1].Start)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start <= slots[i-1].Start {
			t.Fatalf("slots out of order at %d: %s after %s", i, slots[i].Start, slots[i-1].Start)
		}
	}
}

func TestGetAvailabilityExcludesBooked(t *testing.T) {
	repo := newFakeRepo()
	doctor := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})

	bookUC := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())
	uc := NewGetAvailability(repo)

	if _, err := bookUC.Execute(context.Background(), BookAppointmentInput{
		DoctorID: doctor.ID, PatientID: patient.ID, StartTime: slotAt(10),
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	slots, err := uc.Execute(context.Background(), doctor.ID, slotAt(0))
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}

	want := []string{"09:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(slots), len(want), slots)
	}
	for i, s := range slots {
		if s.Start != want[i] {
			t.Fatalf("slot %d = %s, want %s", i, s.Start, want[i])
		}
	}

	// Booking another slot is reflected on the next read.
	if _, err := bookUC.Execute(context.Background(), BookAppointmentInput{
		DoctorID: doctor.ID, PatientID: patient.ID, StartTime: slotAt(9),
	}); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	slots, err = uc.Execute(context.Background(), doctor.ID, slotAt(0))
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	for _, s := range slots {
		if s.Start == "09:00" {
			t.Fatalf("09:00 still listed after booking: %v", slots)
		}
	}
	if len(slots) != scheduling.SlotsPerDay-2 {
		t.Fatalf("got %d slots, want %d", len(slots), scheduling.SlotsPerDay-2)
	}
}

func TestGetAvailabilityScopedToDoctorAndDate(t *testing.T) {
	repo := newFakeRepo()
	d1 := repo.addDoctor(models.Doctor{Name: "Dr. Mendes", Email: "mendes@clinic.test"})
	d2 := repo.addDoctor(models.Doctor{Name: "Dr. Costa", Email: "costa@clinic.test"})
	patient := repo.addPatient(models.Patient{Name: "Ana Souza", Email: "ana@example.test", Phone: "111"})

	bookUC := NewBookAppointment(repo, lock.NopLocker{}, newTestDispatcher())
	uc := NewGetAvailability(repo)

	if _, err := bookUC.Execute(context.Background(), BookAppointmentInput{
		DoctorID: d1.ID, PatientID: patient.ID, StartTime: slotAt(10),
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	// Another doctor's calendar is untouched.
	slots, err := uc.Execute(context.Background(), d2.ID, slotAt(0))
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(slots) != scheduling.SlotsPerDay {
		t.Fatalf("other doctor's day must be full, got %d slots", len(slots))
	}

	// Another date for the same doctor is untouched.
	nextDay := slotAt(0).Add(24 * time.Hour)
	slots, err = uc.Execute(context.Background(), d1.ID, nextDay)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(slots) != scheduling.SlotsPerDay {
		t.Fatalf("next day must be full, got %d slots", len(slots))
	}
}

func TestGetAvailabilityUnknownDoctor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), 999, slotAt(0))
	if !scheduling.IsKind(err, scheduling.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
