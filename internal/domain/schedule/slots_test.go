package schedule

import (
	"testing"
	"time"
)

// terça-feira
var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func weekAvailability() *Availability {
	return &Availability{
		WorkDays: []time.Weekday{
			time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday,
		},
		WorkHours: HoursRange{Start: "09:00", End: "18:00"},
	}
}

func TestAvailableSlots_FullDay(t *testing.T) {
	slots := AvailableSlots(weekAvailability(), true, 30, nil, testDate)

	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("expected last slot 17:30, got %s", slots[len(slots)-1])
	}
}

func TestAvailableSlots_NilAvailabilityOrInactive(t *testing.T) {
	if got := AvailableSlots(nil, true, 30, nil, testDate); len(got) != 0 {
		t.Fatalf("nil availability should yield no slots, got %v", got)
	}
	if got := AvailableSlots(weekAvailability(), false, 30, nil, testDate); len(got) != 0 {
		t.Fatalf("inactive barber should yield no slots, got %v", got)
	}
}

func TestAvailableSlots_EmptyWorkDays(t *testing.T) {
	av := weekAvailability()
	av.WorkDays = nil

	for d := 0; d < 7; d++ {
		date := testDate.AddDate(0, 0, d)
		if got := AvailableSlots(av, true, 30, nil, date); len(got) != 0 {
			t.Fatalf("empty workdays must yield no slots on %s, got %v", date.Weekday(), got)
		}
	}
}

func TestAvailableSlots_DayOff(t *testing.T) {
	monday := testDate.AddDate(0, 0, -1)
	if got := AvailableSlots(weekAvailability(), true, 30, nil, monday); len(got) != 0 {
		t.Fatalf("monday is off, got %v", got)
	}
}

func TestAvailableSlots_DurationExceedsWindow(t *testing.T) {
	av := weekAvailability()
	av.WorkHours = HoursRange{Start: "09:00", End: "10:00"}

	if got := AvailableSlots(av, true, 90, nil, testDate); len(got) != 0 {
		t.Fatalf("oversized service should yield no slots, got %v", got)
	}
}

func TestAvailableSlots_ExistingAppointment(t *testing.T) {
	busy := []Interval{{Start: 10 * 60, End: 10*60 + 30}} // 10:00–10:30

	slots := AvailableSlots(weekAvailability(), true, 30, busy, testDate)

	if contains(slots, "10:00") {
		t.Fatal("10:00 should be blocked by the appointment")
	}
	if contains(slots, "09:45") {
		t.Fatal("09:45 overlaps the appointment and should be excluded")
	}
	if !contains(slots, "09:30") {
		t.Fatal("09:30 ends exactly at the appointment start and should be allowed")
	}
	if !contains(slots, "10:30") {
		t.Fatal("10:30 starts exactly at the appointment end and should be allowed")
	}
}

func TestAvailableSlots_BreakAdjacency(t *testing.T) {
	av := weekAvailability()
	av.Breaks = []HoursRange{{Start: "12:00", End: "13:00"}}

	slots := AvailableSlots(av, true, 30, nil, testDate)

	if contains(slots, "11:45") {
		t.Fatal("11:45 overlaps the break and should be excluded")
	}
	if !contains(slots, "11:30") {
		t.Fatal("11:30 ends exactly at break start and should be allowed")
	}
	if contains(slots, "12:30") {
		t.Fatal("12:30 is inside the break")
	}
	if !contains(slots, "13:00") {
		t.Fatal("13:00 starts exactly at break end and should be allowed")
	}
}

func TestAvailableSlots_MalformedBreakSkipped(t *testing.T) {
	av := weekAvailability()
	av.Breaks = []HoursRange{
		{Start: "", End: "13:00"},
		{Start: "12:00", End: ""},
		{Start: "xx", End: "yy"},
	}

	slots := AvailableSlots(av, true, 30, nil, testDate)
	if len(slots) != 19 {
		t.Fatalf("malformed breaks must be ignored, got %d slots", len(slots))
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	av := weekAvailability()
	av.Breaks = []HoursRange{{Start: "12:00", End: "13:00"}}
	busy := []Interval{{Start: 15 * 60, End: 15*60 + 50}}

	first := AvailableSlots(av, true, 30, busy, testDate)
	second := AvailableSlots(av, true, 30, busy, testDate)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestAvailableSlots_SortedAscending(t *testing.T) {
	slots := AvailableSlots(weekAvailability(), true, 45, nil, testDate)

	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots not sorted: %s >= %s", slots[i-1], slots[i])
		}
	}
}

func TestIntervalOverlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: 540, End: 570}

	if a.Overlaps(Interval{Start: 570, End: 600}) {
		t.Fatal("touching intervals must not overlap")
	}
	if a.Overlaps(Interval{Start: 510, End: 540}) {
		t.Fatal("touching intervals must not overlap")
	}
	if !a.Overlaps(Interval{Start: 569, End: 600}) {
		t.Fatal("one-minute overlap must be detected")
	}
}

func contains(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
