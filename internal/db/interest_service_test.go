package db

import "testing"

func TestListInterestedPersonsRecent(t *testing.T) {
	store := newTestStore(t)

	for _, p := range []InterestedPersonInput{
		{Name: "Old", LastVisit: "2025-01-10"},
		{Name: "Newest", LastVisit: "2025-04-01"},
		{Name: "Middle", LastVisit: "2025-03-15"},
	} {
		if _, err := store.CreateInterestedPerson(p); err != nil {
			t.Fatalf("create %s: %v", p.Name, err)
		}
	}

	recent, err := store.ListInterestedPersons(RecentInterestsLimit)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 || recent[0].Name != "Newest" || recent[1].Name != "Middle" {
		t.Fatalf("unexpected recent list %+v", recent)
	}

	all, err := store.ListInterestedPersons(0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 return visits, got %d", len(all))
	}
}

func TestConvertToBibleStudy(t *testing.T) {
	store := newTestStore(t)

	person, err := store.CreateInterestedPerson(InterestedPersonInput{
		Name:        "Dana",
		Address:     "12 Elm St",
		Topic:       "Hope for the future",
		Appointment: "Saturday 10:00",
		LastVisit:   "2025-04-05",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	student, err := store.ConvertToBibleStudy(person.ID)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if student.StudentName != "Dana" || student.StudyMaterial != "Hope for the future" || student.StudyDay != "Saturday 10:00" || student.Address != "12 Elm St" {
		t.Fatalf("unexpected student %+v", student)
	}

	if _, err := store.GetInterestedPerson(person.ID); err == nil {
		t.Fatal("expected return visit to be removed")
	}
	if _, err := store.GetBibleStudent(student.ID); err != nil {
		t.Fatalf("expected student to exist: %v", err)
	}
}

func TestInterestedPersonValidation(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateInterestedPerson(InterestedPersonInput{Name: "Eve", LastVisit: "yesterday"}); err == nil {
		t.Fatal("expected error for malformed last visit")
	}
	if _, err := store.CreateInterestedPerson(InterestedPersonInput{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}
