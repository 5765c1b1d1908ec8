package db

import (
	"testing"

	"github.com/balkashynov/servicenote/internal/models"
)

func TestDeleteBibleStudentCascades(t *testing.T) {
	store := newTestStore(t)

	ana, err := store.CreateBibleStudent(BibleStudentInput{StudentName: "Ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ben, err := store.CreateBibleStudent(BibleStudentInput{StudentName: "Ben"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	refs := []StudentRef{{ID: ana.ID, Name: ana.StudentName}, {ID: ben.ID, Name: ben.StudentName}}
	if _, err := store.LogDay(DailyReportInput{Date: "2025-04-02"}, refs); err != nil {
		t.Fatalf("log day: %v", err)
	}
	if _, err := store.LogDay(DailyReportInput{Date: "2025-05-02"}, refs[:1]); err != nil {
		t.Fatalf("log day: %v", err)
	}

	if err := store.DeleteBibleStudent(ana.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var remaining []models.StudentMonth
	if err := store.database.Find(&remaining).Error; err != nil {
		t.Fatalf("read associations: %v", err)
	}
	if len(remaining) != 1 || remaining[0].StudentID != ben.ID {
		t.Fatalf("expected only Ben's row to remain, got %+v", remaining)
	}

	count, err := store.CountDistinctStudents("2025-05")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected May to have no students left, got %d", count)
	}
}

func TestRenameKeepsRecordedNames(t *testing.T) {
	store := newTestStore(t)

	student, err := store.CreateBibleStudent(BibleStudentInput{StudentName: "Ana", StudyDay: "Tuesday"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.LogDay(DailyReportInput{Date: "2025-04-02"}, []StudentRef{{ID: student.ID, Name: student.StudentName}}); err != nil {
		t.Fatalf("log day: %v", err)
	}

	renamed, err := store.UpdateBibleStudent(student.ID, BibleStudentInput{StudentName: "Ana Silva", StudyDay: "Thursday"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if renamed.StudentName != "Ana Silva" || renamed.StudyDay != "Thursday" {
		t.Fatalf("unexpected update %+v", renamed)
	}

	rows, err := store.ListStudentMonths("2025-04")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Ana" {
		t.Fatalf("expected recorded name to stay Ana, got %+v", rows)
	}
}

func TestListStudentRefs(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"Carla", "Ana"} {
		if _, err := store.CreateBibleStudent(BibleStudentInput{StudentName: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	refs, err := store.ListStudentRefs()
	if err != nil {
		t.Fatalf("list refs: %v", err)
	}
	if len(refs) != 2 || refs[0].Name != "Ana" || refs[1].Name != "Carla" || refs[0].ID == 0 {
		t.Fatalf("unexpected refs %+v", refs)
	}
}

func TestCreateBibleStudentValidates(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateBibleStudent(BibleStudentInput{}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := store.CreateBibleStudent(BibleStudentInput{StudentName: "Ana", Latitude: 120}); err == nil {
		t.Fatal("expected error for out of range latitude")
	}
}
