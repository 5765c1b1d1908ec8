package parser

import "testing"

func TestParseActivity(t *testing.T) {
	got := ParseActivity("2.5h 3p 1RV #3,6 #9 Cart witnessing  at the station")

	if got.Hours == nil || *got.Hours != 2.5 {
		t.Fatalf("expected 2.5 hours, got %v", got.Hours)
	}
	if got.Placements == nil || *got.Placements != 3 {
		t.Fatalf("expected 3 placements, got %v", got.Placements)
	}
	if got.ReturnVisits == nil || *got.ReturnVisits != 1 {
		t.Fatalf("expected 1 return visit, got %v", got.ReturnVisits)
	}
	if got.Studies != nil {
		t.Fatalf("expected studies to be unset, got %d", *got.Studies)
	}
	if len(got.Students) != 3 || got.Students[0] != 3 || got.Students[2] != 9 {
		t.Fatalf("unexpected students %v", got.Students)
	}
	if got.Comment != "Cart witnessing at the station" {
		t.Fatalf("unexpected comment %q", got.Comment)
	}
	if len(got.Errors) != 0 {
		t.Fatalf("unexpected errors %v", got.Errors)
	}
}

func TestParseActivityCommentOnly(t *testing.T) {
	got := ParseActivity("Helped at the hall")
	if got.Hours != nil || got.Placements != nil || len(got.Students) != 0 {
		t.Fatalf("expected no figures, got %+v", got)
	}
	if got.Comment != "Helped at the hall" {
		t.Fatalf("unexpected comment %q", got.Comment)
	}
}

func TestParseActivityErrors(t *testing.T) {
	got := ParseActivity("30h 2bs")
	if got.Hours != nil {
		t.Fatalf("expected hours above 24 to be rejected, got %v", *got.Hours)
	}
	if len(got.Errors) != 1 {
		t.Fatalf("expected one error, got %v", got.Errors)
	}
	if got.Studies == nil || *got.Studies != 2 {
		t.Fatalf("expected 2 studies, got %v", got.Studies)
	}
}
