package leitner

import (
	"testing"
	"time"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

func date(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func strptr(s string) *string { return &s }

func TestApply_CorrectAdvancesOneBox(t *testing.T) {
	today := date("2025-03-10")
	for box := models.MinBox; box <= models.MaxBox; box++ {
		entry := models.ProgressEntry{Box: box}
		got := Apply(entry, true, today)

		want := box + 1
		if want > models.MaxBox {
			want = models.MaxBox
		}
		if got.Box != want {
			t.Errorf("correct answer from box %d: got box %d, want %d", box, got.Box, want)
		}
		if got.LastStudiedOn == nil || *got.LastStudiedOn != "2025-03-10" {
			t.Errorf("correct answer from box %d: last studied not stamped", box)
		}
	}
}

func TestApply_IncorrectResetsToBoxOne(t *testing.T) {
	today := date("2025-03-10")
	for box := models.MinBox; box <= models.MaxBox; box++ {
		entry := models.ProgressEntry{Box: box, LastStudiedOn: strptr("2025-03-01")}
		got := Apply(entry, false, today)

		if got.Box != models.MinBox {
			t.Errorf("incorrect answer from box %d: got box %d, want 1", box, got.Box)
		}
		if got.LastStudiedOn == nil || *got.LastStudiedOn != "2025-03-10" {
			t.Errorf("incorrect answer from box %d: last studied not stamped", box)
		}
	}
}

func TestApply_TopBoxStaysOnCorrect(t *testing.T) {
	got := Apply(models.ProgressEntry{Box: 5}, true, date("2025-03-10"))
	if got.Box != 5 {
		t.Fatalf("box 5 correct: got box %d, want 5", got.Box)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	entry := models.ProgressEntry{Box: 2}
	Apply(entry, true, date("2025-03-10"))
	if entry.Box != 2 || entry.LastStudiedOn != nil {
		t.Fatal("Apply mutated its input")
	}
}

func TestDefaultPolicy_Intervals(t *testing.T) {
	p := DefaultPolicy()
	want := map[int]int{1: 1, 2: 2, 3: 4, 4: 7, 5: 14}
	for box, days := range want {
		got, err := p.Interval(box)
		if err != nil {
			t.Fatalf("interval for box %d: %v", box, err)
		}
		if got != days {
			t.Errorf("interval for box %d: got %d, want %d", box, got, days)
		}
	}
	if _, err := p.Interval(0); err == nil {
		t.Error("interval for box 0 should fail")
	}
	if _, err := p.Interval(6); err == nil {
		t.Error("interval for box 6 should fail")
	}
}

func TestIsDue_NeverStudiedIsAlwaysDue(t *testing.T) {
	p := DefaultPolicy()
	entry := &models.ProgressEntry{Box: 1}
	due, err := p.IsDue(entry, date("2025-03-10"))
	if err != nil {
		t.Fatal(err)
	}
	if !due {
		t.Error("never-studied entry should be due")
	}
}

func TestIsDue_IntervalBoundaries(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		box         int
		lastStudied string
		today       string
		want        bool
	}{
		// Box 2 has a 2-day interval: not due after 1 day, due after 2
		{2, "2025-03-10", "2025-03-11", false},
		{2, "2025-03-10", "2025-03-12", true},
		{2, "2025-03-10", "2025-03-13", true},
		// Box 1 comes back the next day but never the same day
		{1, "2025-03-10", "2025-03-10", false},
		{1, "2025-03-10", "2025-03-11", true},
		// Box 5 rests two weeks
		{5, "2025-03-01", "2025-03-14", false},
		{5, "2025-03-01", "2025-03-15", true},
	}
	for _, tc := range tests {
		entry := &models.ProgressEntry{Box: tc.box, LastStudiedOn: strptr(tc.lastStudied)}
		got, err := p.IsDue(entry, date(tc.today))
		if err != nil {
			t.Fatalf("box %d studied %s today %s: %v", tc.box, tc.lastStudied, tc.today, err)
		}
		if got != tc.want {
			t.Errorf("box %d studied %s today %s: got due=%v, want %v",
				tc.box, tc.lastStudied, tc.today, got, tc.want)
		}
	}
}

func TestIsDue_OutOfRangeBoxIsAnError(t *testing.T) {
	p := DefaultPolicy()
	if _, err := p.IsDue(&models.ProgressEntry{Box: 7}, date("2025-03-10")); err == nil {
		t.Fatal("box 7 should be rejected as corruption")
	}
}

func TestNextDue_DerivedFromBoxAndLastStudied(t *testing.T) {
	p := DefaultPolicy()

	entry := &models.ProgressEntry{Box: 3, LastStudiedOn: strptr("2025-03-10")}
	got, err := p.NextDue(entry, date("2025-03-20"))
	if err != nil {
		t.Fatal(err)
	}
	if models.FormatDate(got) != "2025-03-14" {
		t.Errorf("box 3 studied 2025-03-10: next due %s, want 2025-03-14", models.FormatDate(got))
	}

	fresh := &models.ProgressEntry{Box: 1}
	got, err = p.NextDue(fresh, date("2025-03-20"))
	if err != nil {
		t.Fatal(err)
	}
	if models.FormatDate(got) != "2025-03-20" {
		t.Errorf("never-studied entry: next due %s, want today", models.FormatDate(got))
	}
}

func TestSortByPriority(t *testing.T) {
	entries := []models.ProgressEntry{
		{WordID: "d", Box: 3, LastStudiedOn: strptr("2025-03-01")},
		{WordID: "c", Box: 1, LastStudiedOn: strptr("2025-03-05")},
		{WordID: "b", Box: 1, LastStudiedOn: strptr("2025-03-02")},
		{WordID: "a", Box: 1},
		{WordID: "e", Box: 2},
	}
	SortByPriority(entries)

	want := []string{"a", "b", "c", "e", "d"}
	for i, id := range want {
		if entries[i].WordID != id {
			t.Fatalf("position %d: got %q, want %q (full order: %v)", i, entries[i].WordID, id, ids(entries))
		}
	}
}

func TestSortByPriority_StableTiebreakOnWordID(t *testing.T) {
	entries := []models.ProgressEntry{
		{WordID: "z", Box: 2, LastStudiedOn: strptr("2025-03-01")},
		{WordID: "a", Box: 2, LastStudiedOn: strptr("2025-03-01")},
	}
	SortByPriority(entries)
	if entries[0].WordID != "a" {
		t.Fatal("equal entries should order by word ID")
	}
}

func ids(entries []models.ProgressEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.WordID
	}
	return out
}
