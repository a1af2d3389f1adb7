package users

import (
	"testing"

	"ecocollect/models"
)

func board() []models.CollectionTask {
	return []models.CollectionTask{
		{ID: 1, Location: "Anna Nagar", Date: "2025-08-01"},
		{ID: 2, Location: "T. Nagar", Date: "2025-08-02"},
		{ID: 3, Location: "Velachery", Date: "2025-08-03"},
		{ID: 4, Location: "Tambaram", Date: "2025-08-04"},
		{ID: 5, Location: "Kodambakkam", Date: "2025-08-05"},
		{ID: 6, Location: "Anna Salai", Date: "2025-08-06"},
	}
}

func TestFilterTasksByLocation(t *testing.T) {
	got := filterTasks(board(), "anna")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for 'anna', got %d", len(got))
	}
	// case-insensitive substring, newest first
	if got[0].ID != 6 || got[1].ID != 1 {
		t.Fatalf("unexpected order: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestFilterTasksSortsNewestFirst(t *testing.T) {
	got := filterTasks(board(), "")
	for i := 1; i < len(got); i++ {
		if got[i-1].Date < got[i].Date {
			t.Fatalf("tasks not sorted descending by date at %d", i)
		}
	}
}

func TestFilterTasksIsSideEffectFree(t *testing.T) {
	in := board()
	_ = filterTasks(in, "")
	if in[0].ID != 1 || in[len(in)-1].ID != 6 {
		t.Fatal("filterTasks must not reorder its input")
	}
}

func TestPaginateTasksPageSize(t *testing.T) {
	all := filterTasks(board(), "")
	first := paginateTasks(all, 1)
	if len(first) != tasksPerPage {
		t.Fatalf("expected page size %d, got %d", tasksPerPage, len(first))
	}
	second := paginateTasks(all, 2)
	if len(second) != 1 {
		t.Fatalf("expected 1 task on page 2, got %d", len(second))
	}
	if first[0].ID == second[0].ID {
		t.Fatal("pages must not overlap")
	}
}

func TestPaginateTasksOutOfRange(t *testing.T) {
	all := filterTasks(board(), "")
	if got := paginateTasks(all, 99); len(got) != 0 {
		t.Fatalf("expected empty page, got %d", len(got))
	}
	if got := paginateTasks(all, 0); len(got) != tasksPerPage {
		t.Fatalf("page 0 should normalize to page 1, got %d", len(got))
	}
}
