package store

import (
	"context"
	"testing"
)

func TestHistoryRepoNilPool(t *testing.T) {
	repo := NewHistoryRepo(nil)
	ctx := context.Background()

	if _, err := repo.Save(ctx, &HistoryEntry{StudentName: "Asha Rao"}); err == nil {
		t.Error("expected error saving without a pool")
	}
	if _, err := repo.List(ctx, 10); err == nil {
		t.Error("expected error listing without a pool")
	}
	if _, err := repo.FindByStudent(ctx, "Asha Rao"); err == nil {
		t.Error("expected error querying without a pool")
	}
}

func TestHistoryRepoSaveAssignsID(t *testing.T) {
	entry := &HistoryEntry{StudentName: "Asha Rao"}
	repo := NewHistoryRepo(nil)

	// Save fails without a pool but must not have mutated the entry ID
	// before the pool check.
	if _, err := repo.Save(context.Background(), entry); err == nil {
		t.Fatal("expected error without a pool")
	}
	if entry.ID != "" {
		t.Errorf("entry ID mutated on failed save: %q", entry.ID)
	}
}
