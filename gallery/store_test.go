package gallery

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gallery.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndCount(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh store count = %d, want 0", n)
	}

	id, err := s.Save("cellular", "+[>+<-]", 42)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == 0 {
		t.Error("Save returned id 0, want nonzero")
	}

	if _, err := s.Save("beat", "t sx +", 7); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	n, err = s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestBestOrdersByScore(t *testing.T) {
	s := openTestStore(t)

	for _, e := range []struct {
		source string
		score  int
	}{
		{"+.", 10},
		{"++.", 100},
		{"+++.", 50},
	} {
		if _, err := s.Save("cellular", e.source, e.score); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// A different kind must not show up in the results.
	if _, err := s.Save("beat", "t", 999); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := s.Best("cellular", 2)
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Source != "++." || entries[0].Score != 100 {
		t.Errorf("entries[0] = %q/%d, want ++./100", entries[0].Source, entries[0].Score)
	}
	if entries[1].Source != "+++." || entries[1].Score != 50 {
		t.Errorf("entries[1] = %q/%d, want +++./50", entries[1].Source, entries[1].Score)
	}
	if entries[0].Kind != "cellular" {
		t.Errorf("entries[0].Kind = %q, want cellular", entries[0].Kind)
	}
	if entries[0].SavedAt.IsZero() {
		t.Error("entries[0].SavedAt is zero, want a timestamp")
	}
}

func TestBestEmpty(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Best("cellular", 10)
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Save("cellular", "+.", 5); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	n, err := s2.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}
