package service

import "testing"

func TestSubscriberAddIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)

	first, err := svc.Add("a@b.com")
	if err != nil {
		t.Fatalf("first subscribe: %v", err)
	}

	second, err := svc.Add("a@b.com")
	if err != nil {
		t.Fatalf("second subscribe: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same subscriber id, got %d and %d", first.ID, second.ID)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list subscribers: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected a single subscriber, got %d", len(list))
	}
}

func TestSubscriberAddNormalizesEmail(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)

	first, err := svc.Add("Reader@Example.com")
	if err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	if first.Email != "reader@example.com" {
		t.Fatalf("expected lowercased email, got %q", first.Email)
	}

	second, err := svc.Add("  reader@example.com ")
	if err != nil {
		t.Fatalf("second subscribe: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same subscriber after normalization, got %d and %d", second.ID, first.ID)
	}
}

func TestSubscriberAddRejectsEmptyEmail(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	if _, err := svc.Add("   "); err == nil {
		t.Fatal("expected error for empty email")
	}
}
