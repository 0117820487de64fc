package service

import (
	"testing"

	"github.com/canvaspress/internal/db"
)

func TestContactRecordStoresMessageWithReference(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	record, err := svc.Record("Reader", "reader@example.com", "I really enjoyed the latest episode.")
	if err != nil {
		t.Fatalf("record message: %v", err)
	}
	if record.Reference == "" {
		t.Fatal("expected a non-empty reference")
	}

	var count int64
	if err := gdb.Model(&db.ContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored message, got %d", count)
	}

	second, err := svc.Record("Reader", "reader@example.com", "Another question about podcast gear.")
	if err != nil {
		t.Fatalf("record second message: %v", err)
	}
	if second.Reference == record.Reference {
		t.Fatal("expected distinct references per message")
	}
}

func TestContactRecordRejectsBlankFields(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)
	if _, err := svc.Record("", "reader@example.com", "hello there friend"); err == nil {
		t.Fatal("expected error for blank name")
	}
}
