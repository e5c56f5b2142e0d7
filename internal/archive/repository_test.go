package archive

import (
	"context"
	"testing"
)

func TestInMemorySaveAndList(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for _, total := range []float64{39, 105, 22} {
		err := repo.Save(ctx, &Record{
			ConversationID: "conv",
			Summary:        "order",
			Total:          total,
			Method:         "delivery",
			Payment:        "cash",
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	// newest first
	if recent[0].Total != 22 || recent[1].Total != 105 {
		t.Fatalf("wrong order: %+v", recent)
	}
	if recent[0].ID == "" || recent[0].CreatedAt.IsZero() {
		t.Fatal("save must fill id and created_at")
	}
}
