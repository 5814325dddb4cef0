package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecord(owner string) entities.AssetRecord {
	return entities.AssetRecord{
		Name:            "ledger.csv",
		Owner:           valueobjects.Principal(owner),
		PayloadSize:     128,
		RegisteredAt:    7,
		AttributeSchema: "text/csv",
		Tags:            []string{"accounting", "2026"},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	assetID, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if assetID != 1 {
		t.Fatalf("expected first id 1, got %d", assetID)
	}

	record, err := store.GetAsset(context.Background(), assetID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Name != "ledger.csv" || record.Owner != "alice" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.RegisteredAt != 7 {
		t.Fatalf("registered_at not persisted, got %d", record.RegisteredAt)
	}
	if len(record.Tags) != 2 || record.Tags[0] != "accounting" {
		t.Fatalf("tags not round-tripped: %v", record.Tags)
	}

	granted, err := store.ExplicitGrant(context.Background(), assetID, "alice")
	if err != nil {
		t.Fatalf("grant lookup failed: %v", err)
	}
	if !granted {
		t.Fatalf("creator grant row missing")
	}
}

func TestCounterSurvivesDelete(t *testing.T) {
	store := openTestStore(t)

	assetID, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.DeleteAsset(context.Background(), assetID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	counter, err := store.CounterValue(context.Background())
	if err != nil {
		t.Fatalf("counter read failed: %v", err)
	}
	if counter != 1 {
		t.Fatalf("expected counter 1 after delete, got %d", counter)
	}

	next, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if next != 2 {
		t.Fatalf("expected id 2, got %d", next)
	}
}

func TestDeleteLeavesPermissionRows(t *testing.T) {
	store := openTestStore(t)

	assetID, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.DeleteAsset(context.Background(), assetID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.GetAsset(context.Background(), assetID); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	granted, err := store.ExplicitGrant(context.Background(), assetID, "alice")
	if err != nil {
		t.Fatalf("grant lookup failed: %v", err)
	}
	if !granted {
		t.Fatalf("grant row must not cascade on delete")
	}
}

func TestUpdateOwnerAndMissingRows(t *testing.T) {
	store := openTestStore(t)

	assetID, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := store.UpdateOwner(context.Background(), assetID, "bob"); err != nil {
		t.Fatalf("update owner failed: %v", err)
	}
	record, err := store.GetAsset(context.Background(), assetID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Owner != "bob" {
		t.Fatalf("owner not updated, got %s", record.Owner)
	}

	if err := store.UpdateOwner(context.Background(), 42, "bob"); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := store.DeleteAsset(context.Background(), 42); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if _, err := store.GetAsset(context.Background(), 42); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpdateAssetReplacesRevisableFields(t *testing.T) {
	store := openTestStore(t)

	assetID, err := store.CreateAsset(context.Background(), testRecord("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := testRecord("alice")
	updated.AssetID = assetID
	updated.Name = "ledger-v2.csv"
	updated.PayloadSize = 256
	updated.Tags = []string{"archived"}
	if err := store.UpdateAsset(context.Background(), updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	record, err := store.GetAsset(context.Background(), assetID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Name != "ledger-v2.csv" || record.PayloadSize != 256 {
		t.Fatalf("fields not replaced: %+v", record)
	}
	if len(record.Tags) != 1 || record.Tags[0] != "archived" {
		t.Fatalf("tags not replaced: %v", record.Tags)
	}
	if record.RegisteredAt != 7 {
		t.Fatalf("registered_at must survive updates, got %d", record.RegisteredAt)
	}
}

func TestMonotonicClockNeverDecreases(t *testing.T) {
	clock := &MonotonicClock{}

	previous := clock.Now()
	for i := 0; i < 100; i++ {
		current := clock.Now()
		if current < previous {
			t.Fatalf("clock went from %d to %d", previous, current)
		}
		previous = current
	}
}
