package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cartulary/contexts/asset-custody/registry-service/adapters/memory"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/ports"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	service := Service{
		Repo:        store,
		Permissions: store,
		Outbox:      store,
		Clock:       store,
		IDGen:       store,
		Authority:   "authority",
	}
	return service, store
}

func validInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:            "report.pdf",
		PayloadSize:     2048,
		AttributeSchema: "application/pdf",
		Tags:            []string{"finance", "q3"},
	}
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	service, _ := newTestService()

	first, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if first != 1 {
		t.Fatalf("expected first id 1, got %d", first)
	}

	second, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("second registration failed: %v", err)
	}
	if second != first+1 {
		t.Fatalf("expected id %d, got %d", first+1, second)
	}

	metrics, err := service.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if metrics.TotalCount != second {
		t.Fatalf("expected counter %d, got %d", second, metrics.TotalCount)
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	service, _ := newTestService()
	input := validInput()

	assetID, err := service.Register(context.Background(), "alice", input)
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	record, err := service.GetRecord(context.Background(), "alice", assetID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	if record.Name != input.Name {
		t.Fatalf("expected name %q, got %q", input.Name, record.Name)
	}
	if record.Owner != "alice" {
		t.Fatalf("expected owner alice, got %s", record.Owner)
	}
	if record.PayloadSize != input.PayloadSize {
		t.Fatalf("expected payload size %d, got %d", input.PayloadSize, record.PayloadSize)
	}
	if record.AttributeSchema != input.AttributeSchema {
		t.Fatalf("expected schema %q, got %q", input.AttributeSchema, record.AttributeSchema)
	}
	if len(record.Tags) != 2 || record.Tags[0] != "finance" || record.Tags[1] != "q3" {
		t.Fatalf("unexpected tags: %v", record.Tags)
	}
	if record.RegisteredAt == 0 {
		t.Fatalf("expected non-zero registered_at")
	}
}

func TestRegisterValidationBoundaries(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		name  string
		input ports.RegisterInput
		want  error
	}{
		{
			name: "empty name",
			input: ports.RegisterInput{
				Name: "", PayloadSize: 10, AttributeSchema: "s", Tags: []string{"t"},
			},
			want: domainerrors.ErrInvalidAttributes,
		},
		{
			name: "name too long",
			input: ports.RegisterInput{
				Name: strings.Repeat("a", 65), PayloadSize: 10, AttributeSchema: "s", Tags: []string{"t"},
			},
			want: domainerrors.ErrInvalidAttributes,
		},
		{
			name: "schema too long",
			input: ports.RegisterInput{
				Name: "n", PayloadSize: 10, AttributeSchema: strings.Repeat("s", 129), Tags: []string{"t"},
			},
			want: domainerrors.ErrInvalidAttributes,
		},
		{
			name: "payload size zero",
			input: ports.RegisterInput{
				Name: "n", PayloadSize: 0, AttributeSchema: "s", Tags: []string{"t"},
			},
			want: domainerrors.ErrCapacityThreshold,
		},
		{
			name: "payload size at limit",
			input: ports.RegisterInput{
				Name: "n", PayloadSize: 1_000_000_000, AttributeSchema: "s", Tags: []string{"t"},
			},
			want: domainerrors.ErrCapacityThreshold,
		},
		{
			name: "empty tag sequence",
			input: ports.RegisterInput{
				Name: "n", PayloadSize: 10, AttributeSchema: "s", Tags: nil,
			},
			want: domainerrors.ErrTagVerification,
		},
		{
			name: "eleven tags",
			input: ports.RegisterInput{
				Name: "n", PayloadSize: 10, AttributeSchema: "s",
				Tags: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
			},
			want: domainerrors.ErrTagVerification,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), "alice", tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// Failed registrations must not advance the counter.
	metrics, err := service.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if metrics.TotalCount != 0 {
		t.Fatalf("expected counter 0 after failed registrations, got %d", metrics.TotalCount)
	}
}

func TestRegisterAcceptsBoundaryLengths(t *testing.T) {
	service, _ := newTestService()

	tags := make([]string, 10)
	for i := range tags {
		tags[i] = strings.Repeat("t", 32)
	}
	input := ports.RegisterInput{
		Name:            strings.Repeat("a", 64),
		PayloadSize:     999_999_999,
		AttributeSchema: strings.Repeat("s", 128),
		Tags:            tags,
	}

	if _, err := service.Register(context.Background(), "alice", input); err != nil {
		t.Fatalf("boundary registration failed: %v", err)
	}
}

func TestModifyReplacesRevisableFieldsOnly(t *testing.T) {
	service, _ := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	before, err := service.GetRecord(context.Background(), "alice", assetID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}

	err = service.Modify(context.Background(), "alice", assetID, ports.RegisterInput{
		Name:            "revised.pdf",
		PayloadSize:     4096,
		AttributeSchema: "application/octet-stream",
		Tags:            []string{"archive"},
	})
	if err != nil {
		t.Fatalf("modify failed: %v", err)
	}

	after, err := service.GetRecord(context.Background(), "alice", assetID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	if after.Name != "revised.pdf" || after.PayloadSize != 4096 {
		t.Fatalf("revisable fields not replaced: %+v", after)
	}
	if after.Owner != before.Owner {
		t.Fatalf("modify must not change owner")
	}
	if after.RegisteredAt != before.RegisteredAt {
		t.Fatalf("modify must not change registered_at")
	}
	if after.AssetID != before.AssetID {
		t.Fatalf("modify must not change asset id")
	}
}

func TestModifyPreconditionOrder(t *testing.T) {
	service, _ := newTestService()

	// Non-existent id wins over everything else.
	err := service.Modify(context.Background(), "alice", 42, ports.RegisterInput{})
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	// Ownership conflict wins over field validation.
	err = service.Modify(context.Background(), "mallory", assetID, ports.RegisterInput{})
	if !errors.Is(err, domainerrors.ErrOwnershipConflict) {
		t.Fatalf("expected ownership conflict, got %v", err)
	}

	// Owner with bad fields gets the validation error and no change.
	err = service.Modify(context.Background(), "alice", assetID, ports.RegisterInput{
		Name: "", PayloadSize: 10, AttributeSchema: "s", Tags: []string{"t"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidAttributes) {
		t.Fatalf("expected invalid attributes, got %v", err)
	}

	record, err := service.GetRecord(context.Background(), "alice", assetID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	if record.Name != "report.pdf" {
		t.Fatalf("failed modify must leave record unchanged, got name %q", record.Name)
	}
}

func TestTransferMovesOwnershipAndAccess(t *testing.T) {
	service, _ := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if err := service.Transfer(context.Background(), "alice", assetID, "bob"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	owner, err := service.GetOwner(context.Background(), assetID)
	if err != nil {
		t.Fatalf("get owner failed: %v", err)
	}
	if owner != "bob" {
		t.Fatalf("expected owner bob, got %s", owner)
	}

	// Alice keeps her registration-time explicit grant, so she can still
	// read, but she is no longer the owner.
	report, err := service.GetAuthorization(context.Background(), assetID, "alice")
	if err != nil {
		t.Fatalf("authorization analysis failed: %v", err)
	}
	if !report.Explicit || report.IsOwner {
		t.Fatalf("expected explicit grant without ownership, got %+v", report)
	}

	// Bob reads through ownership alone.
	if _, err := service.GetRecord(context.Background(), "bob", assetID); err != nil {
		t.Fatalf("new owner must read the record: %v", err)
	}

	// A third party with neither grant nor ownership is restricted.
	_, err = service.GetRecord(context.Background(), "carol", assetID)
	if !errors.Is(err, domainerrors.ErrAccessRestricted) {
		t.Fatalf("expected access restricted, got %v", err)
	}

	// The former owner cannot mutate anymore.
	err = service.Transfer(context.Background(), "alice", assetID, "alice")
	if !errors.Is(err, domainerrors.ErrOwnershipConflict) {
		t.Fatalf("expected ownership conflict, got %v", err)
	}
}

func TestDeleteRemovesRecordForever(t *testing.T) {
	service, _ := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	err = service.Delete(context.Background(), "mallory", assetID)
	if !errors.Is(err, domainerrors.ErrOwnershipConflict) {
		t.Fatalf("expected ownership conflict, got %v", err)
	}

	if err := service.Delete(context.Background(), "alice", assetID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := service.GetOwner(context.Background(), assetID); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if _, err := service.GetRecord(context.Background(), "alice", assetID); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if err := service.Delete(context.Background(), "alice", assetID); !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found on repeated delete, got %v", err)
	}

	// The id is never reassigned: the next registration mints a fresh one.
	next, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration after delete failed: %v", err)
	}
	if next != assetID+1 {
		t.Fatalf("expected fresh id %d, got %d", assetID+1, next)
	}
}

func TestGetRecordAuthorizationGate(t *testing.T) {
	service, _ := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	// Owner reads without any explicit grant check mattering.
	if _, err := service.GetRecord(context.Background(), "alice", assetID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Stranger without a grant is restricted.
	_, err = service.GetRecord(context.Background(), "bob", assetID)
	if !errors.Is(err, domainerrors.ErrAccessRestricted) {
		t.Fatalf("expected access restricted, got %v", err)
	}

	// Missing record wins over authorization.
	_, err = service.GetRecord(context.Background(), "bob", 999)
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGetAuthorizationReportsWithoutEnforcing(t *testing.T) {
	service, _ := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	report, err := service.GetAuthorization(context.Background(), assetID, "alice")
	if err != nil {
		t.Fatalf("authorization analysis failed: %v", err)
	}
	if !report.Explicit || !report.IsOwner || !report.CanAccess {
		t.Fatalf("creator must hold grant and ownership: %+v", report)
	}

	report, err = service.GetAuthorization(context.Background(), assetID, "bob")
	if err != nil {
		t.Fatalf("authorization analysis for stranger failed: %v", err)
	}
	if report.Explicit || report.IsOwner || report.CanAccess {
		t.Fatalf("stranger must have no access: %+v", report)
	}

	_, err = service.GetAuthorization(context.Background(), 999, "bob")
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGetMetricsCountsRegistrations(t *testing.T) {
	service, _ := newTestService()

	for i := 0; i < 5; i++ {
		if _, err := service.Register(context.Background(), "alice", validInput()); err != nil {
			t.Fatalf("registration %d failed: %v", i, err)
		}
	}

	metrics, err := service.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if metrics.TotalCount != 5 {
		t.Fatalf("expected total 5, got %d", metrics.TotalCount)
	}
	if metrics.Authority != "authority" {
		t.Fatalf("expected fixed authority, got %s", metrics.Authority)
	}
}

func TestRegisteredAtIsMonotonic(t *testing.T) {
	service, _ := newTestService()

	first, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	second, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	firstRecord, err := service.GetRecord(context.Background(), "alice", first)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	secondRecord, err := service.GetRecord(context.Background(), "alice", second)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	if secondRecord.RegisteredAt <= firstRecord.RegisteredAt {
		t.Fatalf("logical clock must not decrease: %d then %d",
			firstRecord.RegisteredAt, secondRecord.RegisteredAt)
	}
}

func TestMutationsAppendOutboxEvents(t *testing.T) {
	service, store := newTestService()

	assetID, err := service.Register(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if err := service.Transfer(context.Background(), "alice", assetID, "bob"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if err := service.Delete(context.Background(), "bob", assetID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending events, got %d", len(pending))
	}
	types := map[string]bool{}
	for _, message := range pending {
		types[message.EventType] = true
	}
	for _, want := range []string{"asset.registered", "asset.transferred", "asset.deleted"} {
		if !types[want] {
			t.Fatalf("missing event type %s in %v", want, types)
		}
	}
}
