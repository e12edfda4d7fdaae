package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lionlease/internal/catalog"
	"lionlease/internal/models"
)

type fakeGenerativeClient struct {
	lastPrompt string
	answer     string
	err        error
}

func (f *fakeGenerativeClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.answer, f.err
}

func assistantFixture(t *testing.T, client GenerativeClient) *AssistantService {
	t.Helper()
	price := 2450.0
	beds := 2.0
	baths := 1.0
	cat := catalog.New([]models.Listing{
		{
			ID:          "l1",
			Price:       &price,
			Bedrooms:    &beds,
			Bathrooms:   &baths,
			Address:     "500 W 110th St",
			AreaName:    "Morningside Heights",
			Amenities:   []string{"Dishwasher", "Elevator"},
			Description: "Sunny two bedroom near the park.",
			NoFee:       true,
		},
	}, 1)
	return &AssistantService{Catalog: cat, Client: client}
}

func TestAssistantAskGroundsPromptOnListing(t *testing.T) {
	fake := &fakeGenerativeClient{answer: "  Yes, it has a dishwasher.  "}
	svc := assistantFixture(t, fake)

	got, err := svc.Ask(context.Background(), "Does it have a dishwasher?", "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Answer != "Yes, it has a dishwasher." {
		t.Errorf("answer not trimmed: %q", got.Answer)
	}
	if got.ListingID != "l1" {
		t.Errorf("listing id mismatch: %q", got.ListingID)
	}

	for _, want := range []string{
		"500 W 110th St",
		"Morningside Heights",
		"$2450",
		"Dishwasher, Elevator",
		"Sunny two bedroom near the park.",
		"No broker fee",
		"Does it have a dishwasher?",
	} {
		if !strings.Contains(fake.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, fake.lastPrompt)
		}
	}
}

func TestAssistantAskUnknownListing(t *testing.T) {
	svc := assistantFixture(t, &fakeGenerativeClient{answer: "irrelevant"})

	_, err := svc.Ask(context.Background(), "How big is it?", "nope")
	if !errors.Is(err, models.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestAssistantAskClientFailure(t *testing.T) {
	svc := assistantFixture(t, &fakeGenerativeClient{err: errors.New("quota exceeded")})

	_, err := svc.Ask(context.Background(), "How big is it?", "l1")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}
