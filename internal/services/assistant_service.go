package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lionlease/internal/catalog"
	"lionlease/internal/models"
)

// GenerativeClient produces one answer for one prompt.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService answers questions about a single listing. The prompt
// is grounded on the listing record only, so the model is told to refuse
// anything the record does not cover.
type AssistantService struct {
	Catalog *catalog.Catalog
	Client  GenerativeClient
	Timeout time.Duration
}

type AskAnswer struct {
	Answer    string `json:"answer"`
	ListingID string `json:"listing_id"`
}

func (s *AssistantService) Ask(ctx context.Context, question, listingID string) (AskAnswer, error) {
	listing, err := s.Catalog.ByID(listingID)
	if err != nil {
		return AskAnswer{}, err
	}

	timeout := s.Timeout
	if timeout == 0 {
		timeout = 25 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	answer, err := s.Client.GenerateContent(ctx, buildListingPrompt(listing, question))
	if err != nil {
		return AskAnswer{}, fmt.Errorf("generate answer: %w", err)
	}
	return AskAnswer{Answer: strings.TrimSpace(answer), ListingID: listing.ID}, nil
}

func buildListingPrompt(listing models.Listing, question string) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant answering questions about one apartment listing. ")
	b.WriteString("Use only the listing details below. If the details do not answer the question, say so plainly.\n\n")
	b.WriteString("Listing details:\n")

	writeField := func(name, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "- %s: %s\n", name, value)
		}
	}

	writeField("Address", listing.Address)
	writeField("Neighborhood", listing.RawArea())
	fmt.Fprintf(&b, "- Monthly rent: $%.0f\n", listing.EffectivePrice())
	if listing.Bedrooms != nil {
		fmt.Fprintf(&b, "- Bedrooms: %g\n", *listing.Bedrooms)
	}
	writeField("Rooms", listing.RoomsDescription)
	if listing.Bathrooms != nil {
		fmt.Fprintf(&b, "- Bathrooms: %g\n", *listing.Bathrooms)
	}
	if listing.SquareFeet != nil {
		fmt.Fprintf(&b, "- Square feet: %g\n", *listing.SquareFeet)
	}
	writeField("Quality label", listing.LionScore)
	if listing.NoFee {
		b.WriteString("- No broker fee\n")
	}
	if n := listing.TotalComplaints(); n > 0 {
		fmt.Fprintf(&b, "- Building complaints on record: %d\n", n)
	}
	if len(listing.Amenities) > 0 {
		writeField("Amenities", strings.Join(listing.Amenities, ", "))
	}
	writeField("Description", listing.Description)

	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	return b.String()
}
