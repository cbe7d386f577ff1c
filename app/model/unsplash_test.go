package model

import "testing"

func TestMapUnsplashResults(t *testing.T) {
	res := UnsplashSearchResult{
		Results: []UnsplashPhoto{
			{
				ID:          "abc",
				Description: "a laptop on a desk",
				URLs:        UnsplashURLs{Full: "https://img/full", Thumb: "https://img/thumb"},
				User:        UnsplashUser{Name: "Jane Doe"},
			},
			{
				ID:             "def",
				AltDescription: "generated description",
				URLs:           UnsplashURLs{Full: "https://img2/full", Thumb: "https://img2/thumb"},
				User:           UnsplashUser{Name: "John Roe"},
			},
		},
	}

	images := MapUnsplashResults(res)
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}

	first := images[0]
	if first.ID != "abc" || first.Thumbnail != "https://img/thumb" || first.FullImage != "https://img/full" {
		t.Errorf("unexpected first image mapping: %+v", first)
	}
	if first.Photographer != "Jane Doe" {
		t.Errorf("expected photographer 'Jane Doe', got %q", first.Photographer)
	}
	if first.Description != "a laptop on a desk" {
		t.Errorf("expected curated description, got %q", first.Description)
	}

	// Falls back to alt_description when description is empty.
	if images[1].Description != "generated description" {
		t.Errorf("expected alt description fallback, got %q", images[1].Description)
	}
}

func TestMapUnsplashResultsEmpty(t *testing.T) {
	images := MapUnsplashResults(UnsplashSearchResult{})
	if images == nil {
		t.Fatal("expected non-nil slice for empty results")
	}
	if len(images) != 0 {
		t.Errorf("expected 0 images, got %d", len(images))
	}
}
