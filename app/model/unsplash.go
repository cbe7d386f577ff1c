package model

// UnsplashImage is the trimmed shape the front-end's picker consumes.
type UnsplashImage struct {
	ID           string `json:"id"`
	Thumbnail    string `json:"thumbnail"`
	FullImage    string `json:"full_image"`
	Photographer string `json:"photographer"`
	Description  string `json:"description"`
}

// UnsplashSearchResult mirrors the fields we read from
// api.unsplash.com/search/photos.
type UnsplashSearchResult struct {
	Results []UnsplashPhoto `json:"results"`
}

type UnsplashPhoto struct {
	ID             string       `json:"id"`
	Description    string       `json:"description"`
	AltDescription string       `json:"alt_description"`
	URLs           UnsplashURLs `json:"urls"`
	User           UnsplashUser `json:"user"`
}

type UnsplashURLs struct {
	Full  string `json:"full"`
	Thumb string `json:"thumb"`
}

type UnsplashUser struct {
	Name string `json:"name"`
}

// describe prefers the curated description and falls back to the
// machine-generated one.
func (p UnsplashPhoto) describe() string {
	if p.Description != "" {
		return p.Description
	}
	return p.AltDescription
}

// MapUnsplashResults flattens an upstream search response into picker
// results. Never returns nil so the JSON body always carries an array.
func MapUnsplashResults(res UnsplashSearchResult) []UnsplashImage {
	images := make([]UnsplashImage, 0, len(res.Results))
	for _, p := range res.Results {
		images = append(images, UnsplashImage{
			ID:           p.ID,
			Thumbnail:    p.URLs.Thumb,
			FullImage:    p.URLs.Full,
			Photographer: p.User.Name,
			Description:  p.describe(),
		})
	}
	return images
}
