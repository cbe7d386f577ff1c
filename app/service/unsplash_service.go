package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/config"
)

// UnsplashService proxies the image search so the access key never
// reaches the browser.
type UnsplashService struct {
	client *http.Client
	cache  *repo.SearchCache
}

func NewUnsplashService(cache *repo.SearchCache) *UnsplashService {
	return &UnsplashService{
		client: &http.Client{Timeout: config.Env.UnsplashTimeout},
		cache:  cache,
	}
}

// GET /api/unsplash/search?query=text
func (s *UnsplashService) Search(c *fiber.Ctx) error {
	query := c.Query("query")

	if s.cache != nil {
		if payload, ok := s.cache.Get(c.Context(), query); ok {
			var images []model.UnsplashImage
			if err := json.Unmarshal(payload, &images); err == nil {
				return c.JSON(model.DataResponse[[]model.UnsplashImage]{Data: images})
			}
		}
	}

	images, err := s.fetch(query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil gambar",
		})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(images); err == nil {
			s.cache.Set(c.Context(), query, payload)
		}
	}

	return c.JSON(model.DataResponse[[]model.UnsplashImage]{Data: images})
}

func (s *UnsplashService) fetch(query string) ([]model.UnsplashImage, error) {
	endpoint := fmt.Sprintf("%s/search/photos?per_page=24&query=%s",
		config.Env.UnsplashBaseURL, url.QueryEscape(query))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Client-ID "+config.Env.UnsplashAccessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var result model.UnsplashSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return model.MapUnsplashResults(result), nil
}
