package infra_catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/humanbelnik/kinomatch/core/internal/config"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

// Client talks to the external catalog-resolution service. The service owns
// its own metadata caching; this client only enforces a bounded timeout so
// a slow catalog degrades a page instead of hanging the room's event flow.
type Client struct {
	baseURL string
	http    *http.Client
}

func MustEstablishConnection(cfg config.Catalog) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type titleDTO struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Title      string   `json:"title"`
	PosterLink string   `json:"poster_link"`
	Genres     []string `json:"genres"`
	Year       int      `json:"year"`
	Rating     float64  `json:"rating"`
	Overview   string   `json:"overview"`
}

type listResponseDTO struct {
	Items []titleDTO `json:"items"`
}

type resolveRequestDTO struct {
	IDs []string `json:"ids"`
}

type resolveResponseDTO struct {
	Titles []titleDTO `json:"titles"`
}

func (c *Client) ListInteresting(ctx context.Context, category string, page int) ([]model.PoolItem, error) {
	url := c.baseURL + "/v1/lists/" + category + "?page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog list %s page %d: status %d", category, page, resp.StatusCode)
	}

	var dto listResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, err
	}

	items := make([]model.PoolItem, 0, len(dto.Items))
	for _, t := range dto.Items {
		items = append(items, model.PoolItem{ID: t.ID, Kind: t.Kind})
	}
	return items, nil
}

// ResolveMany resolves a batch of ids in one call. Ids absent from the
// response are simply missing from the map; callers drop them silently.
func (c *Client) ResolveMany(ctx context.Context, ids []string) (map[string]model.MovieMeta, error) {
	if len(ids) == 0 {
		return map[string]model.MovieMeta{}, nil
	}

	body, err := json.Marshal(resolveRequestDTO{IDs: ids})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/titles/resolve", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog resolve: status %d", resp.StatusCode)
	}

	var dto resolveResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, err
	}

	resolved := make(map[string]model.MovieMeta, len(dto.Titles))
	for _, t := range dto.Titles {
		resolved[t.ID] = model.MovieMeta{
			ID:         t.ID,
			Title:      t.Title,
			PosterLink: t.PosterLink,
			Genres:     t.Genres,
			Year:       t.Year,
			Rating:     t.Rating,
			Overview:   t.Overview,
		}
	}
	return resolved, nil
}
