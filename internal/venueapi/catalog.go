package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

type CategoryUpsert struct {
	Name string `json:"name"`
}

type ArtistUpsert struct {
	Name        string                 `json:"name"`
	Genre       string                 `json:"genre,omitempty"`
	Photo       string                 `json:"photo,omitempty"`
	Biography   string                 `json:"biography,omitempty"`
	Contact     string                 `json:"contact,omitempty"`
	SocialMedia map[string]interface{} `json:"socialMedia,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryUpsert) (Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/category", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryUpsert) (Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPut, "/category/"+url.PathEscape(id), in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/category/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListArtists(ctx context.Context) ([]Artist, error) {
	var out []Artist
	if err := c.do(ctx, http.MethodGet, "/artists", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtist(ctx context.Context, id string) (Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodGet, "/artists/"+url.PathEscape(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) CreateArtist(ctx context.Context, in ArtistUpsert) (Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodPost, "/artists", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateArtist(ctx context.Context, id string, in ArtistUpsert) (Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodPut, "/artists/"+url.PathEscape(id), in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) DeleteArtist(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/artists/"+url.PathEscape(id), nil, nil)
}
