package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallory/item-api/internal/domain"
	"github.com/jmallory/item-api/internal/service"
)

// stubItemService lets each test plug in just the behavior it needs.
type stubItemService struct {
	createFn func(ctx context.Context, name, description string) (*domain.Item, error)
	listFn   func(ctx context.Context, limit, offset int) ([]*domain.Item, error)
	getFn    func(ctx context.Context, id int64) (*domain.Item, error)
	updateFn func(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubItemService) CreateItem(ctx context.Context, name, description string) (*domain.Item, error) {
	return s.createFn(ctx, name, description)
}

func (s *stubItemService) ListItems(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubItemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) UpdateItem(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

var _ service.ItemService = (*stubItemService)(nil)

// newTestRouter mounts the handler under /items the same way the server does.
func newTestRouter(svc service.ItemService) http.Handler {
	h := NewItemHandler(svc, nil)

	r := chi.NewRouter()
	r.Route("/items", func(r chi.Router) {
		r.Post("/", h.CreateItem)
		r.Get("/", h.ListItems)
		r.Get("/{id}", h.GetItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testItem(id int64, name, description string) *domain.Item {
	now := time.Now().UTC()
	return &domain.Item{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateItemHandler(t *testing.T) {
	t.Run("valid request returns the created item", func(t *testing.T) {
		svc := &stubItemService{
			createFn: func(ctx context.Context, name, description string) (*domain.Item, error) {
				return testItem(1, name, description), nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPost, "/items/",
			`{"name": "Lamp", "description": "A desk lamp"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ItemResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Lamp", resp.Name)
		assert.Equal(t, "A desk lamp", resp.Description)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodPost, "/items/", `{"name": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodPost, "/items/", `{"name": "Lamp"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("empty field", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodPost, "/items/",
			`{"name": "", "description": "A desk lamp"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("oversized field reports the bound", func(t *testing.T) {
		svc := &stubItemService{
			createFn: func(ctx context.Context, name, description string) (*domain.Item, error) {
				return nil, fmt.Errorf("%w: name must not exceed 255 characters", domain.ErrValidation)
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPost, "/items/",
			`{"name": "Lamp", "description": "A desk lamp"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "name must not exceed 255 characters")
	})

	t.Run("unexpected store failure", func(t *testing.T) {
		svc := &stubItemService{
			createFn: func(ctx context.Context, name, description string) (*domain.Item, error) {
				return nil, errors.New("connection reset")
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPost, "/items/",
			`{"name": "Lamp", "description": "A desk lamp"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset", "internal detail must not leak")
	})
}

func TestListItemsHandler(t *testing.T) {
	t.Run("passes pagination parameters through", func(t *testing.T) {
		var gotLimit, gotOffset int
		svc := &stubItemService{
			listFn: func(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
				gotLimit, gotOffset = limit, offset
				return []*domain.Item{testItem(1, "Lamp", "A desk lamp")}, nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/?limit=5&offset=20", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, gotLimit)
		assert.Equal(t, 20, gotOffset)
	})

	t.Run("unparseable parameters fall back to defaults", func(t *testing.T) {
		var gotLimit, gotOffset int
		svc := &stubItemService{
			listFn: func(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
				gotLimit, gotOffset = limit, offset
				return nil, nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/?limit=abc&offset=xyz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, gotLimit)
		assert.Equal(t, 0, gotOffset)
	})

	t.Run("empty page serializes as an empty array", func(t *testing.T) {
		svc := &stubItemService{
			listFn: func(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
				return nil, nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubItemService{
			listFn: func(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
				return nil, errors.New("connection reset")
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetItemHandler(t *testing.T) {
	t.Run("existing item", func(t *testing.T) {
		svc := &stubItemService{
			getFn: func(ctx context.Context, id int64) (*domain.Item, error) {
				return testItem(id, "Lamp", "A desk lamp"), nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/42", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ItemResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("missing item", func(t *testing.T) {
		svc := &stubItemService{
			getFn: func(ctx context.Context, id int64) (*domain.Item, error) {
				return nil, service.ErrItemNotFound
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/items/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Item not found")
	})

	t.Run("non-numeric ID", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodGet, "/items/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateItemHandler(t *testing.T) {
	t.Run("partial update forwards only present fields", func(t *testing.T) {
		var gotPatch service.ItemPatch
		svc := &stubItemService{
			updateFn: func(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error) {
				gotPatch = patch
				return testItem(id, *patch.Name, "A desk lamp"), nil
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPut, "/items/1", `{"name": "Floor lamp"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotPatch.Name)
		assert.Equal(t, "Floor lamp", *gotPatch.Name)
		assert.Nil(t, gotPatch.Description, "absent field must stay nil")
	})

	t.Run("missing item wins over invalid patch", func(t *testing.T) {
		svc := &stubItemService{
			updateFn: func(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error) {
				return nil, service.ErrItemNotFound
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPut, "/items/42", `{"name": ""}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Item not found")
	})

	t.Run("present but empty field", func(t *testing.T) {
		svc := &stubItemService{
			updateFn: func(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error) {
				return nil, domain.ErrEmptyItemName
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPut, "/items/1", `{"name": ""}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Name cannot be empty")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodPut, "/items/1", `{"name": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric ID", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodPut, "/items/abc", `{"name": "Floor lamp"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		svc := &stubItemService{
			updateFn: func(ctx context.Context, id int64, patch service.ItemPatch) (*domain.Item, error) {
				return nil, errors.New("connection reset")
			},
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodPut, "/items/1", `{"name": "Floor lamp"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDeleteItemHandler(t *testing.T) {
	t.Run("successful delete returns a confirmation message", func(t *testing.T) {
		svc := &stubItemService{
			deleteFn: func(ctx context.Context, id int64) error { return nil },
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodDelete, "/items/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Item deleted successfully", resp.Message)
	})

	t.Run("missing item", func(t *testing.T) {
		svc := &stubItemService{
			deleteFn: func(ctx context.Context, id int64) error { return service.ErrItemNotFound },
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodDelete, "/items/42", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric ID", func(t *testing.T) {
		router := newTestRouter(&stubItemService{})

		rec := doRequest(t, router, http.MethodDelete, "/items/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		svc := &stubItemService{
			deleteFn: func(ctx context.Context, id int64) error { return errors.New("connection reset") },
		}
		router := newTestRouter(svc)

		rec := doRequest(t, router, http.MethodDelete, "/items/1", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
