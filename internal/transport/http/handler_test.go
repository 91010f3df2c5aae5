package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/get_product"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/list_products"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/change_price"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/create_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/delete_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/update_product"
	"github.com/fc-labs/store-management-service/internal/auth"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

// memStore keeps products in memory and backs both the repository and the
// read model, so handler tests exercise full request flows without a
// database. Mutations take effect immediately instead of at commit time;
// the committer separation is covered by the usecase tests.
type memStore struct {
	products map[string]*domain.Product
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*domain.Product)}
}

func (s *memStore) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	s.products[product.ID()] = product
	return spanner.Insert("products", []string{"product_id"}, []interface{}{product.ID()}), nil
}

func (s *memStore) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	s.products[product.ID()] = product
	return spanner.Update("products", []string{"product_id"}, []interface{}{product.ID()}), nil
}

func (s *memStore) DeleteMut(productID string) *spanner.Mutation {
	delete(s.products, productID)
	return spanner.Delete("products", spanner.Key{productID})
}

func (s *memStore) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	if p, ok := s.products[productID]; ok {
		return p, nil
	}
	return nil, &domain.NotFoundError{ID: productID}
}

func (s *memStore) FindByName(_ context.Context, name string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func (s *memStore) GetProductByID(_ context.Context, productID string) (*contracts.ProductDTO, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, &domain.NotFoundError{ID: productID}
	}
	return toDTO(p), nil
}

func (s *memStore) ListProducts(_ context.Context) ([]*contracts.ProductDTO, error) {
	dtos := make([]*contracts.ProductDTO, 0, len(s.products))
	for _, p := range s.products {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

func toDTO(p *domain.Product) *contracts.ProductDTO {
	dto := &contracts.ProductDTO{
		ProductID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		ProductType: string(p.Type()),
		CreateDate:  p.CreateDate(),
		UpdateDate:  p.UpdateDate(),
	}
	if price := p.Price(); price != nil {
		f := price.Float64()
		dto.Price = &f
	}
	return dto
}

type nopCommitter struct{}

func (nopCommitter) Apply(context.Context, *committer.CommitPlan) error { return nil }

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	store := newMemStore()
	comm := nopCommitter{}
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	handler := NewHandler(
		create_product.NewInteractor(store, comm, clk),
		update_product.NewInteractor(store, comm, clk),
		change_price.NewInteractor(store, comm),
		delete_product.NewInteractor(store, comm),
		get_product.NewQuery(store),
		list_products.NewQuery(store),
		logger,
	)

	authorizer := auth.NewStaticAuthorizer("user", "user", "admin", "admin")
	server := httptest.NewServer(NewRouter(handler, authorizer, logger))
	t.Cleanup(server.Close)

	return server, store
}

func doRequest(t *testing.T, method, url, user, password, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if user != "" {
		req.SetBasicAuth(user, password)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func seedProduct(store *memStore, id, name string, price *domain.Money) {
	created := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	store.products[id] = domain.ReconstructProduct(id, name, "seeded", price, domain.TypeHard, created, nil)
}

func TestAuthentication(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("missing credentials", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, server.URL+"/products", "", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
	})

	t.Run("bad password", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, server.URL+"/products", "user", "wrong", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("reader cannot mutate", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPost, server.URL+"/products", "user", "user", `{"name":"X"}`)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("reader can read", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, server.URL+"/products", "user", "user", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("health endpoint is open", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, server.URL+"/healthz", "", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("creates and echoes the record", func(t *testing.T) {
		server, store := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"name":"Keyboard","description":"Mechanical","price":24.99,"productType":"HARD"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Keyboard", body["name"])
		assert.Equal(t, "HARD", body["productType"])
		assert.InDelta(t, 24.99, body["price"].(float64), 1e-9)
		assert.Nil(t, body["updateDate"])
		assert.Len(t, store.products, 1)
	})

	t.Run("missing name", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"description":"no name"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "the product name was not provided", body["error"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		server, store := newTestServer(t)
		seedProduct(store, "id-1", "Keyboard", nil)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"name":"Keyboard"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "the product name already exists: Keyboard", body["error"])
	})

	t.Run("absent price is accepted", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"name":"Free sample"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, body["price"])
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"name":"Giveaway","price":0}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 0.0, body["price"].(float64))
	})

	t.Run("malformed body", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin", `{not json`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", body["error"])
	})

	t.Run("unknown product type", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products", "admin", "admin",
			`{"name":"X","productType":"LIQUID"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", body["error"])
	})
}

func TestGetProduct(t *testing.T) {
	server, store := newTestServer(t)
	price, _ := domain.NewMoney(50, 1)
	seedProduct(store, "id-1", "Keyboard", price)

	t.Run("existing product", func(t *testing.T) {
		resp, body := doRequest(t, http.MethodGet, server.URL+"/products/id-1", "user", "user", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "id-1", body["id"])
		assert.Equal(t, "Keyboard", body["name"])
		assert.Equal(t, 50.0, body["price"].(float64))
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, body := doRequest(t, http.MethodGet, server.URL+"/products/nope", "user", "user", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "could not find product with id nope", body["error"])
	})
}

func TestListProducts(t *testing.T) {
	server, store := newTestServer(t)

	resp, _ := doRequest(t, http.MethodGet, server.URL+"/products", "user", "user", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	seedProduct(store, "id-1", "A", nil)
	seedProduct(store, "id-2", "B", nil)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/products", nil)
	req.SetBasicAuth("user", "user")
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var items []map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&items))
	assert.Len(t, items, 2)
}

func TestUpdateProduct(t *testing.T) {
	t.Run("existing id is overwritten in place", func(t *testing.T) {
		server, store := newTestServer(t)
		price, _ := domain.NewMoney(10, 1)
		seedProduct(store, "id-1", "Old", price)

		resp, body := doRequest(t, http.MethodPut, server.URL+"/products/id-1", "admin", "admin",
			`{"name":"New","description":"Updated","price":20,"productType":"SOFT"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "id-1", body["id"])
		assert.Equal(t, "New", body["name"])
		assert.Equal(t, 20.0, body["price"].(float64))
		assert.NotNil(t, body["updateDate"])
		// type comes from the stored record, not the request
		assert.Equal(t, "HARD", body["productType"])
	})

	t.Run("unknown id creates a record under a fresh id", func(t *testing.T) {
		server, store := newTestServer(t)

		resp, body := doRequest(t, http.MethodPut, server.URL+"/products/no-such-id", "admin", "admin",
			`{"name":"Candidate","price":5}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEqual(t, "no-such-id", body["id"])
		assert.NotEmpty(t, body["id"])
		assert.Nil(t, body["updateDate"])

		_, present := store.products["no-such-id"]
		assert.False(t, present)
		assert.Len(t, store.products, 1)
	})
}

func TestDeleteProduct(t *testing.T) {
	server, store := newTestServer(t)
	seedProduct(store, "id-1", "Keyboard", nil)

	t.Run("existing id", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodDelete, server.URL+"/products/id-1", "admin", "admin", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, store.products)
	})

	t.Run("unknown id is still 200", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodDelete, server.URL+"/products/never-existed", "admin", "admin", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestChangePrice(t *testing.T) {
	t.Run("replaces the price", func(t *testing.T) {
		server, store := newTestServer(t)
		price, _ := domain.NewMoney(10, 1)
		seedProduct(store, "id-1", "Keyboard", price)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"id-1","price":99.5}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 99.5, body["price"].(float64))
		assert.Nil(t, body["updateDate"])
	})

	t.Run("missing price", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"id-1"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "the field price is mandatory", body["error"])
	})

	t.Run("zero price maps to 404", func(t *testing.T) {
		server, store := newTestServer(t)
		seedProduct(store, "id-1", "Keyboard", nil)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"id-1","price":0}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "new price should be greater than zero for product id-1", body["error"])
	})

	t.Run("validation runs before the lookup", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"no-such-id","price":0}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "new price should be greater than zero for product no-such-id", body["error"])
	})

	t.Run("negative price is accepted", func(t *testing.T) {
		server, store := newTestServer(t)
		seedProduct(store, "id-1", "Keyboard", nil)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"id-1","price":-5}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, -5.0, body["price"].(float64))
	})

	t.Run("unknown id with a valid price", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/products/priceChange", "admin", "admin",
			`{"id":"no-such-id","price":10}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "could not find product with id no-such-id", body["error"])
	})
}
