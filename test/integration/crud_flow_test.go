package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"shop-services/internal/adapter/db/postgres"
	"shop-services/internal/adapter/enrichment"
	"shop-services/internal/adapter/gin/handler"
	"shop-services/internal/adapter/gin/router"
	"shop-services/internal/config"
	"shop-services/internal/gateway"
	orderuc "shop-services/internal/usecase/order"
	productuc "shop-services/internal/usecase/product"
	useruc "shop-services/internal/usecase/user"
)

// CRUDFlowTestSuite wires the three resource services and the gateway
// together the way the binaries do, over in-memory databases, and drives
// them through real HTTP.
type CRUDFlowTestSuite struct {
	suite.Suite
	users    *httptest.Server
	products *httptest.Server
	orders   *httptest.Server
	gateway  *httptest.Server
	client   *http.Client
}

func (s *CRUDFlowTestSuite) SetupTest() {
	log := zaptest.NewLogger(s.T())

	usersDB := s.openDB(&postgres.UserSchema{})
	productsDB := s.openDB(&postgres.ProductSchema{})
	ordersDB := s.openDB(&postgres.OrderSchema{})

	userUC := useruc.New(postgres.NewUserRepoPG(usersDB, log), log)
	s.users = httptest.NewServer(router.SetupUsersRouter(handler.NewUserHandler(userUC, log), log))

	productUC := productuc.New(postgres.NewProductRepoPG(productsDB, log), log)
	s.products = httptest.NewServer(router.SetupProductsRouter(handler.NewProductHandler(productUC, log), log))

	resolver := enrichment.NewClient(s.users.URL, s.products.URL, log)
	orderUC := orderuc.New(postgres.NewOrderRepoPG(ordersDB, log), resolver, log)
	s.orders = httptest.NewServer(router.SetupOrdersRouter(handler.NewOrderHandler(orderUC, log), log))

	cfg := &config.Config{}
	cfg.Services.UsersURL = s.users.URL
	cfg.Services.ProductsURL = s.products.URL
	cfg.Services.OrdersURL = s.orders.URL
	s.gateway = httptest.NewServer(gateway.SetupRouter(gateway.NewHandler(gateway.NewRegistry(cfg), log), log))

	// Never follow redirects; the tests assert on them.
	s.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *CRUDFlowTestSuite) TearDownTest() {
	s.gateway.Close()
	s.orders.Close()
	s.products.Close()
	s.users.Close()
}

func (s *CRUDFlowTestSuite) openDB(model any) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(model))
	return db
}

func (s *CRUDFlowTestSuite) postJSON(base, path string, body map[string]any) (*http.Response, map[string]any) {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req, err := http.NewRequestWithContext(context.Background(), "POST", base+path, bytes.NewReader(data))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (s *CRUDFlowTestSuite) get(base, path string) (*http.Response, []byte) {
	req, err := http.NewRequestWithContext(context.Background(), "GET", base+path, nil)
	s.Require().NoError(err)

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	s.Require().NoError(err)
	return resp, buf.Bytes()
}

func (s *CRUDFlowTestSuite) TestOrderEnrichmentAcrossServices() {
	// Create a user, then place an order referencing it plus a product that
	// does not exist anywhere.
	resp, created := s.postJSON(s.users.URL, "/users", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(float64(1), created["id"])

	resp, order := s.postJSON(s.orders.URL, "/orders", map[string]any{
		"user_id":    1,
		"product_id": 99,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("Ada", order["user_name"])
	s.Equal("Product #99", order["product_name"])

	// The listing repeats the enrichment.
	resp, body := s.get(s.orders.URL, "/orders")
	s.Equal(http.StatusOK, resp.StatusCode)

	var orders []map[string]any
	s.Require().NoError(json.Unmarshal(body, &orders))
	s.Require().Len(orders, 1)
	s.Equal("Ada", orders[0]["user_name"])
	s.Equal("Product #99", orders[0]["product_name"])
}

func (s *CRUDFlowTestSuite) TestUserCRUDFlow() {
	resp, _ := s.postJSON(s.users.URL, "/users", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	// Duplicate email is a constraint violation.
	resp, errBody := s.postJSON(s.users.URL, "/users", map[string]any{
		"name":  "Impostor",
		"email": "ada@example.com",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("constraint_violation", errBody["error"])

	// Replace, then fetch the new state.
	req, err := http.NewRequestWithContext(context.Background(), "PUT", s.users.URL+"/users/1",
		strings.NewReader(`{"name":"Ada Lovelace","email":"ada@lovelace.dev"}`))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	putResp, err := s.client.Do(req)
	s.Require().NoError(err)
	_ = putResp.Body.Close()
	s.Equal(http.StatusOK, putResp.StatusCode)

	resp, body := s.get(s.users.URL, "/users/1")
	s.Equal(http.StatusOK, resp.StatusCode)
	var fetched map[string]any
	s.Require().NoError(json.Unmarshal(body, &fetched))
	s.Equal("Ada Lovelace", fetched["name"])

	// Delete, then the id is gone.
	delReq, err := http.NewRequestWithContext(context.Background(), "DELETE", s.users.URL+"/users/1", nil)
	s.Require().NoError(err)
	delResp, err := s.client.Do(delReq)
	s.Require().NoError(err)
	_ = delResp.Body.Close()
	s.Equal(http.StatusOK, delResp.StatusCode)

	resp, _ = s.get(s.users.URL, "/users/1")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *CRUDFlowTestSuite) TestGatewayCreateFlow() {
	form := url.Values{"name": {"Grace Hopper"}, "email": {"grace@example.com"}}
	req, err := http.NewRequestWithContext(context.Background(), "POST",
		s.gateway.URL+"/users/create", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/users/", resp.Header.Get("Location"))

	// The created user shows up in the gateway's listing page.
	listResp, body := s.get(s.gateway.URL, "/users/")
	s.Equal(http.StatusOK, listResp.StatusCode)
	s.Contains(string(body), "Grace Hopper")
	s.Contains(string(body), "grace@example.com")
}

func (s *CRUDFlowTestSuite) TestGatewayUnknownService() {
	resp, body := s.get(s.gateway.URL, "/payments/")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(string(body), "unknown service")
}

func (s *CRUDFlowTestSuite) TestProductPriceThroughGatewayForm() {
	form := url.Values{"name": {"Widget"}, "description": {"A widget"}, "price": {"9.99"}}
	req, err := http.NewRequestWithContext(context.Background(), "POST",
		s.gateway.URL+"/products/create", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.Equal(http.StatusSeeOther, resp.StatusCode)

	// The backend stored the coerced number.
	getResp, body := s.get(s.products.URL, "/products/1")
	s.Equal(http.StatusOK, getResp.StatusCode)
	var product map[string]any
	s.Require().NoError(json.Unmarshal(body, &product))
	s.Equal(9.99, product["price"])
}

func TestCRUDFlowSuite(t *testing.T) {
	suite.Run(t, new(CRUDFlowTestSuite))
}
