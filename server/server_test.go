package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	"github.com/campustech/marketplace/services"
)

func TestMain(m *testing.M) {
	os.Setenv("GIN_MODE", "test")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	dsn := fmt.Sprintf("file:srv_%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	gdb := &db.GormDB{DB: gormDB}
	conf := &config.Config{Env: "test", JWTSecret: "test-secret"}

	authRepo := db.NewAuthRepo(gdb)
	productRepo := db.NewProductRepo(gdb)
	messageRepo := db.NewMessageRepo(gdb)

	s := &Server{
		Config:            conf,
		AuthRepository:    authRepo,
		ProductRepository: productRepo,
		MessageRepository: messageRepo,
		AuthService:       services.NewAuthService(authRepo, conf),
		ProductService:    services.NewProductService(productRepo, conf),
		MessageService:    services.NewMessageService(messageRepo, productRepo, conf),
	}
	return s, s.setupRouter()
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, regNumber, password string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/register", "", gin.H{
		"name":             name,
		"reg_number":       regNumber,
		"password":         password,
		"confirm_password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/login", "", gin.H{
		"identifier": regNumber,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestMarketplaceFlow(t *testing.T) {
	_, router := newTestServer(t)

	sellerToken := registerAndLogin(t, router, "Seller Sam", "H200000A", "secret1")

	// List a product.
	w := doRequest(t, router, http.MethodPost, "/sell", sellerToken, gin.H{
		"title":       "Desk",
		"description": "Sturdy wooden desk",
		"price":       "10",
		"category":    "Furniture",
		"condition":   "Used",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "Product listed successfully!", body["message"])
	product := body["data"].(map[string]interface{})
	productID := uint(product["id"].(float64))
	require.NotZero(t, productID)

	// The listing shows up on the public browse page.
	w = doRequest(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	assert.EqualValues(t, 1, data["total_pages"])
	assert.Contains(t, data["categories"].([]interface{}), "Furniture")

	// And on the seller's own listings page.
	w = doRequest(t, router, http.MethodGet, "/my_products", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Len(t, body["data"].([]interface{}), 1)

	// The public detail page works without a session.
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/product/%d", productID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A second user opens the chat and sends a message.
	buyerToken := registerAndLogin(t, router, "Buyer Bob", "H200001B", "secret1")

	w = doRequest(t, router, http.MethodPost, "/send_message", buyerToken, gin.H{
		"product_id": productID,
		"content":    "Is this available?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	echoed := body["message"].(map[string]interface{})
	assert.Equal(t, "Is this available?", echoed["content"])
	assert.Equal(t, "Buyer Bob", echoed["sender_name"])

	// The buyer sees the thread.
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/chat/%d", productID), buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(t, w)
	conversation := body["data"].(map[string]interface{})
	messages := conversation["messages"].([]interface{})
	require.Len(t, messages, 1)

	// The seller sees the identical thread by naming the buyer.
	buyerID := uint(messages[0].(map[string]interface{})["sender_id"].(float64))
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/chat/%d?with=%d", productID, buyerID), sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(t, w)
	sellerView := body["data"].(map[string]interface{})
	sellerMessages := sellerView["messages"].([]interface{})
	require.Len(t, sellerMessages, 1)
	assert.Equal(t, "Is this available?", sellerMessages[0].(map[string]interface{})["content"])
}

func TestAuthRequired(t *testing.T) {
	_, router := newTestServer(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/sell"},
		{http.MethodPost, "/sell"},
		{http.MethodGet, "/my_products"},
		{http.MethodGet, "/chat/1"},
		{http.MethodPost, "/send_message"},
	} {
		w := doRequest(t, router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	_, router := newTestServer(t)

	token := registerAndLogin(t, router, "Seller Sam", "H200000A", "secret1")

	w := doRequest(t, router, http.MethodGet, "/my_products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "You have been logged out.", body["message"])

	// The blacklisted token no longer opens the session routes.
	w = doRequest(t, router, http.MethodGet, "/my_products", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotFoundResponses(t *testing.T) {
	_, router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/no-such-page", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/product/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/product/not-a-number", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageErrorShape(t *testing.T) {
	_, router := newTestServer(t)

	token := registerAndLogin(t, router, "Seller Sam", "H200000A", "secret1")

	w := doRequest(t, router, http.MethodPost, "/send_message", token, gin.H{
		"product_id": 9999,
		"content":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Product not found", body["error"])
}

func TestRegisterFormAndLoginForm(t *testing.T) {
	_, router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/register", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/login", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
