package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/usecase"
	"product-catalog-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductUsecase struct {
	usecase.ProductUsecase

	lastUpdateID  int64
	lastUpdateReq *dto.UpdateProductRequest
	updateResp    *dto.ProductResponse
	updateErr     error

	deleteErr error
}

func (s *stubProductUsecase) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s.lastUpdateID = id
	s.lastUpdateReq = req
	return s.updateResp, s.updateErr
}

func (s *stubProductUsecase) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func setupRouter(u usecase.ProductUsecase) *mux.Router {
	h := NewProductHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/products", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", h.Update).Methods(http.MethodPatch)
	r.HandleFunc("/products/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func sampleResponse() *dto.ProductResponse {
	description := "e"
	return &dto.ProductResponse{
		ID:            1,
		Name:          "B",
		Description:   &description,
		Price:         decimal.RequireFromString("99.99"),
		StockQuantity: 200,
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUpdateHandlerSuccess(t *testing.T) {
	stub := &stubProductUsecase{updateResp: sampleResponse()}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodPatch, "/products/1", `{"name":"B","price":99.99}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
	assert.Equal(t, int64(1), stub.lastUpdateID)

	require.NotNil(t, stub.lastUpdateReq)
	name, ok := stub.lastUpdateReq.Name.Value()
	assert.True(t, ok)
	assert.Equal(t, "B", name)
	assert.False(t, stub.lastUpdateReq.Description.IsSet(), "omitted field must stay unset")
}

func TestUpdateHandlerEmptyBody(t *testing.T) {
	stub := &stubProductUsecase{updateResp: sampleResponse()}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodPatch, "/products/1", `{}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, stub.lastUpdateReq)
	assert.False(t, stub.lastUpdateReq.Name.IsSet())
	assert.False(t, stub.lastUpdateReq.Description.IsSet())
}

func TestUpdateHandlerNullDescription(t *testing.T) {
	stub := &stubProductUsecase{updateResp: sampleResponse()}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodPatch, "/products/1", `{"description":null}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, stub.lastUpdateReq)
	assert.True(t, stub.lastUpdateReq.Description.IsNull())
}

func TestUpdateHandlerInvalidID(t *testing.T) {
	router := setupRouter(&stubProductUsecase{})

	rr := doRequest(router, http.MethodPatch, "/products/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateHandlerInvalidBody(t *testing.T) {
	router := setupRouter(&stubProductUsecase{})

	rr := doRequest(router, http.MethodPatch, "/products/1", `{"price":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateHandlerValidation(t *testing.T) {
	stub := &stubProductUsecase{}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodPatch, "/products/1", `{"price":null}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "price cannot be null")
	assert.Nil(t, stub.lastUpdateReq, "invalid request must not reach the usecase")

	rr = doRequest(router, http.MethodPatch, "/products/1", `{"stock_quantity":-5}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateHandlerNotFound(t *testing.T) {
	stub := &stubProductUsecase{updateErr: usecase.ErrProductNotFound}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodPatch, "/products/999", `{"name":"B"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Product not found")
}

func TestCreateHandlerValidation(t *testing.T) {
	router := setupRouter(&stubProductUsecase{})

	rr := doRequest(router, http.MethodPost, "/products", `{"price":10.00}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Name is required")

	rr = doRequest(router, http.MethodPost, "/products", `{"name":"Widget","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "price must be greater than 0")
}

func TestDeleteHandlerNotFound(t *testing.T) {
	stub := &stubProductUsecase{deleteErr: usecase.ErrProductNotFound}
	router := setupRouter(stub)

	rr := doRequest(router, http.MethodDelete, "/products/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
