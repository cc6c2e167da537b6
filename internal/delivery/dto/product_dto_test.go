package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeUpdateRequest(t *testing.T, body string) *UpdateProductRequest {
	t.Helper()
	var req UpdateProductRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestUpdateRequestValidateEmpty(t *testing.T) {
	req := decodeUpdateRequest(t, `{}`)
	assert.Nil(t, req.Validate())
}

func TestUpdateRequestValidateAllFields(t *testing.T) {
	req := decodeUpdateRequest(t, `{"name":"B","price":99.99,"stock_quantity":200,"description":"e"}`)
	assert.Nil(t, req.Validate())
}

func TestUpdateRequestValidateNullDescription(t *testing.T) {
	req := decodeUpdateRequest(t, `{"description":null}`)
	assert.Nil(t, req.Validate())
}

func TestUpdateRequestValidateNullRejected(t *testing.T) {
	req := decodeUpdateRequest(t, `{"name":null,"price":null,"stock_quantity":null}`)
	errs := req.Validate()
	assert.Equal(t, "name cannot be null", errs["name"])
	assert.Equal(t, "price cannot be null", errs["price"])
	assert.Equal(t, "stock_quantity cannot be null", errs["stock_quantity"])
}

func TestUpdateRequestValidatePrice(t *testing.T) {
	req := decodeUpdateRequest(t, `{"price":0}`)
	assert.Equal(t, "price must be greater than 0", req.Validate()["price"])

	req = decodeUpdateRequest(t, `{"price":-1.50}`)
	assert.Equal(t, "price must be greater than 0", req.Validate()["price"])

	req = decodeUpdateRequest(t, `{"price":0.01}`)
	assert.Nil(t, req.Validate())
}

func TestUpdateRequestValidateStockQuantity(t *testing.T) {
	req := decodeUpdateRequest(t, `{"stock_quantity":-1}`)
	assert.Equal(t, "stock_quantity must be greater than or equal to 0", req.Validate()["stock_quantity"])

	req = decodeUpdateRequest(t, `{"stock_quantity":0}`)
	assert.Nil(t, req.Validate())
}
