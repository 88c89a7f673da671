package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewMenuController()
	r := gin.New()
	r.POST("/admin/menuitems", ctrl.CreateMenuItem)
	r.PATCH("/admin/menuitems/:id", ctrl.UpdateMenuItem)
	r.POST("/admin/toppings", ctrl.CreateTopping)
	r.PATCH("/admin/toppings/:id", ctrl.UpdateTopping)
	return r
}

// Malformed catalog writes must be rejected before anything is persisted.
func TestCatalogWriteValidation(t *testing.T) {
	r := newCatalogRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{
			"empty name and negative prices",
			http.MethodPost, "/admin/menuitems",
			`{"name":"","price_small":-5,"price_large":-1,"category":"Bogus"}`,
		},
		{
			"missing category",
			http.MethodPost, "/admin/menuitems",
			`{"name":"Calzone","price_small":7,"price_large":10}`,
		},
		{
			"unknown category",
			http.MethodPost, "/admin/menuitems",
			`{"name":"Calzone","price_small":7,"price_large":10,"category":"Drinks"}`,
		},
		{
			"zero price",
			http.MethodPost, "/admin/menuitems",
			`{"name":"Calzone","price_small":0,"price_large":10,"category":"Pizza"}`,
		},
		{
			"update with negative price",
			http.MethodPatch, "/admin/menuitems/1",
			`{"price_small":-2}`,
		},
		{
			"update with unknown category",
			http.MethodPatch, "/admin/menuitems/1",
			`{"category":"Bogus"}`,
		},
		{
			"topping without name",
			http.MethodPost, "/admin/toppings",
			`{"price":1.5}`,
		},
		{
			"topping with negative price",
			http.MethodPost, "/admin/toppings",
			`{"name":"Olives","price":-0.5}`,
		},
		{
			"topping update with empty name",
			http.MethodPatch, "/admin/toppings/1",
			`{"name":""}`,
		},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got status %d, want %d", tt.name, w.Code, http.StatusBadRequest)
		}
	}
}
