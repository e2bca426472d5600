// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/config"
	"github.com/javajoker/collaboration-service/internal/database"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/router"
	"github.com/javajoker/collaboration-service/internal/services"
)

type APITestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	upstream *httptest.Server
	stop     chan struct{}

	warsaw *models.Seller
	krakow *models.Seller
	rome   *models.Seller
	mug    *models.Product
}

// fakeRegistry stands in for the brand and category services.
func fakeRegistry() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/brands/3", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"name":"acme"}`))
	})
	mux.HandleFunc("/categories/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"kitchen"}`))
	})
	mux.HandleFunc("/categories/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/categories/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"name":"kitchen"}]`))
	})
	mux.HandleFunc("/brands/500", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return mux
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := database.Open(sqlite.Open(":memory:"), "silent")
	suite.Require().NoError(err)
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(database.RunMigrations(db))
	suite.db = db

	suite.upstream = httptest.NewServer(fakeRegistry())
	suite.stop = make(chan struct{})

	cfg := &config.Config{
		Environment: "test",
		Proximity:   config.ProximityConfig{RadiusKm: 50},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"http://localhost"}},
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
	suite.router = router.Initialize(db, cfg, router.Dependencies{
		Brands:     services.NewBrandRegistry(suite.upstream.URL, 2*time.Second),
		Categories: services.NewCategoryRegistry(suite.upstream.URL, 2*time.Second),
		Stop:       suite.stop,
	})

	suite.warsaw = suite.seedSeller("warsaw", "52.2297,21.0122")
	suite.krakow = suite.seedSeller("krakow", "50.0647,19.9450")
	suite.rome = suite.seedSeller("rome", "41.8919,12.5113")
	suite.mug = &models.Product{Name: "mug", Price: 10, StockQuantity: 3}
	suite.Require().NoError(db.Create(suite.mug).Error)
}

func (suite *APITestSuite) TearDownTest() {
	close(suite.stop)
	suite.upstream.Close()
}

func (suite *APITestSuite) seedSeller(name, location string) *models.Seller {
	seller := &models.Seller{Name: name, Email: name + "@example.com", WarehouseLocation: &location, IsActive: true}
	suite.Require().NoError(suite.db.Create(seller).Error)
	return seller
}

func (suite *APITestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, _ := json.Marshal(b)
		reader = bytes.NewReader(jsonData)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func (suite *APITestSuite) createCollaboration(collaborationType string) int64 {
	w, response := suite.request("POST", "/v1/collaborations", map[string]interface{}{
		"seller_id":          suite.warsaw.ID,
		"partner_seller_id":  suite.krakow.ID,
		"collaboration_type": collaborationType,
		"agreement_details":  "initial",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	data := response["data"].(map[string]interface{})
	collaboration := data["collaboration"].(map[string]interface{})
	return int64(collaboration["id"].(float64))
}

func errorCode(response map[string]interface{}) string {
	errObj, _ := response["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func (suite *APITestSuite) TestHealth() {
	w, response := suite.request("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "healthy", response["status"])
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
}

func (suite *APITestSuite) TestCollaborationLifecycle() {
	id := suite.createCollaboration("B2B")
	path := fmt.Sprintf("/v1/collaborations/%d", id)

	w, response := suite.request("GET", path, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	w, response = suite.request("PATCH", path, `{"agreement_details":"updated","bulk_order_threshold":250}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	collaboration := response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.Equal(suite.T(), "updated", collaboration["agreement_details"])
	assert.EqualValues(suite.T(), 250, collaboration["bulk_order_threshold"])
	assert.Equal(suite.T(), "B2B", collaboration["collaboration_type"])

	w, response = suite.request("PUT", path, `{"bulk_order_threshold":null}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	collaboration = response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.Nil(suite.T(), collaboration["bulk_order_threshold"])

	w, response = suite.request("DELETE", path, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	deleted := response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.Equal(suite.T(), "updated", deleted["agreement_details"])

	w, _ = suite.request("GET", path, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	w, _ = suite.request("DELETE", path, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCreateCollaboration_Errors() {
	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
		code   string
	}{
		{
			name:   "unknown type",
			body:   map[string]interface{}{"seller_id": suite.warsaw.ID, "partner_seller_id": suite.krakow.ID, "collaboration_type": "Hybrid", "agreement_details": "x"},
			status: http.StatusBadRequest,
			code:   "INVALID_COLLABORATION_TYPE",
		},
		{
			name:   "missing partner",
			body:   map[string]interface{}{"seller_id": suite.warsaw.ID, "partner_seller_id": 9999, "collaboration_type": "B2B", "agreement_details": "x"},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "missing agreement details",
			body:   map[string]interface{}{"seller_id": suite.warsaw.ID, "partner_seller_id": suite.krakow.ID, "collaboration_type": "B2B"},
			status: http.StatusBadRequest,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "unknown brand",
			body:   map[string]interface{}{"seller_id": suite.warsaw.ID, "partner_seller_id": suite.krakow.ID, "collaboration_type": "B2B", "agreement_details": "x", "brand_id": 4},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "brand service failing",
			body:   map[string]interface{}{"seller_id": suite.warsaw.ID, "partner_seller_id": suite.krakow.ID, "collaboration_type": "B2B", "agreement_details": "x", "brand_id": 500},
			status: http.StatusBadGateway,
			code:   "UPSTREAM_ERROR",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w, response := suite.request("POST", "/v1/collaborations", tt.body)
			assert.Equal(suite.T(), tt.status, w.Code, w.Body.String())
			assert.Equal(suite.T(), tt.code, errorCode(response))
		})
	}

	var count int64
	suite.db.Model(&models.Collaboration{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *APITestSuite) TestCreateCollaboration_WithCategoryAndBrand() {
	w, response := suite.request("POST", "/v1/collaborations", map[string]interface{}{
		"seller_id":          suite.warsaw.ID,
		"partner_seller_id":  suite.krakow.ID,
		"collaboration_type": "B2C",
		"agreement_details":  "category deal",
		"category_id":        7,
		"brand_id":           3,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	collaboration := response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.EqualValues(suite.T(), 7, collaboration["category_id"])
	assert.EqualValues(suite.T(), 3, collaboration["brand_id"])
}

func (suite *APITestSuite) TestUpdateCollaboration_RejectsFixedColumns() {
	id := suite.createCollaboration("B2B")
	path := fmt.Sprintf("/v1/collaborations/%d", id)

	w, response := suite.request("PATCH", path, `{"seller_id":99}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "VALIDATION_ERROR", errorCode(response))

	w, _ = suite.request("PATCH", path, `{"agreement_details":null}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w, _ = suite.request("PATCH", "/v1/collaborations/abc", `{"agreement_details":"x"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestSellerCollaborations() {
	suite.createCollaboration("B2B")
	suite.createCollaboration("B2C")

	w, response := suite.request("GET", fmt.Sprintf("/v1/collaborations/seller/%d", suite.krakow.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.EqualValues(suite.T(), 2, response["data"].(map[string]interface{})["count"])

	w, response = suite.request("GET", fmt.Sprintf("/v1/collaborations/seller/%d?collaboration_type=B2C", suite.warsaw.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.EqualValues(suite.T(), 1, response["data"].(map[string]interface{})["count"])

	w, response = suite.request("GET", fmt.Sprintf("/v1/collaborations/seller/%d?collaboration_type=Hybrid", suite.warsaw.ID), nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "INVALID_COLLABORATION_TYPE", errorCode(response))

	w, _ = suite.request("GET", fmt.Sprintf("/v1/collaborations/seller/%d", suite.rome.ID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestSharedInventory() {
	id := suite.createCollaboration("B2B")
	path := fmt.Sprintf("/v1/collaborations/%d/shared-inventory", id)

	w, response := suite.request("POST", path, map[string]interface{}{
		"products":  []int64{suite.mug.ID},
		"logistics": "shared van",
		"terms":     "monthly settlement",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	collaboration := response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.Equal(suite.T(),
		fmt.Sprintf("Shared Inventory: [%d], Logistics: shared van, Terms: monthly settlement", suite.mug.ID),
		collaboration["agreement_details"])

	w, response = suite.request("POST", path, map[string]interface{}{"products": []int64{}, "logistics": "a", "terms": "b"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	collaboration = response["data"].(map[string]interface{})["collaboration"].(map[string]interface{})
	assert.Equal(suite.T(), "Shared Inventory: [], Logistics: a, Terms: b", collaboration["agreement_details"])

	w, _ = suite.request("POST", "/v1/collaborations/9999/shared-inventory", map[string]interface{}{"products": []int64{suite.mug.ID}, "logistics": "a", "terms": "b"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestNearbySellers() {
	path := fmt.Sprintf("/v1/collaborations/nearby-sellers/%d", suite.warsaw.ID)

	w, response := suite.request("GET", path+"?location=52.2297,21.0122", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(suite.T(), 1, response["data"].(map[string]interface{})["count"], "only the requester is within 50 km")

	w, _ = suite.request("GET", path+"?location=52.2297,21.0122&exclude_self=true", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w, response = suite.request("GET", path+"?location=52.2297,21.0122&radius_km=300&sort=distance&exclude_self=true", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	sellers := response["data"].(map[string]interface{})["sellers"].([]interface{})
	suite.Require().Len(sellers, 1)
	first := sellers[0].(map[string]interface{})
	assert.Equal(suite.T(), "krakow", first["name"])
	assert.InDelta(suite.T(), 252, first["distance_km"], 5)

	w, response = suite.request("GET", path+"?location=somewhere", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "INVALID_LOCATION_FORMAT", errorCode(response))

	w, _ = suite.request("GET", path+"?location=52,21&radius_km=-3", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w, _ = suite.request("GET", "/v1/collaborations/nearby-sellers/9999?location=52,21", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestProximity() {
	w, response := suite.request("POST", "/v1/proximity", map[string]string{
		"location1": "52.2297,21.0122",
		"location2": "41.8919,12.5113",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.InDelta(suite.T(), 1315.5, response["data"].(map[string]interface{})["distance_km"], 1)

	w, response = suite.request("POST", "/v1/proximity", map[string]string{"location1": "1,2,3", "location2": "1,2"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "INVALID_LOCATION_FORMAT", errorCode(response))
}

func (suite *APITestSuite) TestContractLifecycle() {
	w, response := suite.request("POST", "/v1/contracts", map[string]interface{}{
		"seller_id":         suite.warsaw.ID,
		"partner_seller_id": suite.rome.ID,
		"contract_terms":    "net 30",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	contract := response["data"].(map[string]interface{})["contract"].(map[string]interface{})
	path := fmt.Sprintf("/v1/contracts/%d", int64(contract["id"].(float64)))

	w, response = suite.request("PATCH", path, map[string]interface{}{"product_id": suite.mug.ID, "contract_end_date": "2030-01-01T00:00:00Z"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	contract = response["data"].(map[string]interface{})["contract"].(map[string]interface{})
	assert.EqualValues(suite.T(), suite.mug.ID, contract["product_id"])

	w, response = suite.request("GET", fmt.Sprintf("/v1/contracts/seller/%d", suite.rome.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.EqualValues(suite.T(), 1, response["data"].(map[string]interface{})["count"])

	w, _ = suite.request("PATCH", path, `{"partner_seller_id":1}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w, _ = suite.request("DELETE", path, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	w, _ = suite.request("GET", path, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestSellers() {
	w, response := suite.request("POST", "/v1/sellers", map[string]interface{}{
		"name":               "gdansk",
		"email":              "gdansk@example.com",
		"warehouse_location": "54.3520,18.6466",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	seller := response["data"].(map[string]interface{})["seller"].(map[string]interface{})
	assert.Equal(suite.T(), true, seller["is_active"])

	w, response = suite.request("POST", "/v1/sellers", map[string]interface{}{"name": "dup", "email": "warsaw@example.com"})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Equal(suite.T(), "CONFLICT", errorCode(response))

	w, response = suite.request("GET", "/v1/sellers?limit=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "4", w.Header().Get("X-Total-Count"))
	assert.Len(suite.T(), response["data"], 2)

	w, response = suite.request("PUT", fmt.Sprintf("/v1/sellers/%d", suite.rome.ID), map[string]interface{}{"warehouse_location": "45.4642,9.1900"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	seller = response["data"].(map[string]interface{})["seller"].(map[string]interface{})
	assert.Equal(suite.T(), "45.4642,9.1900", seller["warehouse_location"])
}

func (suite *APITestSuite) TestRegistryPassThrough() {
	w, response := suite.request("GET", "/v1/brands/3", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "acme", response["data"].(map[string]interface{})["brand"].(map[string]interface{})["name"])

	w, _ = suite.request("GET", "/v1/brands/4", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w, response = suite.request("POST", "/v1/brands", map[string]string{"name": "ab"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "VALIDATION_ERROR", errorCode(response))

	w, response = suite.request("GET", "/v1/categories", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), response["data"].(map[string]interface{})["categories"], 1)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
