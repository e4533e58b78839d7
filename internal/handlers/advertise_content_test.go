// internal/handlers/advertise_content_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/memory"
)

type AdvertiseContentHandlerSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *AdvertiseContentHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	stores := memory.NewStores()
	contentService := services.NewAdvertiseContentService(stores.Contents)
	handler := NewAdvertiseContentHandler(contentService)

	s.router = gin.New()
	contents := s.router.Group("/api/advertise-contents")
	{
		contents.GET("", handler.List)
		contents.GET("/search", handler.Search)
		contents.GET("/active", handler.ActiveOffers)
		contents.GET("/slug/:slug", handler.GetBySlug)
		contents.GET("/:id", handler.GetByID)
		contents.POST("", handler.Create)
		contents.PUT("/:id", handler.Update)
		contents.DELETE("/:id", handler.Delete)
	}
}

func (s *AdvertiseContentHandlerSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AdvertiseContentHandlerSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (s *AdvertiseContentHandlerSuite) createContent(title string) map[string]interface{} {
	w := s.request(http.MethodPost, "/api/advertise-contents", map[string]interface{}{
		"title":         title,
		"offerEndTime":  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"thumbImage":    "https://example.com/thumb.jpg",
		"price":         1200,
		"originalPrice": 1500,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	return s.decode(w)["data"].(map[string]interface{})
}

func (s *AdvertiseContentHandlerSuite) TestCreateReturnsEnvelope() {
	w := s.request(http.MethodPost, "/api/advertise-contents", map[string]interface{}{
		"title":        "Mega Winter Deal",
		"offerEndTime": time.Now().Add(time.Hour).Format(time.RFC3339),
		"thumbImage":   "https://example.com/thumb.jpg",
		"price":        999,
	})
	s.Equal(http.StatusCreated, w.Code)

	response := s.decode(w)
	s.Equal("Advertise content created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	s.Equal("mega-winter-deal", data["slug"])

	tr := data["timeRemaining"].(map[string]interface{})
	s.Equal(false, tr["expired"])
}

func (s *AdvertiseContentHandlerSuite) TestCreateMissingFields() {
	w := s.request(http.MethodPost, "/api/advertise-contents", map[string]interface{}{
		"title": "No price or image",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestDuplicateSlugConflicts() {
	s.createContent("Summer Sale")

	w := s.request(http.MethodPost, "/api/advertise-contents", map[string]interface{}{
		"title":        "Summer Sale",
		"offerEndTime": time.Now().Add(time.Hour).Format(time.RFC3339),
		"thumbImage":   "https://example.com/other.jpg",
		"price":        500,
	})
	s.Equal(http.StatusBadRequest, w.Code)

	response := s.decode(w)
	s.Contains(response["message"], "already exists")
}

func (s *AdvertiseContentHandlerSuite) TestListCountsResults() {
	s.createContent("First Offer")
	s.createContent("Second Offer")

	w := s.request(http.MethodGet, "/api/advertise-contents", nil)
	s.Equal(http.StatusOK, w.Code)

	response := s.decode(w)
	s.Equal(float64(2), response["count"])
}

func (s *AdvertiseContentHandlerSuite) TestGetByIDAndSlug() {
	created := s.createContent("Flash Sale")
	id := created["id"].(string)

	w := s.request(http.MethodGet, "/api/advertise-contents/"+id, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/advertise-contents/slug/flash-sale", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestGetUnknownIDIs404() {
	w := s.request(http.MethodGet, "/api/advertise-contents/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestMalformedIDIs400() {
	w := s.request(http.MethodGet, "/api/advertise-contents/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestSearchWithoutQueryIs400() {
	w := s.request(http.MethodGet, "/api/advertise-contents/search", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestSearchMatches() {
	s.createContent("Mega Winter Deal")
	s.createContent("Summer Sale")

	w := s.request(http.MethodGet, "/api/advertise-contents/search?q=winter", nil)
	s.Equal(http.StatusOK, w.Code)

	response := s.decode(w)
	s.Equal(float64(1), response["count"])
}

func (s *AdvertiseContentHandlerSuite) TestDeleteThenGetIs404() {
	created := s.createContent("Doomed Offer")
	id := created["id"].(string)

	w := s.request(http.MethodDelete, "/api/advertise-contents/"+id, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/advertise-contents/%s", id), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AdvertiseContentHandlerSuite) TestUpdatePatchesTitleAndSlug() {
	created := s.createContent("Old Title")
	id := created["id"].(string)

	w := s.request(http.MethodPut, "/api/advertise-contents/"+id, map[string]interface{}{
		"title": "Brand New Title",
	})
	s.Equal(http.StatusOK, w.Code)

	data := s.decode(w)["data"].(map[string]interface{})
	s.Equal("brand-new-title", data["slug"])
	s.Equal("Brand New Title", data["title"])
}

func TestAdvertiseContentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdvertiseContentHandlerSuite))
}
