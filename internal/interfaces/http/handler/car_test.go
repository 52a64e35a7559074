package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	catalogapp "github.com/autenticco/backend/internal/application/catalog"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCarRouter(svc *MockCarService) *gin.Engine {
	h := NewCarHandler(svc)
	r := newTestRouter()
	r.GET("/cars", h.List)
	r.GET("/cars/:id", h.Get)
	r.POST("/cars", h.Create)
	r.POST("/cars/:id/sold", h.MarkSold)
	r.PATCH("/cars/:id/availability", h.SetAvailability)
	r.POST("/cars/:id/images", h.UploadImage)
	r.GET("/public/cars", h.ListPublic)
	r.GET("/public/cars/:slug", h.GetPublic)
	return r
}

func TestCarHandler_List(t *testing.T) {
	svc := new(MockCarService)
	cars := []catalogapp.CarResponse{
		{PublicCarResponse: catalogapp.PublicCarResponse{ID: uuid.New(), Title: "Honda Civic EXL"}},
	}
	svc.On("List", mock.Anything, catalogapp.CarListFilter{Status: "in_stock", Page: 2}).
		Return(cars, int64(21), nil)

	w := doJSON(setupCarRouter(svc), http.MethodGet, "/cars?status=in_stock&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got []catalogapp.CarResponse
	resp := decodeResponse(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Honda Civic EXL", got[0].Title)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(21), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	svc.AssertExpectations(t)
}

func TestCarHandler_List_RejectsUnknownStatus(t *testing.T) {
	svc := new(MockCarService)
	w := doJSON(setupCarRouter(svc), http.MethodGet, "/cars?status=stolen", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w, nil).Error.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCarHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		w := doJSON(setupCarRouter(new(MockCarService)), http.MethodGet, "/cars/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockCarService)
		id := uuid.New()
		svc.On("GetByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := doJSON(setupCarRouter(svc), http.MethodGet, "/cars/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w, nil).Error.Code)
	})
}

func TestCarHandler_Create(t *testing.T) {
	svc := new(MockCarService)
	id := uuid.New()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req catalogapp.CarRequest) bool {
		return req.Brand == "Toyota" && req.Year == 2021 && req.Price.String() == "98500"
	})).Return(&catalogapp.CarResponse{PublicCarResponse: catalogapp.PublicCarResponse{ID: id}}, nil)

	w := doJSON(setupCarRouter(svc), http.MethodPost, "/cars",
		`{"brand":"Toyota","model":"Corolla","year":2021,"price":"R$ 98.500,00"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got catalogapp.CarResponse
	decodeResponse(t, w, &got)
	assert.Equal(t, id, got.ID)
	svc.AssertExpectations(t)
}

func TestCarHandler_MarkSold(t *testing.T) {
	svc := new(MockCarService)
	id := uuid.New()
	svc.On("MarkSold", mock.Anything, id, catalogapp.MarkSoldRequest{}).
		Return(nil, shared.NewDomainError("CAR_ALREADY_SOLD", "Car is already sold"))

	// no body means "sold now"
	w := doJSON(setupCarRouter(svc), http.MethodPost, "/cars/"+id.String()+"/sold", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CAR_ALREADY_SOLD", decodeResponse(t, w, nil).Error.Code)
}

func TestCarHandler_SetAvailability(t *testing.T) {
	svc := new(MockCarService)
	id := uuid.New()
	svc.On("SetAvailability", mock.Anything, id, false).
		Return(&catalogapp.CarResponse{IsAvailable: false}, nil)

	r := setupCarRouter(svc)

	w := doJSON(r, http.MethodPatch, "/cars/"+id.String()+"/availability", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "available is required")

	w = doJSON(r, http.MethodPatch, "/cars/"+id.String()+"/availability", `{"available":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCarHandler_UploadImage(t *testing.T) {
	svc := new(MockCarService)
	id := uuid.New()
	svc.On("UploadImage", mock.Anything, id, mock.MatchedBy(func(u catalogapp.ImageUpload) bool {
		return u.FileName == "front.png" && u.ContentType == "image/png" && u.Size == 4
	})).Return(&catalogapp.CarResponse{PublicCarResponse: catalogapp.PublicCarResponse{Images: []string{"https://cdn/cars/front.png"}}}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="front.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, _ = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/cars/"+id.String()+"/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	setupCarRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCarHandler_UploadImage_MissingFile(t *testing.T) {
	svc := new(MockCarService)
	req := httptest.NewRequest(http.MethodPost, "/cars/"+uuid.NewString()+"/images", nil)
	w := httptest.NewRecorder()
	setupCarRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarHandler_Public(t *testing.T) {
	svc := new(MockCarService)
	svc.On("ListPublic", mock.Anything, catalogapp.PublicCarQuery{Brand: "Jeep", Sort: "price_asc"}).
		Return(&catalogapp.PublicCarListResponse{Cars: []catalogapp.PublicCarResponse{{Slug: "jeep-compass-2022"}}, Brands: []string{"Jeep"}, Total: 1}, nil)
	svc.On("GetPublicBySlug", mock.Anything, "jeep-compass-2022").
		Return(&catalogapp.PublicCarResponse{Slug: "jeep-compass-2022"}, nil)

	r := setupCarRouter(svc)

	w := doJSON(r, http.MethodGet, "/public/cars?brand=Jeep&sort=price_asc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list catalogapp.PublicCarListResponse
	decodeResponse(t, w, &list)
	assert.Equal(t, 1, list.Total)

	w = doJSON(r, http.MethodGet, "/public/cars/jeep-compass-2022", nil)
	require.Equal(t, http.StatusOK, w.Code)
	// storefront payload carries no finance fields
	assert.NotContains(t, w.Body.String(), "commission")
	svc.AssertExpectations(t)
}
