package handler

import (
	"net/http"
	"testing"

	financeapp "github.com/autenticco/backend/internal/application/finance"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFinanceRouter(fin *MockFinanceService, sales *MockSaleService) *gin.Engine {
	h := NewFinanceHandler(fin, nil, nil, sales)
	r := newTestRouter()
	r.GET("/cars/:id/finance", h.GetCarFinance)
	r.POST("/cars/:id/finance/preview", h.PreviewProfit)
	r.PUT("/cars/:id/finance", h.SaveFinance)
	r.GET("/sales", h.ListSales)
	r.POST("/sales", h.RegisterSale)
	return r
}

func TestFinanceHandler_GetCarFinance_SurfacesWarnings(t *testing.T) {
	fin := new(MockFinanceService)
	carID := uuid.New()
	fin.On("GetCarFinance", mock.Anything, carID).Return(&financeapp.CarFinanceResponse{
		CarID:         carID,
		PreviewProfit: decimal.NewFromInt(4200),
		Warnings:      []string{"expenses"},
	}, nil)

	w := doJSON(setupFinanceRouter(fin, nil), http.MethodGet, "/cars/"+carID.String()+"/finance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got financeapp.CarFinanceResponse
	resp := decodeResponse(t, w, &got)
	assert.True(t, got.PreviewProfit.Equal(decimal.NewFromInt(4200)))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, []string{"expenses"}, resp.Meta.Warnings)
}

func TestFinanceHandler_PreviewProfit(t *testing.T) {
	fin := new(MockFinanceService)
	carID := uuid.New()
	fin.On("PreviewProfit", mock.Anything, carID, mock.MatchedBy(func(req financeapp.PreviewProfitRequest) bool {
		return req.Commission != nil && req.Commission.Equal(decimal.NewFromInt(1500))
	})).Return(&financeapp.ProfitPreviewResponse{CarID: carID, Profit: decimal.NewFromInt(2700)}, nil)

	w := doJSON(setupFinanceRouter(fin, nil), http.MethodPost, "/cars/"+carID.String()+"/finance/preview", `{"commission":"1.500,00"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeResponse(t, w, nil)
	assert.Nil(t, resp.Meta, "no warnings, no meta")
	fin.AssertExpectations(t)
}

func TestFinanceHandler_SaveFinance_CarNotFound(t *testing.T) {
	fin := new(MockFinanceService)
	carID := uuid.New()
	fin.On("SaveFinance", mock.Anything, carID, mock.Anything).Return(nil, shared.ErrNotFound)

	w := doJSON(setupFinanceRouter(fin, nil), http.MethodPut, "/cars/"+carID.String()+"/finance", `{"fipe_value":90000}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinanceHandler_ListSales(t *testing.T) {
	sales := new(MockSaleService)
	platformID := uuid.New()
	item := financeapp.SaleResponse{ID: uuid.New(), SalePrice: decimal.NewFromInt(75000)}
	page := shared.NewPaginated([]financeapp.SaleResponse{item}, 41, 1, 20)

	sales.On("List", mock.Anything, financeapp.SaleListFilter{
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-31",
		PlatformID: &platformID,
	}).Return(&page, nil)

	r := setupFinanceRouter(nil, sales)

	w := doJSON(r, http.MethodGet, "/sales?start_date=2024-05-01&end_date=2024-05-31&platform_id="+platformID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got []financeapp.SaleResponse
	resp := decodeResponse(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, item.ID, got[0].ID)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	w = doJSON(r, http.MethodGet, "/sales?car_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	sales.AssertNumberOfCalls(t, "List", 1)
}

func TestFinanceHandler_ListSales_InvalidRange(t *testing.T) {
	sales := new(MockSaleService)
	sales.On("List", mock.Anything, mock.Anything).
		Return(nil, shared.NewDomainError("INVALID_DATE_RANGE", "start_date must not be after end_date"))

	w := doJSON(setupFinanceRouter(nil, sales), http.MethodGet, "/sales?start_date=2024-06-01&end_date=2024-05-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", decodeResponse(t, w, nil).Error.Code)
}

func TestFinanceHandler_RegisterSale(t *testing.T) {
	sales := new(MockSaleService)
	carID := uuid.New()
	sales.On("RegisterSale", mock.Anything, mock.MatchedBy(func(req financeapp.RegisterSaleRequest) bool {
		return req.CarID == carID && req.SalePrice.Equal(decimal.NewFromInt(82000)) && req.PaymentMethod == "financing"
	})).Return(&financeapp.SaleResponse{ID: uuid.New(), CarID: carID}, nil)

	r := setupFinanceRouter(nil, sales)

	w := doJSON(r, http.MethodPost, "/sales", map[string]any{
		"car_id":         carID,
		"sale_price":     82000,
		"payment_method": "financing",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/sales", `{"car_id":"`+carID.String()+`","payment_method":"barter"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	sales.AssertNumberOfCalls(t, "RegisterSale", 1)
}
