package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"painel_master/internal/adapter/http/handlers/mocks"
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
	"painel_master/pkg/format"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_MonthlySummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/resellers", h.MonthlySummary)

		uc.EXPECT().MonthlySummary(gomock.Any(), "2024-13").Return(usecase.MonthlySummary{}, usecase.ErrInvalidMonth)

		w := doRequest(r, http.MethodGet, "/v1/reports/resellers?month=2024-13", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/resellers", h.MonthlySummary)

		uc.EXPECT().Months(1).Return([]format.MonthOption{{Value: "2024-02", Label: "Fevereiro de 2024"}})
		uc.EXPECT().MonthlySummary(gomock.Any(), "2024-02").Return(usecase.MonthlySummary{
			Month:      "2024-02",
			Label:      "Fevereiro de 2024",
			Resellers:  []usecase.ResellerSummary{{AssociateID: "a-1", Name: "Loja", SalesCount: 2, TotalSold: 50}},
			TotalSold:  50,
			SalesCount: 2,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/reports/resellers", "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["label"] != "Fevereiro de 2024" || body["total_vendido"] != float64(50) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestReportHandler_Months(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/reports/months", h.Months)

	uc.EXPECT().Months(0).Return([]format.MonthOption{{Value: "2024-02"}, {Value: "2024-01"}})
	uc.EXPECT().Months(maxMonthOptions).Return(nil)

	w := doRequest(r, http.MethodGet, "/v1/reports/months", "")
	expectStatus(t, w, http.StatusOK)
	var opts []format.MonthOption
	_ = json.Unmarshal(w.Body.Bytes(), &opts)
	if len(opts) != 2 || opts[0].Value != "2024-02" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/v1/reports/months?n=500", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReportHandler_Commissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/commissions", h.Commissions)

	uc.EXPECT().Commissions(gomock.Any()).Return(usecase.CommissionReport{
		Items: []usecase.Commission{{ChargeID: "pix-1", ResellerName: "Loja", GrossAmount: 100, Commission: 1}},
		Total: 1,
		Count: 1,
	}, nil)

	w := doRequest(r, http.MethodGet, "/v1/commissions", "")
	expectStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["total"] != float64(1) || body["quantidade"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReportHandler_DashboardAndMyPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", withIdentity(testAdmin), h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any(), testAdmin).Return(usecase.Dashboard{ActiveAssociates: 2, ExpiredAssociates: 1, Commissions: 1.5}, nil)

		w := doRequest(r, http.MethodGet, "/v1/dashboard", "")
		expectStatus(t, w, http.StatusOK)
		if body := decodeBody(t, w); body["associados_ativos"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("my plan for deleted associate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/me/plan", withIdentity(testReseller), h.MyPlan)

		uc.EXPECT().MyPlan(gomock.Any(), testReseller).Return(usecase.MyPlan{}, usecase.ErrAssociateNotFound)

		w := doRequest(r, http.MethodGet, "/v1/me/plan", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("my plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/me/plan", withIdentity(testReseller), h.MyPlan)

		uc.EXPECT().MyPlan(gomock.Any(), testReseller).Return(usecase.MyPlan{
			Plan:     entities.Plan{ID: "p-1", Name: "Pro"},
			DaysLeft: 5,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/me/plan", "")
		expectStatus(t, w, http.StatusOK)
		if body := decodeBody(t, w); body["dias_restantes"] != float64(5) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
