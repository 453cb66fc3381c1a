package handlers

import (
	"errors"
	"net/http"
	"time"

	"dukaprint/internal/usecase"
	"dukaprint/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the back-office dashboard and period reports.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) SalesReport(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	report, err := h.usecase.Sales(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ProfitLossReport(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	report, err := h.usecase.ProfitLoss(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, fromOK := parseDateQuery(c.Query("date_from"))
	to, toOK := parseDateQuery(c.Query("date_to"))
	if !fromOK || !toOK {
		appErr := mapReportError(usecase.ErrInvalidDateRange)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
