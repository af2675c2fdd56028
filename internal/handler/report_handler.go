package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/palletops/opsdash/internal/logger"
	"github.com/palletops/opsdash/internal/service"
	"github.com/palletops/opsdash/internal/service/serviceutils"
)

// ReportHandler is the delivery collaborator's HTTP surface: it hands the
// finished binary to the browser as an attachment and owns nothing of the
// report synthesis itself.
type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) AcoReportHandler(c echo.Context) error {
	orderRef := c.Param("orderRef")
	if orderRef == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Missing order reference", nil)
	}

	ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{
		"request_id": uuid.NewString(),
		"report":     "aco",
		"order_ref":  orderRef,
	})

	file, err := h.svc.BuildAcoReport(ctx, orderRef)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate ACO report", err)
	}
	return writeAttachment(c, file.Filename, file.MIME, file.Data)
}

func (h *ReportHandler) GrnReportHandler(c echo.Context) error {
	grnRef := c.Param("grnRef")
	if grnRef == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Missing GRN reference", nil)
	}
	userID := c.QueryParam("user")

	ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{
		"request_id": uuid.NewString(),
		"report":     "grn",
		"grn_ref":    grnRef,
	})

	file, err := h.svc.BuildGrnReport(ctx, grnRef, userID)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate GRN report", err)
	}
	return writeAttachment(c, file.Filename, file.MIME, file.Data)
}

func (h *ReportHandler) TransactionReportHandler(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" || end == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Both start and end dates are required", nil)
	}

	ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{
		"request_id": uuid.NewString(),
		"report":     "transaction",
		"range":      start + ".." + end,
	})

	file, err := h.svc.BuildTransactionReport(ctx, start, end)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate transaction report", err)
	}
	return writeAttachment(c, file.Filename, file.MIME, file.Data)
}

func writeAttachment(c echo.Context, filename, mime string, data []byte) error {
	c.Response().Header().Set("Content-Type", mime)
	// strconv.Quote escapes any quote a reference value could smuggle
	// into the header.
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, err := c.Response().Write(data)
	return err
}
