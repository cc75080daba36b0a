package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"irriga/pkg/savings/service"
)

type SavingsCtrl struct{ svc service.SavingsService }

func New(svc service.SavingsService) *SavingsCtrl { return &SavingsCtrl{svc} }

func (h *SavingsCtrl) Summary(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.Summarize(uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
