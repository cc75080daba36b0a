package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"irriga/entities"
	"irriga/pkg/schedule/service"
)

type SchedCtrl struct{ svc service.ScheduleService }

func New(svc service.ScheduleService) *SchedCtrl { return &SchedCtrl{svc} }

func (h *SchedCtrl) List(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.List(uint(fid), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Patch(c echo.Context) error {
	eid, _ := strconv.Atoi(c.Param("entry_id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status != entities.IrrigationCompleted {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be completed"})
	}
	entry, err := h.svc.Complete(uint(eid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "entry not found"})
	}
	return c.JSON(http.StatusOK, entry)
}
