package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"irriga/entities"
	"irriga/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

type createReq struct {
	Name      string  `json:"name"`
	CropType  string  `json:"crop_type"`
	SoilType  string  `json:"soil_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AreaM2    float64 `json:"area_m2"`
}

type fieldResp struct {
	Field          *entities.Field            `json:"field"`
	Schedule       []entities.IrrigationEntry `json:"schedule,omitempty"`
	ScheduleStatus string                     `json:"schedule_status,omitempty"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Field{
		UserID:    uid,
		Name:      req.Name,
		CropType:  req.CropType,
		SoilType:  req.SoilType,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AreaM2:    req.AreaM2,
	}
	entries, err := h.svc.Create(f)
	if err != nil && f.FieldID == 0 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := fieldResp{Field: f, Schedule: entries, ScheduleStatus: "ok"}
	if err != nil {
		// Field saved but no schedule could be computed; not the same thing
		// as a schedule that needs no water.
		resp.ScheduleStatus = "failed"
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.Get(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	var patch service.FieldPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, entries, rebuilt, err := h.svc.Update(uint(id), uid, patch)
	if f == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	resp := fieldResp{Field: f}
	if rebuilt {
		resp.Schedule = entries
		resp.ScheduleStatus = "ok"
		if err != nil {
			resp.ScheduleStatus = "failed"
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FieldCtrl) Rebuild(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	entries, err := h.svc.Rebuild(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
