package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"irriga/pkg/notify/repository"
)

type NotifyCtrl struct{ repo repository.NotifyRepository }

func New(repo repository.NotifyRepository) *NotifyCtrl { return &NotifyCtrl{repo} }

func (h *NotifyCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.ListByUser(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
