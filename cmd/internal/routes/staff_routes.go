package routes

import (
	"catering/cmd/internal/service"
	"catering/cmd/internal/utils/apierror"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type StaffService interface {
	GetStaff(ctx context.Context) ([]*service.StaffResponse, apierror.ErrorResponse)
}

type DefaultStaffRoute struct {
	StaffService StaffService
}

func NewStaffDefault(staffService StaffService) *DefaultStaffRoute {
	return &DefaultStaffRoute{StaffService: staffService}
}

func (s *DefaultStaffRoute) GetStaff(c echo.Context) error {
	staff, apierr := s.StaffService.GetStaff(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "staff": staff}
	return c.JSON(http.StatusOK, &resp)
}
