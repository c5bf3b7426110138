package routes

import (
	"catering/cmd/internal/service"
	"catering/cmd/internal/utils/apierror"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AdminService interface {
	Login(req *service.AdminLoginRequest) (*service.AdminLoginResponse, apierror.ErrorResponse)
}

type DefaultAdminRoute struct {
	AdminService AdminService
}

func NewAdminDefault(adminService AdminService) *DefaultAdminRoute {
	return &DefaultAdminRoute{AdminService: adminService}
}

func (a *DefaultAdminRoute) Login(c echo.Context) error {
	// A body that does not bind can only be a failed login.
	var req service.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(apierror.InvalidCredentialsError.Code(), apierror.InvalidCredentialsError)
	}

	resp, apierr := a.AdminService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": resp.Token})
}

// Contact acknowledges a contact form message of any shape. Nothing is
// stored and the reply is always a success.
func Contact(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Warnf("failed to read contact message: %v", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Infof("contact message (raw): %q", body)
	} else {
		log.Infof("contact message: %v", payload)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Message received!"})
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "status": "ok"})
}
