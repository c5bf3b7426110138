package service

import (
	"catering/cmd/internal/auth"
	"catering/cmd/internal/utils/apierror"
	"errors"

	"github.com/labstack/gommon/log"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type DefaultAdminService struct {
	Auth auth.Authenticator
}

func NewAdminService(authenticator auth.Authenticator) *DefaultAdminService {
	return &DefaultAdminService{Auth: authenticator}
}

func (a *DefaultAdminService) Login(req *AdminLoginRequest) (*AdminLoginResponse, apierror.ErrorResponse) {
	token, err := a.Auth.Authenticate(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Warnf("rejected admin login for %q", req.Username)
		return nil, apierror.InvalidCredentialsError
	}
	if err != nil {
		log.Errorf("failed to issue admin token: %v", err)
		return nil, apierror.InternalServerError
	}
	return &AdminLoginResponse{Token: token}, nil
}
