package auth

import (
	"doc-analyzer-backend/config"
	authutils "doc-analyzer-backend/lib/utils/auth-utils"
	authapimodels "doc-analyzer-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{}
}

type impl struct{}

// Login вход администратора по учетным данным из конфигурации
func (i impl) Login(data authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, err error) {
	if err = data.Validate(); err != nil {
		return nil, err
	}
	cfg := config.Conf.Auth
	if cfg.AdminPassword == "" {
		return nil, errors.New("вход не настроен")
	}
	if data.Login != cfg.AdminLogin || data.Password != cfg.AdminPassword {
		return nil, errors.New("неверный логин или пароль")
	}
	token, err := authutils.GetToken(data.Login)
	if err != nil {
		log.WithError(err).Error("ошибка генерации токена")
		return nil, errors.New("ошибка генерации токена")
	}
	return &authapimodels.JWTResponse{Token: token}, nil
}
