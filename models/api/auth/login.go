package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Login == "" {
		return errors.New("не указан логин")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"token"`
}
