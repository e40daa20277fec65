package views

import (
	"context"

	"solidaire/internal/api"
	"solidaire/internal/forms"
	"solidaire/internal/session"
)

// AuthView - страницы регистрации и восстановления доступа; проверяет формы
// и передаёт данные сервису сессии
type AuthView struct {
	View
	session *session.Service
	forms   *forms.Validator
}

func NewAuthView(parent context.Context, sess *session.Service, validator *forms.Validator) *AuthView {
	return &AuthView{
		View:    newView(parent),
		session: sess,
		forms:   validator,
	}
}

func (v *AuthView) Login(form forms.LoginForm) (*api.LoginResponse, error) {
	if errs := v.forms.Login(form); errs != nil {
		return nil, errs
	}

	return v.session.Login(v.ctx, form.Email, form.Password)
}

func (v *AuthView) Register(form forms.RegisterForm) (*api.RegisterResponse, error) {
	if errs := v.forms.Register(form); errs != nil {
		return nil, errs
	}

	return v.session.Register(v.ctx, api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
}

func (v *AuthView) VerifyEmail(token string) (*api.MessageResponse, error) {
	return v.session.VerifyEmail(v.ctx, token)
}

func (v *AuthView) ForgotPassword(form forms.ForgotPasswordForm) (*api.MessageResponse, error) {
	if errs := v.forms.ForgotPassword(form); errs != nil {
		return nil, errs
	}

	return v.session.ForgotPassword(v.ctx, form.Email)
}

func (v *AuthView) ResetPassword(form forms.ResetPasswordForm) (*api.MessageResponse, error) {
	if errs := v.forms.ResetPassword(form); errs != nil {
		return nil, errs
	}

	return v.session.ResetPassword(v.ctx, form.Token, form.Password)
}
