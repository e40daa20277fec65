package views

import (
	"context"

	"solidaire/internal/models"
)

// DashboardView - личный кабинет, доступен только вошедшим пользователям
type DashboardView struct {
	View
	session Session
}

// NewDashboardView возвращает ErrRedirect на /login для анонимного посетителя
func NewDashboardView(parent context.Context, sess Session) (*DashboardView, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrRedirect{Target: "/login"}
	}

	return &DashboardView{
		View:    newView(parent),
		session: sess,
	}, nil
}

func (v *DashboardView) Profile() *models.User {
	return v.session.User()
}
