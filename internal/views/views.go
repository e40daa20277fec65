package views

import (
	"context"

	"solidaire/internal/models"
)

// Session - состояние сессии, доступное каждой странице
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
	User() *models.User
}

// ErrRedirect - вместо рендера страница требует перехода на другой маршрут
type ErrRedirect struct {
	Target string
}

func (e ErrRedirect) Error() string {
	return "перенаправление на " + e.Target
}

// View - общая основа страницы: собственный контекст, отменяемый при
// закрытии, чтобы поздние ответы не пережили страницу
type View struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newView(parent context.Context) View {
	ctx, cancel := context.WithCancel(parent)
	return View{ctx: ctx, cancel: cancel}
}

func (v *View) Context() context.Context {
	return v.ctx
}

// Close отменяет все запросы, запущенные страницей
func (v *View) Close() {
	v.cancel()
}
