package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/views"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

func renderStatus(status string) string {
	switch status {
	case models.StatusApproved, models.StatusAvailable:
		return approvedStyle.Render(status)
	case models.StatusRejected:
		return rejectedStyle.Render(status)
	default:
		return pendingStyle.Render(status)
	}
}

func renderCampaigns(campaigns []models.Campaign) string {
	if len(campaigns) == 0 {
		return dimStyle.Render("Кампании не найдены") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Кампаний: %d", len(campaigns))))
	b.WriteByte('\n')
	for _, c := range campaigns {
		b.WriteString(fmt.Sprintf("#%-4d %-40s %-12s %6.0f%%  %s / %s  %s\n",
			c.ID,
			truncate(c.Title, 40),
			c.Category,
			c.Progress()*100,
			c.CurrentAmount,
			c.GoalAmount,
			renderStatus(c.Status)))
	}
	return b.String()
}

func renderItems(items []models.BoutiqueItem) string {
	if len(items) == 0 {
		return dimStyle.Render("Товары не найдены") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Доступно товаров: %d", len(items))))
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(fmt.Sprintf("#%-4d %-40s %-15s %s\n",
			item.ID,
			truncate(item.Title, 40),
			item.Category,
			renderStatus(item.Status)))
	}
	return b.String()
}

func renderCampaignDetail(c *models.Campaign) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("#%d %s", c.ID, c.Title)))
	b.WriteByte('\n')
	b.WriteString(c.Description)
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Категория: %s\nСобрано: %s из %s (%.0f%%)\nСтатус: %s\n",
		c.Category,
		c.CurrentAmount,
		c.GoalAmount,
		c.Progress()*100,
		renderStatus(c.Status)))
	return b.String()
}

func renderPending(campaigns []models.Campaign, donations []models.MaterialDonation, orders []models.BoutiqueOrder) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Кампании на проверке: %d", len(campaigns))))
	b.WriteByte('\n')
	for _, c := range campaigns {
		b.WriteString(fmt.Sprintf("#%-4d %-40s цель %s\n", c.ID, truncate(c.Title, 40), c.GoalAmount))
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Дары на проверке: %d", len(donations))))
	b.WriteByte('\n')
	for _, d := range donations {
		b.WriteString(fmt.Sprintf("#%-4d %-40s от %s (%s)\n", d.ID, truncate(d.Title, 40), d.DonorName, d.PickupLocation))
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Заявки на вещи: %d", len(orders))))
	b.WriteByte('\n')
	for _, o := range orders {
		b.WriteString(fmt.Sprintf("#%-4d товар #%-4d %s\n", o.ID, o.ItemID, truncate(o.MotivationMessage, 50)))
	}

	return b.String()
}

// renderError превращает ошибки слоёв в сообщение для пользователя
func renderError(err error) string {
	var fieldErrs forms.FieldErrors
	if errors.As(err, &fieldErrs) {
		var b strings.Builder
		b.WriteString(errorStyle.Render("Форма заполнена неверно:"))
		for field, message := range fieldErrs {
			b.WriteString(fmt.Sprintf("\n  %s: %s", field, message))
		}
		return b.String()
	}

	var redirect views.ErrRedirect
	if errors.As(err, &redirect) {
		return dimStyle.Render("Нет доступа, " + redirect.Error())
	}

	return errorStyle.Render("Ошибка: " + err.Error())
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
