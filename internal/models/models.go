package models

import (
	"strconv"
	"time"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Статусы модерируемых сущностей
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusAvailable = "available"
)

type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

type Campaign struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	GoalAmount    string    `json:"goalAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Progress возвращает долю собранной суммы (current/goal)
func (c Campaign) Progress() float64 {
	goal := ParseAmount(c.GoalAmount)
	if goal == 0 {
		return 0
	}
	return ParseAmount(c.CurrentAmount) / goal
}

type MaterialDonation struct {
	ID             int       `json:"id"`
	DonorName      string    `json:"donorName"`
	DonorContact   string    `json:"donorContact"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	PickupLocation string    `json:"pickupLocation"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BoutiqueItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

type BoutiqueOrder struct {
	ID                int       `json:"id"`
	ItemID            int       `json:"itemId"`
	UserID            int       `json:"userId"`
	MotivationMessage string    `json:"motivationMessage,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ParseAmount разбирает денежную сумму, приходящую строкой ("1500.00")
func ParseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}
