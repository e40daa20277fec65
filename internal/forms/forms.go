package forms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors - ошибки валидации по полям формы, показываются до любого
// похода в сеть
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, field+": "+message)
	}
	return strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

var (
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (v *Validator) Login(f LoginForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Email":
				errs["email"] = "Неверный формат email"
			case "Password":
				errs["password"] = "Введите пароль"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RegisterForm struct {
	FirstName       string `validate:"required,min=2"`
	LastName        string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AcceptTerms     bool   `validate:"eq=true"`
}

func (v *Validator) Register(f RegisterForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "FirstName":
				errs["firstName"] = "Имя должно содержать минимум 2 символа"
			case "LastName":
				errs["lastName"] = "Фамилия должна содержать минимум 2 символа"
			case "Email":
				errs["email"] = "Неверный формат email"
			case "Password":
				errs["password"] = "Пароль должен содержать минимум 8 символов"
			case "ConfirmPassword":
				errs["confirmPassword"] = "Пароли не совпадают"
			case "AcceptTerms":
				errs["acceptTerms"] = "Необходимо принять условия"
			}
		}
	}

	// требования к составу пароля проверяются отдельно от тегов
	if _, exists := errs["password"]; !exists {
		switch {
		case !upperPattern.MatchString(f.Password):
			errs["password"] = "Пароль должен содержать хотя бы одну заглавную букву"
		case !lowerPattern.MatchString(f.Password):
			errs["password"] = "Пароль должен содержать хотя бы одну строчную букву"
		case !digitPattern.MatchString(f.Password):
			errs["password"] = "Пароль должен содержать хотя бы одну цифру"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

func (v *Validator) ForgotPassword(f ForgotPasswordForm) FieldErrors {
	if err := v.validate.Struct(f); err != nil {
		return FieldErrors{"email": "Неверный формат email"}
	}
	return nil
}

type ResetPasswordForm struct {
	Token           string `validate:"required"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func (v *Validator) ResetPassword(f ResetPasswordForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Token":
				errs["token"] = "Отсутствует токен сброса"
			case "Password":
				errs["password"] = "Пароль должен содержать минимум 8 символов"
			case "ConfirmPassword":
				errs["confirmPassword"] = "Пароли не совпадают"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type MaterialDonationForm struct {
	DonorName      string `validate:"required,min=2"`
	DonorContact   string `validate:"required,min=5"`
	Title          string `validate:"required,min=3"`
	Description    string `validate:"required,min=10"`
	Category       string `validate:"required"`
	PickupLocation string `validate:"required,min=5"`
	AcceptTerms    bool   `validate:"eq=true"`
}

func (v *Validator) MaterialDonation(f MaterialDonationForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "DonorName":
				errs["donorName"] = "Имя должно содержать минимум 2 символа"
			case "DonorContact":
				errs["donorContact"] = "Укажите действительный контакт"
			case "Title":
				errs["title"] = "Название должно содержать минимум 3 символа"
			case "Description":
				errs["description"] = "Описание должно содержать минимум 10 символов"
			case "Category":
				errs["category"] = "Выберите категорию"
			case "PickupLocation":
				errs["pickupLocation"] = "Укажите место передачи"
			case "AcceptTerms":
				errs["acceptTerms"] = "Необходимо принять условия"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type PublishItemForm struct {
	Title       string `validate:"required,min=3"`
	Description string `validate:"required,min=10"`
	Category    string `validate:"required"`
}

func (v *Validator) PublishItem(f PublishItemForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Title":
				errs["title"] = "Название должно содержать минимум 3 символа"
			case "Description":
				errs["description"] = "Описание должно содержать минимум 10 символов"
			case "Category":
				errs["category"] = "Выберите категорию"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type DonationForm struct {
	CampaignID int    `validate:"required,gt=0"`
	Amount     string `validate:"required"`
	Message    string
}

func (v *Validator) Donation(f DonationForm) FieldErrors {
	errs := FieldErrors{}
	if err := v.validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "CampaignID":
				errs["campaignId"] = "Не выбрана кампания"
			case "Amount":
				errs["amount"] = "Укажите сумму"
			}
		}
	}

	if _, exists := errs["amount"]; !exists {
		amount, err := strconv.ParseFloat(f.Amount, 64)
		if err != nil || amount <= 0 {
			errs["amount"] = "Сумма должна быть положительным числом"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type OrderRequestForm struct {
	ItemID            int `validate:"required,gt=0"`
	MotivationMessage string
}

func (v *Validator) OrderRequest(f OrderRequestForm) FieldErrors {
	if err := v.validate.Struct(f); err != nil {
		return FieldErrors{"itemId": "Не выбран товар"}
	}
	return nil
}

// PasswordRequirement - пункт чек-листа требований к паролю на форме регистрации
type PasswordRequirement struct {
	Label string
	OK    bool
}

func PasswordChecklist(password string) []PasswordRequirement {
	return []PasswordRequirement{
		{Label: "Минимум 8 символов", OK: len(password) >= 8},
		{Label: "Одна заглавная буква", OK: upperPattern.MatchString(password)},
		{Label: "Одна строчная буква", OK: lowerPattern.MatchString(password)},
		{Label: "Одна цифра", OK: digitPattern.MatchString(password)},
	}
}
