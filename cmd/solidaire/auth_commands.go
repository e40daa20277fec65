package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"solidaire/internal/forms"
	"solidaire/internal/views"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Вход по email и паролю",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		view := views.NewAuthView(cmd.Context(), application.Session, application.Forms)
		defer view.Close()

		response, err := view.Login(forms.LoginForm{Email: email, Password: password})
		if err != nil {
			return err
		}

		fmt.Printf("Вход выполнен: %s %s <%s>\n",
			response.User.FirstName, response.User.LastName, response.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выход и очистка сохранённой сессии",
	Run: func(cmd *cobra.Command, args []string) {
		application.Session.Logout()
		fmt.Println("Сессия завершена")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Текущий пользователь",
	Run: func(cmd *cobra.Command, args []string) {
		user := application.Session.User()
		if user == nil {
			fmt.Println("Вход не выполнен")
			return
		}
		fmt.Printf("%s %s <%s>, роль: %s, подтверждён: %v\n",
			user.FirstName, user.LastName, user.Email, user.Role, user.IsVerified)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Регистрация нового аккаунта",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.RegisterForm{}
		form.FirstName, _ = cmd.Flags().GetString("first-name")
		form.LastName, _ = cmd.Flags().GetString("last-name")
		form.Email, _ = cmd.Flags().GetString("email")
		form.Password, _ = cmd.Flags().GetString("password")
		form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")
		form.AcceptTerms, _ = cmd.Flags().GetBool("accept-terms")

		view := views.NewAuthView(cmd.Context(), application.Session, application.Forms)
		defer view.Close()

		response, err := view.Register(form)
		if err != nil {
			return err
		}

		// сессия не открывается: сначала подтверждение email
		fmt.Println(response.Message)
		return nil
	},
}

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email <token>",
	Short: "Подтверждение email по токену из письма",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := views.NewAuthView(cmd.Context(), application.Session, application.Forms)
		defer view.Close()

		response, err := view.VerifyEmail(args[0])
		if err != nil {
			return err
		}

		fmt.Println(response.Message)
		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Запрос письма для сброса пароля",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := views.NewAuthView(cmd.Context(), application.Session, application.Forms)
		defer view.Close()

		response, err := view.ForgotPassword(forms.ForgotPasswordForm{Email: args[0]})
		if err != nil {
			return err
		}

		fmt.Println(response.Message)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Установка нового пароля по токену сброса",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.ResetPasswordForm{}
		form.Token, _ = cmd.Flags().GetString("token")
		form.Password, _ = cmd.Flags().GetString("password")
		form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")

		view := views.NewAuthView(cmd.Context(), application.Session, application.Forms)
		defer view.Close()

		response, err := view.ResetPassword(form)
		if err != nil {
			return err
		}

		fmt.Println(response.Message)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "email аккаунта")
	loginCmd.Flags().String("password", "", "пароль")

	registerCmd.Flags().String("first-name", "", "имя")
	registerCmd.Flags().String("last-name", "", "фамилия")
	registerCmd.Flags().String("email", "", "email")
	registerCmd.Flags().String("password", "", "пароль")
	registerCmd.Flags().String("confirm-password", "", "повтор пароля")
	registerCmd.Flags().Bool("accept-terms", false, "принять условия использования")

	resetPasswordCmd.Flags().String("token", "", "токен сброса из письма")
	resetPasswordCmd.Flags().String("password", "", "новый пароль")
	resetPasswordCmd.Flags().String("confirm-password", "", "повтор нового пароля")
}
