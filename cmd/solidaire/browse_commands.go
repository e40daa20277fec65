package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"solidaire/internal/forms"
	"solidaire/internal/views"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Список кампаний с поиском, фильтром и сортировкой",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := views.CampaignFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Category, _ = cmd.Flags().GetString("category")
		filter.SortBy, _ = cmd.Flags().GetString("sort")

		view := views.NewCampaignsView(cmd.Context(), application.API, application.Queries, application.Forms)
		defer view.Close()

		campaigns, err := view.Campaigns(filter)
		if err != nil {
			return err
		}

		fmt.Print(renderCampaigns(campaigns))
		return nil
	},
}

var campaignCmd = &cobra.Command{
	Use:   "campaign <id>",
	Short: "Детали одной кампании",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		campaignID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный ID кампании: %s", args[0])
		}

		view := views.NewCampaignsView(cmd.Context(), application.API, application.Queries, application.Forms)
		defer view.Close()

		campaign, err := view.Campaign(campaignID)
		if err != nil {
			return err
		}

		fmt.Print(renderCampaignDetail(campaign))
		return nil
	},
}

var donateCmd = &cobra.Command{
	Use:   "donate",
	Short: "Инициировать денежный донат в кампанию",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.DonationForm{}
		form.CampaignID, _ = cmd.Flags().GetInt("campaign")
		form.Amount, _ = cmd.Flags().GetString("amount")
		form.Message, _ = cmd.Flags().GetString("message")

		view := views.NewCampaignsView(cmd.Context(), application.API, application.Queries, application.Forms)
		defer view.Close()

		if err := view.Donate(form); err != nil {
			return err
		}

		fmt.Println("Донат инициирован, подтверждение платежа придёт отдельно")
		return nil
	},
}

var boutiqueCmd = &cobra.Command{
	Use:   "boutique",
	Short: "Витрина бутика: доступные подаренные вещи",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := views.BoutiqueFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Category, _ = cmd.Flags().GetString("category")

		view := views.NewBoutiqueView(cmd.Context(), application.API, application.Session, application.Queries, application.Forms)
		defer view.Close()

		items, err := view.Items(filter)
		if err != nil {
			return err
		}

		fmt.Print(renderItems(items))
		if !application.Session.IsAuthenticated() {
			fmt.Println("Войдите в аккаунт, чтобы запрашивать вещи")
		}
		return nil
	},
}

var requestItemCmd = &cobra.Command{
	Use:   "request-item",
	Short: "Запросить вещь из бутика",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.OrderRequestForm{}
		form.ItemID, _ = cmd.Flags().GetInt("item")
		form.MotivationMessage, _ = cmd.Flags().GetString("message")

		view := views.NewBoutiqueView(cmd.Context(), application.API, application.Session, application.Queries, application.Forms)
		defer view.Close()

		order, err := view.RequestItem(form)
		if err != nil {
			return err
		}

		fmt.Printf("Заявка №%d отправлена администраторам на рассмотрение\n", order.ID)
		return nil
	},
}

var donateMaterialCmd = &cobra.Command{
	Use:   "donate-material",
	Short: "Предложить вещь в дар",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.MaterialDonationForm{}
		form.DonorName, _ = cmd.Flags().GetString("name")
		form.DonorContact, _ = cmd.Flags().GetString("contact")
		form.Title, _ = cmd.Flags().GetString("title")
		form.Description, _ = cmd.Flags().GetString("description")
		form.Category, _ = cmd.Flags().GetString("category")
		form.PickupLocation, _ = cmd.Flags().GetString("location")
		form.AcceptTerms, _ = cmd.Flags().GetBool("accept-terms")

		view := views.NewMaterialDonationView(cmd.Context(), application.API, application.Forms)
		defer view.Close()

		donation, err := view.Submit(form)
		if err != nil {
			return err
		}

		fmt.Printf("Дар №%d принят и ожидает проверки администраторами\n", donation.ID)
		return nil
	},
}

func init() {
	campaignsCmd.Flags().String("search", "", "подстрока в названии или описании")
	campaignsCmd.Flags().String("category", "", "категория кампании")
	campaignsCmd.Flags().String("sort", views.SortRecent, "сортировка: recent | progress | amount")

	donateCmd.Flags().Int("campaign", 0, "ID кампании")
	donateCmd.Flags().String("amount", "", "сумма доната")
	donateCmd.Flags().String("message", "", "сообщение получателю")

	boutiqueCmd.Flags().String("search", "", "подстрока в названии или описании")
	boutiqueCmd.Flags().String("category", "", "категория товара")

	requestItemCmd.Flags().Int("item", 0, "ID товара")
	requestItemCmd.Flags().String("message", "", "мотивационное сообщение (необязательно)")

	donateMaterialCmd.Flags().String("name", "", "имя дарителя")
	donateMaterialCmd.Flags().String("contact", "", "контакт дарителя")
	donateMaterialCmd.Flags().String("title", "", "название вещи")
	donateMaterialCmd.Flags().String("description", "", "описание вещи")
	donateMaterialCmd.Flags().String("category", "", "категория")
	donateMaterialCmd.Flags().String("location", "", "место передачи")
	donateMaterialCmd.Flags().Bool("accept-terms", false, "принять условия передачи")
}
