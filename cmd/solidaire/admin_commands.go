package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"solidaire/internal/forms"
	"solidaire/internal/views"
)

// newAdminCmd собирает поддерево команд модерации; каждая команда сама
// открывает AdminView, который проверяет роль и перенаправляет чужих
func newAdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Модерация: кампании, дары и заявки в статусе pending",
	}

	pendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "Все сущности, ожидающие решения",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminView(cmd.Context(), func(view *views.AdminView) error {
				campaigns, err := view.PendingCampaigns()
				if err != nil {
					return err
				}
				donations, err := view.PendingDonations()
				if err != nil {
					return err
				}
				orders, err := view.PendingOrders()
				if err != nil {
					return err
				}

				fmt.Print(renderPending(campaigns, donations, orders))
				return nil
			})
		},
	}

	publishCmd := &cobra.Command{
		Use:   "publish-donation <id>",
		Short: "Опубликовать дар как товар бутика",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			donationID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID дара: %s", args[0])
			}

			form := forms.PublishItemForm{}
			form.Title, _ = cmd.Flags().GetString("title")
			form.Description, _ = cmd.Flags().GetString("description")
			form.Category, _ = cmd.Flags().GetString("category")

			return withAdminView(cmd.Context(), func(view *views.AdminView) error {
				if err := view.PublishDonation(donationID, form); err != nil {
					return err
				}
				fmt.Printf("Дар №%d опубликован в бутике\n", donationID)
				return nil
			})
		},
	}
	publishCmd.Flags().String("title", "", "название товара")
	publishCmd.Flags().String("description", "", "описание товара")
	publishCmd.Flags().String("category", "", "категория товара")

	adminCmd.AddCommand(
		pendingCmd,
		publishCmd,
		statusCommand("approve-campaign", "Одобрить кампанию", (*views.AdminView).ApproveCampaign),
		statusCommand("reject-campaign", "Отклонить кампанию", (*views.AdminView).RejectCampaign),
		statusCommand("reject-donation", "Отклонить дар", (*views.AdminView).RejectDonation),
		statusCommand("approve-order", "Одобрить заявку на вещь", (*views.AdminView).ApproveOrder),
		statusCommand("reject-order", "Отклонить заявку на вещь", (*views.AdminView).RejectOrder),
	)

	return adminCmd
}

func statusCommand(name, short string, action func(*views.AdminView, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID: %s", args[0])
			}

			return withAdminView(cmd.Context(), func(view *views.AdminView) error {
				if err := action(view, id); err != nil {
					return err
				}
				fmt.Println("Готово")
				return nil
			})
		},
	}
}

func withAdminView(ctx context.Context, run func(*views.AdminView) error) error {
	view, err := views.NewAdminView(ctx, application.API, application.Session, application.Queries, application.Forms)
	if err != nil {
		return err
	}
	defer view.Close()

	return run(view)
}
