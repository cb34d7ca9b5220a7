package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/chat"
	"github.com/sharmila1320/Kawaiifolio/internal/contact"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
	contactTo      string
	contactPhone   string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Print the pre-filled email and WhatsApp links for a message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := contact.Message{Name: contactName, Email: contactEmail, Body: contactMessage}
		if err := msg.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoLink(contactTo, msg))
		fmt.Fprintln(cmd.OutOrStdout(), contact.WhatsAppLink(contactPhone, msg))
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the portfolio assistant (one message per line)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var gen chat.Generator
		g, err := chat.NewGeminiGenerator(ctx, cfg.Chat.APIKey, cfg.Chat.Model, *cfg.Chat.Temperature)
		switch {
		case errors.Is(err, chat.ErrNoAPIKey):
			logger.Warn("no API key configured; set GEMINI_API_KEY or API_KEY")
		case err != nil:
			return err
		default:
			gen = g
		}

		conv := chat.NewConversation(gen, logger)
		for _, m := range conv.Messages() {
			fmt.Fprintf(cmd.OutOrStdout(), "assistant> %s\n", m.Text)
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(cmd.OutOrStdout(), "you> ")
			if !scanner.Scan() {
				fmt.Fprintln(cmd.OutOrStdout())
				break
			}
			reply, ok := conv.Send(ctx, scanner.Text())
			if !ok {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "assistant> %s\n", reply.Text)
			if ctx.Err() != nil {
				break
			}
		}
		logger.Debug("chat closed", zap.Int("messages", len(conv.Messages())))
		return scanner.Err()
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactName, "name", "", "Your name")
	f.StringVar(&contactEmail, "email", "", "Your email")
	f.StringVarP(&contactMessage, "message", "m", "", "Message body")
	f.StringVar(&contactTo, "to", contact.DefaultEmail, "Recipient mailbox")
	f.StringVar(&contactPhone, "phone", contact.DefaultPhone, "Recipient WhatsApp number")
}
