// Package controller is the Telegram reporting surface: read-only
// commands that render the billing engine's output for the center's
// staff. All record editing goes through the desktop app; the bot only
// consumes plain statement records.
package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/service"
)

type BotController struct {
	bot            *bot.Bot
	billingService *service.BillingService
	logger         *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	billingService *service.BillingService,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:            botInstance,
		billingService: billingService,
		logger:         logger,
	}
}

// RegisterHandlers registers all command handlers.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/students", bot.MatchTypeExact, c.handleStudents)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/statement", bot.MatchTypePrefix, c.handleStatement)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/debtors", bot.MatchTypePrefix, c.handleDebtors)

	return c.setCommands(ctx)
}

// setCommands fills the bot command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "students", Description: "👥 Student list"},
		{Command: "statement", Description: "🧾 Tuition statement for a student"},
		{Command: "debtors", Description: "🔴 Students still owing"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the bot until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
