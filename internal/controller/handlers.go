package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/controller/formatting"
	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

func (c *BotController) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "👋 Hi!\n\n" +
		"This bot reports tuition figures for the center.\n\n" +
		"Commands:\n" +
		"/students - Student list\n" +
		"/statement <student id> [YYYY-MM] - Tuition statement\n" +
		"/debtors [YYYY-MM] - Students still owing\n" +
		"/help - Command reference"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

func (c *BotController) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "📚 Command reference:\n\n" +
		"/students - All students with class and status\n" +
		"/statement s00001 - This month's statement for s00001\n" +
		"/statement s00001 2024-01 - Statement for January 2024\n" +
		"/debtors - Who still owes this month\n" +
		"/debtors 2024-01 - Who still owed in January 2024"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

func (c *BotController) handleStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	snap, err := c.billingService.LoadSnapshot(ctx)
	if err != nil {
		c.logger.Error("Failed to load snapshot", zap.Error(err))
		c.sendError(ctx, b, update.Message.Chat.ID)
		return
	}

	if len(snap.Students) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "No students enrolled yet.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Students (%d):\n\n", len(snap.Students)))
	now := time.Now()
	for _, s := range snap.Students {
		className := "deleted class"
		if class := snap.ClassByID(s.ClassID); class != nil {
			className = class.Name
		}
		display := formatting.GetStudentStatusDisplay(s.EffectiveStatus(now))
		sb.WriteString(fmt.Sprintf("%s %s - %s (%s)\n", display.Emoji, s.ID, s.Name, className))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   sb.String(),
	})
}

func (c *BotController) handleStatement(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	args := strings.Fields(update.Message.Text)
	if len(args) < 2 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Usage: /statement <student id> [YYYY-MM]",
		})
		return
	}

	studentID := args[1]
	year, month := targetMonth(args, 2)

	statement, err := c.billingService.StatementFor(ctx, studentID, year, month)
	if err != nil {
		c.logger.Error("Failed to compute statement",
			zap.String("student_id", studentID),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   fmt.Sprintf("❌ No statement for %s, check the student id.", studentID),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   renderStatement(statement),
	})
}

func (c *BotController) handleDebtors(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	args := strings.Fields(update.Message.Text)
	year, month := targetMonth(args, 1)

	debtors, err := c.billingService.Debtors(ctx, year, month)
	if err != nil {
		c.logger.Error("Failed to list debtors", zap.Error(err))
		c.sendError(ctx, b, update.Message.Chat.ID)
		return
	}

	monthKey := model.MonthOf(year, month)
	if len(debtors) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   fmt.Sprintf("✅ Nobody owes anything for %s.", monthKey),
		})
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔴 Owing for %s (%d):\n\n", monthKey, len(debtors)))
	for _, st := range debtors {
		sb.WriteString(fmt.Sprintf("%s - %s\n", st.StudentID, formatting.FormatAmount(st.Balance)))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   sb.String(),
	})
}

func (c *BotController) sendError(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "❌ Something went wrong. Try again later.",
	})
}

// targetMonth reads an optional "YYYY-MM" argument at position idx,
// defaulting to the current month.
func targetMonth(args []string, idx int) (int, time.Month) {
	now := time.Now()
	if len(args) > idx {
		if t, err := time.ParseInLocation("2006-01", args[idx], time.Local); err == nil {
			return t.Year(), t.Month()
		}
	}
	return now.Year(), now.Month()
}

func renderStatement(st *model.TuitionStatement) string {
	display := formatting.GetStatementStatusDisplay(st.Status)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧾 Statement %s - %s\n\n", st.StudentID, st.Month))
	sb.WriteString(fmt.Sprintf("Fee per session: %s\n", formatting.FormatAmount(st.FeePerSession)))
	sb.WriteString(fmt.Sprintf("Scheduled sessions: %d\n", st.ScheduledCount))
	sb.WriteString(fmt.Sprintf("Scheduled tuition: %s\n", formatting.FormatAmount(st.ScheduledTuition)))
	if st.ExtraCount > 0 {
		sb.WriteString(fmt.Sprintf("Extra sessions: %d (%s)\n", st.ExtraCount, formatting.FormatAmount(st.TotalExtraFee)))
	}
	if st.PromotionDiscount > 0 {
		sb.WriteString(fmt.Sprintf("Promotion: -%s (%s)\n", formatting.FormatRate(st.PromotionDiscount), st.PromotionDescription))
	}
	sb.WriteString(fmt.Sprintf("Tuition due: %s\n\n", formatting.FormatAmount(st.TuitionDue)))
	sb.WriteString(fmt.Sprintf("Total paid: %s\n", formatting.FormatAmount(st.TotalPaid)))
	sb.WriteString(fmt.Sprintf("Balance: %s\n", formatting.FormatAmount(st.Balance)))
	sb.WriteString(fmt.Sprintf("%s %s", display.Emoji, display.Text))

	return sb.String()
}
