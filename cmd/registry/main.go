// Command registry is the operator CLI for record lifecycle: enroll
// and withdraw students, manage classes, holidays, promotions and
// payments. The access check (who may delete) happens before anyone
// gets shell access to run this tool.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thanhdat-89/qlhv-sub000/internal/app"
	"github.com/thanhdat-89/qlhv-sub000/internal/config"
	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository"
	"github.com/thanhdat-89/qlhv-sub000/internal/service"
)

const usage = `usage: registry <command> [args]

commands:
  add-class <name> <fee> <bucket:days,...>   e.g. add-class "Math A" 200000 morning:mon,wed,fri
  delete-class <class id>
  enroll <name> <class id> <enroll date>
  withdraw <student id> <leave date>
  delete-student <student id>
  add-extra <student id> <date> [fee]
  add-holiday <from> <to> <description> [class id]
  add-promotion <class id> <YYYY-MM> <rate> <description>
  pay <student id> <amount> <date> [method]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	registry := service.NewRegistryService(
		repository.NewClassRepository(pool),
		repository.NewStudentRepository(pool),
		repository.NewExtraSessionRepository(pool),
		repository.NewHolidayRepository(pool),
		repository.NewPromotionRepository(pool),
		repository.NewPaymentRepository(pool),
		repository.NewSequenceRepository(pool),
		logger,
	)

	if err := run(ctx, registry, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, registry *service.RegistryService, command string, args []string) error {
	switch command {
	case "add-class":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-class <name> <fee> <bucket:days,...>")
		}
		fee, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad fee %q", args[1])
		}
		pattern, err := parsePattern(args[2:])
		if err != nil {
			return err
		}
		class, err := registry.CreateClass(ctx, args[0], fee, pattern)
		if err != nil {
			return err
		}
		fmt.Println(class.ID)
		return nil

	case "delete-class":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete-class <class id>")
		}
		return registry.DeleteClass(ctx, args[0])

	case "enroll":
		if len(args) != 3 {
			return fmt.Errorf("usage: enroll <name> <class id> <enroll date>")
		}
		student, err := registry.EnrollStudent(ctx, &model.Student{
			Name:       args[0],
			ClassID:    args[1],
			EnrollDate: model.ParseDate(args[2]),
		})
		if err != nil {
			return err
		}
		fmt.Println(student.ID)
		return nil

	case "withdraw":
		if len(args) != 2 {
			return fmt.Errorf("usage: withdraw <student id> <leave date>")
		}
		return registry.WithdrawStudent(ctx, args[0], model.ParseDate(args[1]))

	case "delete-student":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete-student <student id>")
		}
		return registry.DeleteStudent(ctx, args[0])

	case "add-extra":
		if len(args) < 2 {
			return fmt.Errorf("usage: add-extra <student id> <date> [fee]")
		}
		var fee *int64
		if len(args) > 2 {
			v, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("bad fee %q", args[2])
			}
			fee = &v
		}
		session, err := registry.AddExtraSession(ctx, args[0], model.ParseDate(args[1]), fee, "")
		if err != nil {
			return err
		}
		fmt.Println(session.ID)
		return nil

	case "add-holiday":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-holiday <from> <to> <description> [class id]")
		}
		holiday := &model.Holiday{
			Date:        model.ParseDate(args[0]),
			EndDate:     model.ParseDate(args[1]),
			Description: args[2],
		}
		if len(args) > 3 {
			holiday.ClassID = args[3]
		}
		holiday, err := registry.AddHoliday(ctx, holiday)
		if err != nil {
			return err
		}
		fmt.Println(holiday.ID)
		return nil

	case "add-promotion":
		if len(args) != 4 {
			return fmt.Errorf("usage: add-promotion <class id> <YYYY-MM> <rate> <description>")
		}
		rate, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad rate %q", args[2])
		}
		promotion, err := registry.AddPromotion(ctx, args[0], model.Month(args[1]), rate, args[3])
		if err != nil {
			return err
		}
		fmt.Println(promotion.ID)
		return nil

	case "pay":
		if len(args) < 3 {
			return fmt.Errorf("usage: pay <student id> <amount> <date> [method]")
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad amount %q", args[1])
		}
		method := model.PaymentCash
		if len(args) > 3 {
			method = model.PaymentMethod(args[3])
		}
		payment, err := registry.RecordPayment(ctx, args[0], amount, model.ParseDate(args[2]), method)
		if err != nil {
			return err
		}
		fmt.Println(payment.ID)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// parsePattern reads bucket specs like "morning:mon,wed,fri".
func parsePattern(specs []string) (model.WeeklyPattern, error) {
	var pattern model.WeeklyPattern
	for _, spec := range specs {
		bucket, daysPart, ok := strings.Cut(spec, ":")
		if !ok {
			return pattern, fmt.Errorf("bad bucket spec %q", spec)
		}
		var days []model.Weekday
		for _, d := range strings.Split(daysPart, ",") {
			if !model.ValidWeekday(d) {
				return pattern, fmt.Errorf("bad weekday %q", d)
			}
			days = append(days, model.Weekday(d))
		}
		switch bucket {
		case "morning":
			pattern.Morning = days
		case "afternoon":
			pattern.Afternoon = days
		case "evening":
			pattern.Evening = days
		default:
			return pattern, fmt.Errorf("unknown bucket %q", bucket)
		}
	}
	return pattern, nil
}
