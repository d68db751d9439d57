package cli

import (
	"fmt"

	"github.com/flowbro-app/flowbro/internal/db"
	"github.com/flowbro-app/flowbro/internal/delivery"
	"github.com/flowbro-app/flowbro/internal/services"
	"github.com/flowbro-app/flowbro/internal/store"
	"gorm.io/gorm"
)

// App bundles the wired services behind the command surface.
type App struct {
	Records   *store.RecordStore
	Tracker   *services.TrackingService
	Notifier  *services.NotificationService
	Scheduler *delivery.TimerScheduler
}

func NewApp(database *gorm.DB, sender delivery.Sender) *App {
	records := store.NewRecordStore(db.NewKVRepository(database))
	tracker := services.NewTrackingService(records, nil)
	scheduler := delivery.NewTimerScheduler(sender)
	notifier := services.NewNotificationService(records, scheduler, tracker, nil)

	return &App{
		Records:   records,
		Tracker:   tracker,
		Notifier:  notifier,
		Scheduler: scheduler,
	}
}

// Run dispatches a command invocation. The first argument is the command
// name, the rest are its flags.
func (app *App) Run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "log":
		return app.runLog(rest)
	case "list":
		return app.runList(rest)
	case "delete":
		return app.runDelete(rest)
	case "status":
		return app.runStatus(rest)
	case "settings":
		return app.runSettings(rest)
	case "partner":
		return app.runPartner(rest)
	case "schedule":
		return app.runSchedule(rest)
	case "upcoming":
		return app.runUpcoming(rest)
	case "test-notification":
		return app.runTestNotification(rest)
	case "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Println("flowbro - cycle tracking and partner reminders")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  log                record a period entry")
	fmt.Println("  list               list recorded entries")
	fmt.Println("  delete             delete an entry by id")
	fmt.Println("  status             show predictions and cycle history")
	fmt.Println("  settings           edit cycle settings")
	fmt.Println("  partner            edit partner notification settings")
	fmt.Println("  schedule           rebuild partner reminders")
	fmt.Println("  upcoming           list upcoming reminders")
	fmt.Println("  test-notification  fire a test notification in 5 seconds")
}
