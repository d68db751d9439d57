package cli

import (
	"flag"
	"fmt"
	"time"
)

func (app *App) runSchedule(args []string) error {
	flags := flag.NewFlagSet("schedule", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	settings := app.Tracker.Settings()
	if !settings.PartnerNotifications.Enabled {
		fmt.Println("Partner notifications are disabled - run `flowbro partner` first.")
		return nil
	}

	scheduled := app.Notifier.SchedulePartnerNotifications()
	fmt.Printf("✅ %d reminder(s) scheduled\n", scheduled)
	return nil
}

func (app *App) runTestNotification(args []string) error {
	flags := flag.NewFlagSet("test-notification", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	granted, err := app.Notifier.RequestPermission()
	if err != nil {
		return fmt.Errorf("request permission: %w", err)
	}
	if !granted {
		fmt.Println("Notification permission denied.")
		return nil
	}

	notification, err := app.Notifier.TestNotification()
	if err != nil {
		return err
	}

	fmt.Printf("Test notification scheduled for %s, waiting...\n", notification.ScheduledDate.Format("15:04:05"))
	time.Sleep(time.Until(notification.ScheduledDate) + time.Second)
	return nil
}
