package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/flowbro-app/flowbro/internal/services"
)

func (app *App) runSettings(args []string) error {
	flags := flag.NewFlagSet("settings", flag.ContinueOnError)
	cycleLengthArg := flags.Int("cycle-length", 0, "cycle length in days")
	periodLengthArg := flags.Int("period-length", 0, "period length in days")
	lastPeriodArg := flags.String("last-period", "", "last period start (YYYY-MM-DD), empty clears it")
	if err := flags.Parse(args); err != nil {
		return err
	}

	update := services.SettingsUpdate{}
	var parseErr error
	flags.Visit(func(set *flag.Flag) {
		switch set.Name {
		case "cycle-length":
			update.CycleLength = cycleLengthArg
		case "period-length":
			update.PeriodLength = periodLengthArg
		case "last-period":
			update.LastPeriodStartSet = true
			if *lastPeriodArg != "" {
				day, err := parseDay(*lastPeriodArg)
				if err != nil {
					parseErr = fmt.Errorf("invalid last period date: %w", err)
					return
				}
				update.LastPeriodStart = &day
			}
		}
	})
	if parseErr != nil {
		return parseErr
	}

	// The settings-editing flow always stores notifications as enabled.
	enabled := true
	update.NotificationsEnabled = &enabled

	settings, err := app.Tracker.UpdateSettings(update)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Settings saved (cycle %d days, period %d days)\n", settings.CycleLength, settings.PeriodLength)
	return nil
}

func (app *App) runPartner(args []string) error {
	flags := flag.NewFlagSet("partner", flag.ContinueOnError)
	nameArg := flags.String("name", "", "partner name used in messages")
	pronounsArg := flags.String("pronouns", "", "they/them, she/her, he/him or custom")
	customPronounsArg := flags.String("custom-pronouns", "", "subject/object/possessive/reflexive tuple")
	reminderDaysArg := flags.String("reminder-days", "", "comma-separated days-before offsets, e.g. 3,1")
	periodStartArg := flags.Bool("period-start", false, "toggle period-start reminders")
	periodEndArg := flags.Bool("period-end", false, "toggle period-end reminders")
	ovulationArg := flags.Bool("ovulation", false, "toggle ovulation reminders")
	pmsArg := flags.Bool("pms", false, "toggle PMS reminders")
	msgPeriodStartArg := flags.String("msg-period-start", "", "custom period-start message, empty uses the default")
	msgPeriodEndArg := flags.String("msg-period-end", "", "custom period-end message")
	msgOvulationArg := flags.String("msg-ovulation", "", "custom ovulation message")
	msgPMSArg := flags.String("msg-pms", "", "custom PMS message")
	if err := flags.Parse(args); err != nil {
		return err
	}

	partner := app.Tracker.Settings().PartnerNotifications

	var parseErr error
	flags.Visit(func(set *flag.Flag) {
		switch set.Name {
		case "name":
			partner.PartnerName = *nameArg
		case "pronouns":
			partner.Pronouns = *pronounsArg
		case "custom-pronouns":
			partner.CustomPronouns = *customPronounsArg
		case "reminder-days":
			days, err := parseReminderDays(*reminderDaysArg)
			if err != nil {
				parseErr = err
				return
			}
			partner.ReminderDays = days
		case "period-start":
			partner.NotificationTypes.PeriodStart = *periodStartArg
		case "period-end":
			partner.NotificationTypes.PeriodEnd = *periodEndArg
		case "ovulation":
			partner.NotificationTypes.Ovulation = *ovulationArg
		case "pms":
			partner.NotificationTypes.PMS = *pmsArg
		case "msg-period-start":
			partner.CustomMessages.PeriodStart = *msgPeriodStartArg
		case "msg-period-end":
			partner.CustomMessages.PeriodEnd = *msgPeriodEndArg
		case "msg-ovulation":
			partner.CustomMessages.Ovulation = *msgOvulationArg
		case "msg-pms":
			partner.CustomMessages.PMS = *msgPMSArg
		}
	})
	if parseErr != nil {
		return parseErr
	}

	// Saving through the editing flow always re-enables notifications.
	partner.Enabled = true
	enabled := true

	settings, err := app.Tracker.UpdateSettings(services.SettingsUpdate{
		NotificationsEnabled: &enabled,
		PartnerNotifications: &partner,
	})
	if err != nil {
		return err
	}

	saved := settings.PartnerNotifications
	fmt.Printf("✅ Partner settings saved (reminders at %v days before)\n", saved.ReminderDays)
	return nil
}

func parseReminderDays(raw string) ([]int, error) {
	days := make([]int, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		day, err := strconv.Atoi(trimmed)
		if err != nil || day < 0 {
			return nil, fmt.Errorf("invalid reminder day %q", trimmed)
		}
		days = append(days, day)
	}
	return days, nil
}
