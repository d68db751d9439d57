package cli

import (
	"flag"
	"fmt"
)

func (app *App) runStatus(args []string) error {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	showHistory := flags.Bool("history", false, "include observed cycle history")
	if err := flags.Parse(args); err != nil {
		return err
	}

	next := app.Tracker.NextPeriodDate()
	if next == nil {
		fmt.Println("No entries yet - log a period to get predictions.")
		return nil
	}

	fmt.Printf("Next period:  %s", next.Format("2006-01-02"))
	if days := app.Tracker.DaysUntilNextPeriod(); days != nil {
		fmt.Printf(" (in %d days)", *days)
	}
	fmt.Println()

	if ovulation := app.Tracker.OvulationDate(); ovulation != nil {
		fmt.Printf("Ovulation:    %s\n", ovulation.Format("2006-01-02"))
	}
	if pmsStart := app.Tracker.PMSStartDate(); pmsStart != nil {
		fmt.Printf("PMS starts:   %s\n", pmsStart.Format("2006-01-02"))
	}

	if app.Tracker.IsPeriodActive() {
		fmt.Println("Period is currently active.")
	}
	if days := app.Tracker.DaysSinceLastPeriod(); days != nil {
		fmt.Printf("Days since last period: %d\n", *days)
	}
	if cycleDay := app.Tracker.CurrentCycleDay(); cycleDay > 0 {
		fmt.Printf("Cycle day:    %d\n", cycleDay)
	}

	if cycle := app.Tracker.CurrentCycle(); cycle != nil {
		fmt.Printf("Average cycle length: %d days\n", cycle.AverageLength)
	}

	if *showHistory {
		history := app.Tracker.CycleHistory()
		if len(history) == 0 {
			fmt.Println("No observed cycles yet.")
			return nil
		}
		fmt.Println()
		fmt.Println("Observed cycles:")
		for _, cycle := range history {
			fmt.Printf("  %s - %s  %d days\n",
				cycle.StartDate.Format("2006-01-02"),
				cycle.EndDate.Format("2006-01-02"),
				cycle.Length,
			)
		}
	}
	return nil
}

func (app *App) runUpcoming(args []string) error {
	flags := flag.NewFlagSet("upcoming", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	upcoming := app.Notifier.UpcomingNotifications()
	if len(upcoming) == 0 {
		fmt.Println("No upcoming reminders.")
		return nil
	}

	for _, notification := range upcoming {
		fmt.Printf("%s  %-12s  %s\n",
			notification.ScheduledDate.Format("2006-01-02 15:04"),
			notification.Type,
			notification.Title,
		)
	}
	return nil
}
