package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"
)

func (app *App) runLog(args []string) error {
	flags := flag.NewFlagSet("log", flag.ContinueOnError)
	startArg := flags.String("start", "", "start date (YYYY-MM-DD), required")
	endArg := flags.String("end", "", "end date (YYYY-MM-DD), defaults to the start date")
	flowArg := flags.String("flow", "medium", "flow intensity: light, medium or heavy")
	symptomsArg := flags.String("symptoms", "", "comma-separated symptom tags")
	notesArg := flags.String("notes", "", "free-text notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *startArg == "" {
		return errors.New("start date is required")
	}
	startDate, err := parseDay(*startArg)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}

	endDate := startDate
	if *endArg != "" {
		endDate, err = parseDay(*endArg)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
	}

	entry, err := app.Tracker.AddPeriodEntry(startDate, endDate, *flowArg, splitTags(*symptomsArg), *notesArg)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Entry %s recorded (%s - %s, %s)\n",
		entry.ID,
		entry.StartDate.Format("2006-01-02"),
		entry.EndDate.Format("2006-01-02"),
		entry.FlowIntensity,
	)
	return nil
}

func (app *App) runList(args []string) error {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	entries := app.Records.GetPeriodEntries()
	if len(entries) == 0 {
		fmt.Println("No entries recorded yet.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %s - %s  %s",
			entry.ID,
			entry.StartDate.Format("2006-01-02"),
			entry.EndDate.Format("2006-01-02"),
			entry.FlowIntensity,
		)
		if len(entry.Symptoms) > 0 {
			line += "  [" + strings.Join(entry.Symptoms, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}

func (app *App) runDelete(args []string) error {
	flags := flag.NewFlagSet("delete", flag.ContinueOnError)
	idArg := flags.String("id", "", "entry id to delete, required")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *idArg == "" {
		return errors.New("entry id is required")
	}

	if err := app.Tracker.DeletePeriodEntry(*idArg); err != nil {
		return err
	}
	fmt.Printf("✅ Entry %s deleted\n", *idArg)
	return nil
}

func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
}

func splitTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
