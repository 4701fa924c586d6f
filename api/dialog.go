package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nlopes/slack"
)

var weekdayCodes = []string{"su", "mo", "tu", "we", "th", "fr", "sa"}

// ErrInvalidDay is returned when a submitted date cannot be mapped into the
// upstream weekday table.
var ErrInvalidDay = errors.New("invalid day")

// mealWeekday maps a submitted date to an upstream weekday code by indexing
// the table with the day of the month. The dialog's date values carry a
// weekday index (0-6) in the day slot, so round trips through our own
// dialog stay inside the table; a real calendar day of 7 or later does not.
func mealWeekday(day time.Time) (string, error) {
	d := day.Day()
	if d >= len(weekdayCodes) {
		return "", fmt.Errorf("%w: day %d has no weekday code", ErrInvalidDay, d)
	}
	return weekdayCodes[d], nil
}

// buildMensaDialog assembles the mensa+date selection form for a team.
// Fails when the team has no settings record.
func (s *Service) buildMensaDialog(ctx context.Context, teamID, locationID string) (slack.Dialog, error) {
	settings, err := s.store.TeamSettingsFor(teamID)
	if err != nil {
		return slack.Dialog{}, err
	}

	mensas, err := s.mensa.Mensas(ctx)
	if err != nil {
		return slack.Dialog{}, err
	}

	mensaOptions := make([]slack.DialogSelectOption, 0, len(mensas))
	for _, m := range mensas {
		mensaOptions = append(mensaOptions, slack.DialogSelectOption{
			Value: m.ID,
			Label: m.Name.In(settings.Language),
		})
	}

	// six options covering the current week from tomorrow's offset; the
	// value keeps the zero-based month and the weekday index in the day
	// slot, submission parsing depends on that encoding
	now := s.now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	dateOptions := make([]slack.DialogSelectOption, 0, 6)
	for i := 1; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dateOptions = append(dateOptions, slack.DialogSelectOption{
			Value: fmt.Sprintf("%d-%d-%d", day.Year(), int(day.Month())-1, int(day.Weekday())),
			Label: day.Format("Mon Jan 02 2006"),
		})
	}

	mensaSelect := slack.NewStaticSelectDialogInput("mensa", "Select a mensa", mensaOptions)
	if locationID != "" {
		mensaSelect.Value = locationID
	}
	dateSelect := slack.NewStaticSelectDialogInput("date", "Select a date", dateOptions)

	return slack.Dialog{
		CallbackID:  mensaDialogCallbackID,
		Title:       "Select a mensa",
		SubmitLabel: "Request",
		Elements:    []slack.DialogElement{mensaSelect, dateSelect},
	}, nil
}
