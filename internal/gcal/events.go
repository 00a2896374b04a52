package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrNotAuthenticated = errors.New("google calendar: not authenticated")

const upcomingEventsLimit = 10

// Event is a calendar event normalized for the extension. All-day events
// carry a plain date and timed events an RFC3339 datetime, in the same
// fields either way.
type Event struct {
	Summary string `json:"summary,omitempty"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ListUpcomingEvents returns up to 10 upcoming events from the primary
// calendar, ordered by start time, recurring series expanded to single
// instances. Requires a stored credential; provider rejections (including
// expired tokens) surface as errors and are not retried.
func (c *Client) ListUpcomingEvents(ctx context.Context) ([]Event, error) {
	token, ok := c.tokens.Get()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(c.config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	events, err := service.Events.List("primary").
		TimeMin(time.Now().Format(time.RFC3339)).
		MaxResults(upcomingEventsLimit).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	result := make([]Event, 0, len(events.Items))
	for _, item := range events.Items {
		if item == nil {
			continue
		}
		result = append(result, normalizeEvent(item))
	}

	return result, nil
}

// normalizeEvent flattens Google's date/dateTime split: timed events carry
// DateTime, all-day events only Date. DateTime wins when both are present.
func normalizeEvent(item *calendar.Event) Event {
	return Event{
		Summary: item.Summary,
		Start:   eventTime(item.Start),
		End:     eventTime(item.End),
	}
}

func eventTime(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}
