// File: services/appointment/meetlink.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"clinicore/config"
	"clinicore/models"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// MeetLinkProvider creates video call links for appointments.
type MeetLinkProvider interface {
	CreateMeetLink(ctx context.Context, appt *models.Appointment) (string, error)
}

// CalendarMeetLinkProvider creates Google Meet links by inserting a
// calendar event with a conference request.
type CalendarMeetLinkProvider struct {
	svc        *calendar.Service
	calendarID string
}

// NewCalendarMeetLinkProvider constructs a provider over the configured
// service account and calendar.
func NewCalendarMeetLinkProvider(ctx context.Context) (*CalendarMeetLinkProvider, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.ServiceAccountKeyPath),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &CalendarMeetLinkProvider{
		svc:        svc,
		calendarID: config.AppConfig.CalendarID,
	}, nil
}

func (p *CalendarMeetLinkProvider) CreateMeetLink(ctx context.Context, appt *models.Appointment) (string, error) {
	duration := appt.Duration
	if duration <= 0 {
		duration = config.AppConfig.SlotIntervalMinutes
	}
	end := appt.DateTime.Add(time.Duration(duration) * time.Minute)

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Appointment: %s", appt.PatientName),
		Description: appt.Symptoms,
		Start:       &calendar.EventDateTime{DateTime: appt.DateTime.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.svc.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}

	if created.HangoutLink != "" {
		return created.HangoutLink, nil
	}
	if created.ConferenceData != nil {
		for _, ep := range created.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				return ep.Uri, nil
			}
		}
	}
	return "", fmt.Errorf("calendar event %s carries no meet link", created.Id)
}
