package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexbook/models"
)

// CalendarSync is the external calendar collaborator boundary. The engine
// only builds event descriptors; persisting them to third-party calendars
// happens elsewhere.
type CalendarSync interface {
	PushEvent(ctx context.Context, event models.CalendarEvent) error
}

// LoggingCalendarSync is the boundary stub: it logs the descriptor it was
// handed.
type LoggingCalendarSync struct {
	Logger *zap.Logger
}

func (s *LoggingCalendarSync) PushEvent(ctx context.Context, event models.CalendarEvent) error {
	if s.Logger != nil {
		s.Logger.Info("calendar event emitted",
			zap.String("bookingID", event.BookingID),
			zap.String("staffMemberID", event.StaffMemberID),
			zap.Time("start", event.StartTime),
			zap.Bool("private", event.IsPrivate))
	}
	return nil
}

// SyncToCalendar builds the calendar event description for a booking and
// hands it to the collaborator. Anonymous clients and emergency matters are
// marked private and keep the client off the attendee list.
func (e *DefaultBookingEngine) SyncToCalendar(ctx context.Context, bookingID string) (*models.CalendarEvent, error) {
	b, err := e.Ledger.GetByID(bookingID)
	if err != nil {
		return nil, newEngineError(CodeUnknownBooking, "unknown booking %q", bookingID)
	}
	svc, err := e.Catalog.GetService(b.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", b.ServiceID)
	}

	private := b.Client.IsAnonymous || b.IsEmergency

	title := svc.Name
	if private {
		title = fmt.Sprintf("%s (private client)", svc.Name)
	} else {
		title = fmt.Sprintf("%s: %s %s", svc.Name, b.Client.FirstName, b.Client.LastName)
	}

	var attendees []string
	if staff, err := e.Catalog.GetStaffMember(b.StaffID); err == nil {
		attendees = append(attendees, staff.Email)
	}
	if !b.Client.IsAnonymous && b.Client.Email != "" {
		attendees = append(attendees, b.Client.Email)
	}

	event := models.CalendarEvent{
		Title:         title,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Attendees:     attendees,
		Description:   b.Client.SpecialRequirements,
		IsPrivate:     private,
		BookingID:     b.ID,
		StaffMemberID: b.StaffID,
	}

	if e.CalSync != nil {
		callCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := e.CalSync.PushEvent(callCtx, event); err != nil {
			return nil, fmt.Errorf("calendar sync for booking %s: %w", b.ID, err)
		}
	}
	return &event, nil
}
