package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplight/shoplight/internal/domain"
)

// AvailableMeetingSlots returns slots that are still bookable
func (c *Catalog) AvailableMeetingSlots(ctx context.Context) ([]domain.MeetingSlot, error) {
	return query(ctx, c, KeyMeetingSlots, c.backend.GetAvailableMeetingSlots)
}

// AllMeetingSlots returns every slot, booked or not (admin view)
func (c *Catalog) AllMeetingSlots(ctx context.Context) ([]domain.MeetingSlot, error) {
	return query(ctx, c, KeyAllMeetingSlots, c.backend.GetAllMeetingSlots)
}

// MeetingSlot returns one slot, or nil if the id is unknown
func (c *Catalog) MeetingSlot(ctx context.Context, id string) (*domain.MeetingSlot, error) {
	return query(ctx, c, paramKey(KeyMeetingSlot, id), func(ctx context.Context) (*domain.MeetingSlot, error) {
		return c.backend.GetMeetingSlot(ctx, id)
	})
}

// AddMeetingSlot opens a new bookable window and returns its id
func (c *Catalog) AddMeetingSlot(ctx context.Context, startTime, durationMinutes int64, description string) (string, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutAddMeetingSlot, func(ctx context.Context) (string, error) {
		return c.backend.AddMeetingSlot(ctx, startTime, durationMinutes, description)
	})
}

// UpdateMeetingSlot replaces a slot's full field set
func (c *Catalog) UpdateMeetingSlot(ctx context.Context, id string, startTime, durationMinutes int64, description string) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	return mutateVoid(ctx, c, MutUpdateMeetingSlot, func(ctx context.Context) error {
		return c.backend.UpdateMeetingSlot(ctx, id, startTime, durationMinutes, description)
	})
}

// BookAppointment claims a slot for the caller and returns the
// appointment id
func (c *Catalog) BookAppointment(ctx context.Context, customerName, timeSlotID string) (string, error) {
	if strings.TrimSpace(customerName) == "" {
		return "", fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutBookAppointment, func(ctx context.Context) (string, error) {
		return c.backend.BookAppointment(ctx, customerName, timeSlotID)
	})
}

// CancelAppointment releases a booked slot
func (c *Catalog) CancelAppointment(ctx context.Context, appointmentID string) error {
	return mutateVoid(ctx, c, MutCancelAppointment, func(ctx context.Context) error {
		return c.backend.CancelAppointment(ctx, appointmentID)
	})
}

// MyAppointments returns the caller's own bookings
func (c *Catalog) MyAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return query(ctx, c, KeyMyAppointments, c.backend.GetMyAppointments)
}

// AllAppointments returns every booking (admin view)
func (c *Catalog) AllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return query(ctx, c, KeyAllAppointments, c.backend.GetAllAppointments)
}
