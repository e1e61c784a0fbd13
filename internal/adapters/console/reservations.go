package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel_reservations/internal/domain"
)

func (c *Controller) reservationMenu(ctx context.Context) error {
	return c.loop("Reservation Operations",
		[]string{"Create Reservation", "Cancel Reservation", "Show Reservations", "Show Hotel Reservations", "Back"},
		func(choice int) (bool, error) {
			switch choice {
			case 1:
				return false, c.createReservation(ctx)
			case 2:
				return false, c.cancelReservation(ctx)
			case 3:
				return false, c.listReservations()
			}
			return false, c.showHotelReservations()
		})
}

func (c *Controller) createReservation(ctx context.Context) error {
	customerID, ok, err := c.promptID("Enter customer id: ")
	if err != nil || !ok {
		return err
	}
	hotelID, ok, err := c.promptID("Enter hotel id: ")
	if err != nil || !ok {
		return err
	}
	r, err := c.svc.Reservations.Create(ctx, customerID, hotelID)
	c.report("reservation", "create", err,
		fmt.Sprintf("Reservation %d created successfully (reference %s)", r.ID, r.Reference))
	c.refreshAvailability()
	return nil
}

func (c *Controller) cancelReservation(ctx context.Context) error {
	id, ok, err := c.promptID("Enter reservation id: ")
	if err != nil || !ok {
		return err
	}
	_, err = c.svc.Reservations.Cancel(ctx, id)
	c.report("reservation", "cancel", err, "Reservation canceled successfully")
	c.refreshAvailability()
	return nil
}

func (c *Controller) listReservations() error {
	answer, err := c.prompt("Active only? (y/N): ")
	if err != nil {
		return err
	}
	activeOnly := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	c.showReservations(c.svc.Reservations.ReadAll(activeOnly))
	return nil
}

func (c *Controller) showHotelReservations() error {
	id, ok, err := c.promptID("Enter hotel id: ")
	if err != nil || !ok {
		return err
	}
	rs, err := c.svc.Reservations.HotelReservations(id)
	if err != nil {
		c.report("reservation", "list", err, "")
		return nil
	}
	c.showReservations(rs)
	return nil
}

func (c *Controller) showReservations(rs []domain.Reservation) {
	if len(rs) == 0 {
		c.printf("No reservations found\n")
		return
	}
	for _, r := range rs {
		c.printf("\nID: %d\n", r.ID)
		c.printf("Reference: %s\n", r.Reference)
		c.printf("Customer: %d\n", r.CustomerID)
		c.printf("Hotel: %d\n", r.HotelID)
		c.printf("Status: %s\n", r.Status)
		c.printf("Created: %s\n", r.CreatedAt.Format(time.RFC3339))
		if r.CancelledAt != nil {
			c.printf("Cancelled: %s\n", r.CancelledAt.Format(time.RFC3339))
		}
	}
}
