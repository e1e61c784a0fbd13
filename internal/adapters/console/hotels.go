package console

import (
	"context"
	"fmt"

	"hotel_reservations/internal/domain"
)

func (c *Controller) hotelMenu(ctx context.Context) error {
	return c.loop("Hotel Operations", []string{"Create Hotel", "Delete Hotel", "Show Hotels", "Modify Hotel", "Back"},
		func(choice int) (bool, error) {
			switch choice {
			case 1:
				return false, c.createHotel(ctx)
			case 2:
				return false, c.deleteHotel(ctx)
			case 3:
				c.showHotels()
				return false, nil
			}
			return false, c.modifyHotel(ctx)
		})
}

func text(field string) func(string) (string, error) {
	return func(v string) (string, error) { return domain.ValidateText(field, v) }
}

func email(v string) (string, error) { return domain.ValidateEmail("email", v) }

func (c *Controller) createHotel(ctx context.Context) error {
	var (
		in  domain.HotelInput
		err error
	)
	if in.Name, err = c.promptValid("Enter hotel name: ", text("name")); err != nil {
		return err
	}
	if in.Location, err = c.promptValid("Enter hotel location: ", text("location")); err != nil {
		return err
	}
	if in.TotalRooms, err = c.promptRooms("Enter total rooms: "); err != nil {
		return err
	}
	if in.Email, err = c.promptValid("Enter hotel contact email: ", email); err != nil {
		return err
	}
	h, err := c.svc.Hotels.Create(ctx, in)
	c.report("hotel", "create", err, fmt.Sprintf("Hotel %d created successfully", h.ID))
	c.refreshAvailability()
	return nil
}

func (c *Controller) deleteHotel(ctx context.Context) error {
	id, ok, err := c.promptID("Enter hotel id to delete: ")
	if err != nil || !ok {
		return err
	}
	err = c.svc.Hotels.Delete(ctx, id)
	c.report("hotel", "delete", err, "Hotel deleted successfully")
	c.refreshAvailability()
	return nil
}

func (c *Controller) showHotels() {
	hotels := c.svc.Hotels.ReadAll()
	if len(hotels) == 0 {
		c.printf("No hotels found\n")
		return
	}
	for _, h := range hotels {
		c.printf("\nID: %d\n", h.ID)
		c.printf("Name: %s\n", h.Name)
		c.printf("Location: %s\n", h.Location)
		c.printf("Rooms Available: %d/%d\n", h.AvailableRooms, h.TotalRooms)
		c.printf("Contact Email: %s\n", h.Email)
	}
}

func (c *Controller) modifyHotel(ctx context.Context) error {
	id, ok, err := c.promptID("Enter hotel id to modify: ")
	if err != nil || !ok {
		return err
	}
	h, err := c.svc.Hotels.Get(id)
	if err != nil {
		c.report("hotel", "update", err, "")
		return nil
	}

	c.printf("\nCurrent Information:\n")
	c.printf("1. Name: %s\n", h.Name)
	c.printf("2. Location: %s\n", h.Location)
	c.printf("3. Total Rooms: %d\n", h.TotalRooms)
	c.printf("4. Email: %s\n", h.Email)
	field, err := c.prompt("Enter field number to modify (1-4): ")
	if err != nil {
		return err
	}

	var p domain.HotelPatch
	switch field {
	case "1":
		v, err := c.promptValid("Enter new name: ", text("name"))
		if err != nil {
			return err
		}
		p.Name = &v
	case "2":
		v, err := c.promptValid("Enter new location: ", text("location"))
		if err != nil {
			return err
		}
		p.Location = &v
	case "3":
		n, err := c.promptRooms("Enter new room count: ")
		if err != nil {
			return err
		}
		p.TotalRooms = &n
	case "4":
		v, err := c.promptValid("Enter new email: ", email)
		if err != nil {
			return err
		}
		p.Email = &v
	default:
		c.printf("Invalid field selection\n")
		return nil
	}

	_, err = c.svc.Hotels.Update(ctx, id, p)
	c.report("hotel", "update", err, "Hotel updated successfully")
	c.refreshAvailability()
	return nil
}
