package console

import (
	"context"
	"fmt"
	"strings"

	"hotel_reservations/internal/domain"
)

func (c *Controller) customerMenu(ctx context.Context) error {
	return c.loop("Customer Operations", []string{"Create Customer", "Delete Customer", "Show Customers", "Modify Customer", "Back"},
		func(choice int) (bool, error) {
			switch choice {
			case 1:
				return false, c.createCustomer(ctx)
			case 2:
				return false, c.deleteCustomer(ctx)
			case 3:
				c.showCustomers()
				return false, nil
			}
			return false, c.modifyCustomer(ctx)
		})
}

// optionalEmail accepts a blank line.
func optionalEmail(v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	return email(v)
}

func (c *Controller) createCustomer(ctx context.Context) error {
	var (
		in  domain.CustomerInput
		err error
	)
	if in.Name, err = c.promptValid("Enter customer name: ", text("name")); err != nil {
		return err
	}
	if in.Phone, err = c.promptValid("Enter customer phone (10 digits): ", domain.ValidatePhone); err != nil {
		return err
	}
	if in.Email, err = c.promptValid("Enter customer email (optional): ", optionalEmail); err != nil {
		return err
	}
	cu, err := c.svc.Customers.Create(ctx, in)
	c.report("customer", "create", err, fmt.Sprintf("Customer %d created successfully", cu.ID))
	return nil
}

func (c *Controller) deleteCustomer(ctx context.Context) error {
	id, ok, err := c.promptID("Enter customer id to delete: ")
	if err != nil || !ok {
		return err
	}
	err = c.svc.Customers.Delete(ctx, id)
	c.report("customer", "delete", err, "Customer deleted successfully")
	return nil
}

func (c *Controller) showCustomers() {
	customers := c.svc.Customers.ReadAll()
	if len(customers) == 0 {
		c.printf("No customers found\n")
		return
	}
	for _, cu := range customers {
		c.printf("\nID: %d\n", cu.ID)
		c.printf("Name: %s\n", cu.Name)
		c.printf("Phone: %s\n", cu.Phone)
		if cu.Email != "" {
			c.printf("Email: %s\n", cu.Email)
		}
	}
}

func (c *Controller) modifyCustomer(ctx context.Context) error {
	id, ok, err := c.promptID("Enter customer id to modify: ")
	if err != nil || !ok {
		return err
	}
	cu, err := c.svc.Customers.Get(id)
	if err != nil {
		c.report("customer", "update", err, "")
		return nil
	}

	c.printf("\nCurrent Information:\n")
	c.printf("1. Name: %s\n", cu.Name)
	c.printf("2. Phone: %s\n", cu.Phone)
	c.printf("3. Email: %s\n", cu.Email)
	field, err := c.prompt("Enter field number to modify (1-3): ")
	if err != nil {
		return err
	}

	var p domain.CustomerPatch
	switch field {
	case "1":
		v, err := c.promptValid("Enter new name: ", text("name"))
		if err != nil {
			return err
		}
		p.Name = &v
	case "2":
		v, err := c.promptValid("Enter new phone: ", domain.ValidatePhone)
		if err != nil {
			return err
		}
		p.Phone = &v
	case "3":
		v, err := c.promptValid("Enter new email (blank to clear): ", optionalEmail)
		if err != nil {
			return err
		}
		p.Email = &v
	default:
		c.printf("Invalid field selection\n")
		return nil
	}

	_, err = c.svc.Customers.Update(ctx, id, p)
	c.report("customer", "update", err, "Customer updated successfully")
	return nil
}
