package app

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/domain"
)

type CustomerRepository struct {
	store domain.Store
	items []domain.Customer
	book  *reservationBook
}

func (r *CustomerRepository) Create(ctx context.Context, in domain.CustomerInput) (domain.Customer, error) {
	in, err := in.Validate()
	if err != nil {
		return domain.Customer{}, err
	}
	ids := make([]int64, 0, len(r.items))
	for _, c := range r.items {
		ids = append(ids, c.ID)
	}
	c := domain.Customer{
		ID:    nextID(ids, r.book.customerIDs()),
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
	}
	if err := r.commit(ctx, append(slices.Clone(r.items), c)); err != nil {
		return domain.Customer{}, err
	}
	log.Info().Int64("customer_id", c.ID).Msg("customer created")
	return c, nil
}

func (r *CustomerRepository) ReadAll() []domain.Customer {
	return slices.Clone(r.items)
}

func (r *CustomerRepository) Get(id int64) (domain.Customer, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return r.items[i], nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, p domain.CustomerPatch) (domain.Customer, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	c := r.items[i]
	var err error
	if p.Name != nil {
		if c.Name, err = domain.ValidateText("name", *p.Name); err != nil {
			return domain.Customer{}, err
		}
	}
	if p.Phone != nil {
		if c.Phone, err = domain.ValidatePhone(*p.Phone); err != nil {
			return domain.Customer{}, err
		}
	}
	if p.Email != nil {
		// an empty email clears it
		if strings.TrimSpace(*p.Email) == "" {
			c.Email = ""
		} else if c.Email, err = domain.ValidateEmail("email", *p.Email); err != nil {
			return domain.Customer{}, err
		}
	}
	next := slices.Clone(r.items)
	next[i] = c
	if err := r.commit(ctx, next); err != nil {
		return domain.Customer{}, err
	}
	log.Info().Int64("customer_id", id).Msg("customer updated")
	return c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrCustomerNotFound
	}
	if r.book.activeForCustomer(id) > 0 {
		return domain.ErrCustomerInUse
	}
	if err := r.commit(ctx, slices.Delete(slices.Clone(r.items), i, i+1)); err != nil {
		return err
	}
	log.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}

func (r *CustomerRepository) commit(ctx context.Context, next []domain.Customer) error {
	if err := saveCollection(ctx, r.store, domain.Customers, next); err != nil {
		return err
	}
	r.items = next
	return nil
}

func (r *CustomerRepository) index(id int64) int {
	return slices.IndexFunc(r.items, func(c domain.Customer) bool { return c.ID == id })
}
