// Package console is the interactive menu front end. It is the error
// boundary: every failed operation is printed and logged, and the menu loop
// carries on.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/app"
	"hotel_reservations/internal/domain"
)

// errInputClosed unwinds every menu when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// maxLineBytes bounds one input line; longer lines are discarded and the
// prompt is shown again.
const maxLineBytes = 64 * 1024

type Controller struct {
	in  *bufio.Reader
	out io.Writer
	svc *app.Services
}

func New(in io.Reader, out io.Writer, svc *app.Services) *Controller {
	return &Controller{in: bufio.NewReader(in), out: out, svc: svc}
}

// Run shows the main menu until the user exits or input ends.
func (c *Controller) Run(ctx context.Context) error {
	err := c.loop("Main Menu", []string{"Manage Hotels", "Manage Customers", "Manage Reservations", "Exit"},
		func(choice int) (bool, error) {
			switch choice {
			case 1:
				return false, c.hotelMenu(ctx)
			case 2:
				return false, c.customerMenu(ctx)
			case 3:
				return false, c.reservationMenu(ctx)
			}
			return true, nil
		})
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

// loop prints a numbered menu and dispatches choices until handle reports
// done. The last option is always "back"/"exit".
func (c *Controller) loop(title string, options []string, handle func(choice int) (done bool, err error)) error {
	for {
		c.printf("\n%s\n", title)
		for i, o := range options {
			c.printf("%d. %s\n", i+1, o)
		}
		raw, err := c.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > len(options) {
			c.printf("Invalid choice\n")
			continue
		}
		if n == len(options) {
			return nil
		}
		done, err := handle(n)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) prompt(label string) (string, error) {
	for {
		c.printf("%s", label)
		line, tooLong, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		if err != nil {
			return "", err
		}
		if tooLong {
			c.printf("Input too long (max %d bytes)\n", maxLineBytes)
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

// readLine returns the next line without its size capped by the reader's
// buffer. tooLong reports a line past maxLineBytes; the rest of it is
// consumed and dropped. A final line without newline is still returned.
func (c *Controller) readLine() (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := c.in.ReadSlice('\n')
		if len(buf)+len(chunk) > maxLineBytes {
			tooLong = true
		}
		if !tooLong {
			buf = append(buf, chunk...)
		}
		switch {
		case rerr == nil:
			return string(buf), tooLong, nil
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
			return string(buf), tooLong, nil
		default:
			return "", false, rerr
		}
	}
}

// promptValid re-prompts until check accepts the input.
func (c *Controller) promptValid(label string, check func(string) (string, error)) (string, error) {
	for {
		raw, err := c.prompt(label)
		if err != nil {
			return "", err
		}
		v, verr := check(raw)
		if verr == nil {
			return v, nil
		}
		c.printf("%s\n", describe(verr))
	}
}

func (c *Controller) promptRooms(label string) (int, error) {
	for {
		raw, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, verr := domain.ParseRooms(raw)
		if verr == nil {
			return n, nil
		}
		c.printf("Invalid number of rooms\n")
	}
}

// promptID reads a record id; ok is false when the input is not a positive
// integer.
func (c *Controller) promptID(label string) (id int64, ok bool, err error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil || id <= 0 {
		c.printf("Invalid id\n")
		return 0, false, nil
	}
	return id, true, nil
}

// report records the outcome of one operation and prints it.
func (c *Controller) report(entity, op string, err error, okMsg string) {
	observability.ObserveOp(entity, op, err)
	if err == nil {
		c.printf("%s\n", okMsg)
		return
	}
	ev := log.Warn()
	if observability.Result(err) == "error" {
		ev = log.Error()
	}
	ev.Err(err).Str("entity", entity).Str("op", op).Msg("operation rejected")
	c.printf("Error: %s\n", describe(err))
}

func describe(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("Invalid %s: %s", strings.ReplaceAll(ve.Field, "_", " "), ve.Reason)
	}
	return err.Error()
}

func (c *Controller) refreshAvailability() {
	observability.SetAvailability(c.svc.Hotels.ReadAll())
}
