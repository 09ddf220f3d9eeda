// Package tracker is the local workout-log companion. It reads commands from a
// terminal, validates them and appends entries to its own SQLite store.
package tracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"
)

const helpText = `commands:
  add <workout name> | <minutes>   log a workout
  list                             show logged workouts
  help                             show this help
  quit                             stop the workout log
`

var fieldLabels = map[string]string{
	"Name":            "workout name",
	"DurationMinutes": "duration (1-1440 minutes)",
}

// errQuit ends the read loop.
var errQuit = errors.New("quit")

// Console is a line-oriented form over a Store.
type Console struct {
	store    *Store
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewConsole constructs a console reading from in and writing to out.
func NewConsole(store *Store, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	return &Console{
		store:    store,
		in:       in,
		out:      out,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Run processes commands until quit, end of input, or ctx cancellation.
// Invalid entries are reported to the user and do not stop the loop.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "ACEst workout log. Type 'help' for commands.")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if err := c.handle(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd, rest, _ := strings.Cut(line, " ")

	switch strings.ToLower(cmd) {
	case "add":
		entry, err := c.parseEntry(rest)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return nil
		}
		if err := c.store.Add(ctx, entry); err != nil {
			return err
		}
		c.logger.Info("workout logged", zap.Int64("id", entry.ID), zap.String("name", entry.Name), zap.Int("minutes", entry.DurationMinutes))
		fmt.Fprintf(c.out, "logged %q for %d minutes\n", entry.Name, entry.DurationMinutes)
	case "list":
		entries, err := c.store.List(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(c.out, "no workouts logged yet")
			return nil
		}
		for i, e := range entries {
			fmt.Fprintf(c.out, "%d. %s - %d minutes\n", i+1, e.Name, e.DurationMinutes)
		}
	case "help":
		fmt.Fprint(c.out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", cmd)
	}
	return nil
}

// parseEntry reads "<name> | <minutes>".
func (c *Console) parseEntry(args string) (*Entry, error) {
	name, rawMinutes, found := strings.Cut(args, "|")
	if !found {
		return nil, errors.New("please enter both workout and duration as '<name> | <minutes>'")
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(rawMinutes))
	if err != nil {
		return nil, errors.New("duration must be a whole number of minutes")
	}

	entry := &Entry{
		Name:            strings.TrimSpace(name),
		DurationMinutes: minutes,
		LoggedAt:        c.now(),
	}
	if err := c.validate.Struct(entry); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid %s", fieldLabels[verrs[0].Field()])
		}
		return nil, err
	}
	return entry, nil
}
