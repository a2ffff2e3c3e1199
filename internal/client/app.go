package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

const usage = `usage: user-client [-s address] [-timeout duration] <command> [args]

commands:
  create -name NAME -age AGE -email EMAIL
  list
  get ID
  update ID [-name NAME] [-age AGE] [-email EMAIL]
  delete ID
`

// App runs a single users API command per invocation.
type App struct {
	api    adapter.UsersAPI
	out    io.Writer
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns an [App] that talks to api and writes results to out.
func NewApp(api adapter.UsersAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Strs("args", rest).Send()

	switch command {
	case "create":
		return a.create(ctx, rest)
	case "list":
		return a.list(ctx)
	case "get":
		return a.get(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var user models.User
	fs.StringVar(&user.Name, "name", "", "user name")
	fs.IntVar(&user.Age, "age", 0, "user age")
	fs.StringVar(&user.Email, "email", "", "user email")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	created, err := a.api.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	return a.print(created)
}

func (a *App) list(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	if users == nil {
		users = []models.User{}
	}

	return a.print(users)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := userID(args)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}

	return a.print(user)
}

// update sends only the flags that were given on the command line.
func (a *App) update(ctx context.Context, args []string) error {
	id, err := userID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	name := fs.String("name", "", "user name")
	age := fs.Int("age", 0, "user age")
	email := fs.String("email", "", "user email")
	if err = fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	var patch models.UserPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "age":
			patch.Age = age
		case "email":
			patch.Email = email
		}
	})

	updated, err := a.api.UpdateUser(ctx, id, patch)
	if err != nil {
		return err
	}

	return a.print(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := userID(args)
	if err != nil {
		return err
	}

	message, err := a.api.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	return a.print(models.MessageResponse{Message: message})
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func userID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", ErrMissingUserID
	}
	return args[0], nil
}
