package staff

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"wardline/auth"
	"wardline/internal/cmdflags"
	"wardline/ward"

	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var registryPath string
	return &cli.Command{
		Name:  "staff",
		Usage: "Manage staff identities of a records registry",
		Flags: []cli.Flag{
			cmdflags.Registry(&registryPath),
		},
		Subcommands: []*cli.Command{
			addCmd(&registryPath),
		},
	}
}

func addCmd(registryPath *string) *cli.Command {
	var email string
	var role string
	var firstName string
	var lastName string
	return &cli.Command{
		Name:  "add",
		Usage: "Register a staff member (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Login email of the staff member",
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "role",
				Usage:       "One of admin, doctor or receptionist",
				Destination: &role,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "first-name",
				Destination: &firstName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "last-name",
				Destination: &lastName,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			if !ward.ValidRole(role) {
				return fmt.Errorf("role %v is not one of admin/doctor/receptionist", role)
			}
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			hash, err := auth.HashSecret(password)
			if err != nil {
				return err
			}
			reg, err := ward.OpenRegistry(ctx.Context, *registryPath, true)
			if err != nil {
				return err
			}
			defer reg.Close()
			id, err := reg.CreateStaff(ctx.Context, email, hash, role, firstName, lastName)
			if err != nil {
				return err
			}
			fmt.Fprintf(ctx.App.Writer, "staff %v created with id %v\n", email, id)
			return nil
		},
	}
}
