package cmdflags

import (
	"wardline/auth"

	"github.com/urfave/cli/v2"
)

func Registry(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "registry",
		Aliases:     []string{"r", "db"},
		Usage:       "Path to the records registry database",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = auth.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that holds the token signing secret. The secret itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}

func Config(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Usage:       "Path to a yaml config file (environment variables apply when omitted)",
		Destination: out,
		Value:       *out,
	}
}
