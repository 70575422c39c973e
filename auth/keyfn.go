package auth

import (
	"fmt"
	"os"
)

const (
	SecretEnvVar = "WARDLINE_JWT_SECRET"
)

// SecretFromEnv reads the signing secret from the named environment variable
// and blanks the variable afterwards, so the secret does not leak into child
// processes or debug dumps of the environment.
func SecretFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	if len(val) == 0 {
		return nil, fmt.Errorf("auth: environment variable %v holds no signing secret", varname)
	}
	return []byte(val), nil
}
