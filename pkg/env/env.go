package env

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"os"
)

// ValidateVars returns an error enumerating every environment variable in
// vars that is unset.
func ValidateVars(vars ...string) error {
	var errs []error

	for _, v := range vars {
		if _, found := os.LookupEnv(v); !found {
			errs = append(errs, fmt.Errorf("environment variable %q unset", v))
		}
	}

	return errors.Join(errs...)
}
