package env

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"testing"

	utilerror "github.com/openstack-esi/nodenet/test/util/error"
)

func TestValidateVars(t *testing.T) {
	for _, tt := range []struct {
		name    string
		vars    []string
		set     map[string]string
		wantErr string
	}{
		{
			name: "all set",
			vars: []string{"NODENET_TEST_VAR_A", "NODENET_TEST_VAR_B"},
			set: map[string]string{
				"NODENET_TEST_VAR_A": "a",
				"NODENET_TEST_VAR_B": "",
			},
		},
		{
			name: "one unset",
			vars: []string{"NODENET_TEST_VAR_A", "NODENET_TEST_VAR_C"},
			set: map[string]string{
				"NODENET_TEST_VAR_A": "a",
			},
			wantErr: `environment variable "NODENET_TEST_VAR_C" unset`,
		},
		{
			name:    "all unset",
			vars:    []string{"NODENET_TEST_VAR_D", "NODENET_TEST_VAR_E"},
			wantErr: "environment variable \"NODENET_TEST_VAR_D\" unset\nenvironment variable \"NODENET_TEST_VAR_E\" unset",
		},
		{
			name: "no vars",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			err := ValidateVars(tt.vars...)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
