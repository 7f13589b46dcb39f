package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  error
	}{
		{"username and password", Credentials{Username: "u", Password: "p"}, nil},
		{"token only", Credentials{Token: "t"}, nil},
		{"nothing", Credentials{}, ErrNoCredentials},
		{"username without password", Credentials{Username: "u"}, ErrNoCredentials},
		{"password without username", Credentials{Password: "p"}, ErrNoCredentials},
		{"token and login", Credentials{Username: "u", Password: "p", Token: "t"}, ErrBothAuthForms},
		{"token and partial login", Credentials{Username: "u", Token: "t"}, ErrBothAuthForms},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
