package service

import (
	"testing"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateCustomer(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.CreateCustomerInput
		wantErr []string
	}{
		{
			name:  "valid",
			input: domain.CreateCustomerInput{FirstName: "John", LastName: "Doe"},
		},
		{
			name:  "optional fields empty",
			input: domain.CreateCustomerInput{FirstName: "Jane", LastName: "Doe", Email: "", PhoneNumber: "", Address: ""},
		},
		{
			name:    "empty first name",
			input:   domain.CreateCustomerInput{LastName: "Doe"},
			wantErr: []string{"first_name"},
		},
		{
			name:    "empty last name",
			input:   domain.CreateCustomerInput{FirstName: "John"},
			wantErr: []string{"last_name"},
		},
		{
			name:    "both empty reports both",
			input:   domain.CreateCustomerInput{},
			wantErr: []string{"first_name", "last_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateCustomer(&tt.input)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
				assert.NotEmpty(t, f.Error)
			}
			assert.ElementsMatch(t, tt.wantErr, fields)
		})
	}
}
