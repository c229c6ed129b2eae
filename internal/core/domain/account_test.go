package domain_test

import (
	"testing"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validDetails() domain.AccountDetails {
	return domain.AccountDetails{
		Number:    "1234567890",
		Name:      "Ivan Petrov",
		Address:   "12 Lenina St, apt 4",
		Area:      decimal.NewFromFloat(54.3),
		Residents: 3,
		Company:   "Housing Co",
	}
}

func TestAccountDetails_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.AccountDetails)
		wantErr bool
		errMsg  string
	}{
		{name: "valid details", mutate: func(d *domain.AccountDetails) {}},
		{name: "zero residents allowed", mutate: func(d *domain.AccountDetails) { d.Residents = 0 }},
		{name: "short number", mutate: func(d *domain.AccountDetails) { d.Number = "123456789" }, wantErr: true, errMsg: "number must be exactly 10 digits"},
		{name: "long number", mutate: func(d *domain.AccountDetails) { d.Number = "12345678901" }, wantErr: true, errMsg: "number must be exactly 10 digits"},
		{name: "non digit number", mutate: func(d *domain.AccountDetails) { d.Number = "12345abcde" }, wantErr: true, errMsg: "number must be exactly 10 digits"},
		{name: "signed number", mutate: func(d *domain.AccountDetails) { d.Number = "-123456789" }, wantErr: true, errMsg: "number must be exactly 10 digits"},
		{name: "empty name", mutate: func(d *domain.AccountDetails) { d.Name = "" }, wantErr: true, errMsg: "name is required"},
		{name: "empty address", mutate: func(d *domain.AccountDetails) { d.Address = "" }, wantErr: true, errMsg: "address is required"},
		{name: "empty company", mutate: func(d *domain.AccountDetails) { d.Company = "" }, wantErr: true, errMsg: "company is required"},
		{name: "zero area", mutate: func(d *domain.AccountDetails) { d.Area = decimal.Zero }, wantErr: true, errMsg: "area must be greater than 0"},
		{name: "negative area", mutate: func(d *domain.AccountDetails) { d.Area = decimal.NewFromInt(-5) }, wantErr: true, errMsg: "area must be greater than 0"},
		{name: "tiny negative area", mutate: func(d *domain.AccountDetails) { d.Area = decimal.RequireFromString("-1e-400") }, wantErr: true, errMsg: "area must be greater than 0"},
		{name: "tiny positive area", mutate: func(d *domain.AccountDetails) { d.Area = decimal.RequireFromString("1e-400") }, wantErr: true, errMsg: "area must have at most 2 decimal places"},
		{name: "area finer than storage", mutate: func(d *domain.AccountDetails) { d.Area = decimal.RequireFromString("54.305") }, wantErr: true, errMsg: "area must have at most 2 decimal places"},
		{name: "area with trailing zeros", mutate: func(d *domain.AccountDetails) { d.Area = decimal.RequireFromString("54.3000") }},
		{name: "negative residents", mutate: func(d *domain.AccountDetails) { d.Residents = -1 }, wantErr: true, errMsg: "residents must not be less than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountDetails_NormalizeRejectsBlankFields(t *testing.T) {
	d := validDetails()
	d.Name = "   "
	d.Number = " 1234567890 "

	n := d.Normalize()

	assert.Equal(t, "1234567890", n.Number)
	assert.ErrorIs(t, n.Validate(), apperrors.ErrValidation)
}

func TestParseAccountStatus(t *testing.T) {
	s, err := domain.ParseAccountStatus("inactive")
	assert.NoError(t, err)
	assert.Equal(t, domain.AccountInactive, s)

	_, err = domain.ParseAccountStatus("closed")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
