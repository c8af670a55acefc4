package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNationalID(t *testing.T) {
	assert.NoError(t, NationalID("1234567890"))
	assert.ErrorIs(t, NationalID(""), ErrNationalIDRequired)
	assert.ErrorIs(t, NationalID("   "), ErrNationalIDRequired)
	assert.ErrorIs(t, NationalID("12345"), ErrNationalIDLength)
	assert.ErrorIs(t, NationalID("12345678901"), ErrNationalIDLength)
	assert.ErrorIs(t, NationalID("12345abcde"), ErrNationalIDLength)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("123456"))
	assert.ErrorIs(t, Password(""), ErrPasswordRequired)
	assert.ErrorIs(t, Password("12345"), ErrPasswordTooShort)
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login("1234567890", "123456"))
	assert.ErrorIs(t, Login("123", "123456"), ErrNationalIDLength)
	assert.ErrorIs(t, Login("1234567890", "12"), ErrPasswordTooShort)
}

func validForm() SignupForm {
	return SignupForm{
		NationalID:      "1234567890",
		FullName:        "محمد أحمد السالم",
		Age:             25,
		Password:        "123456",
		ConfirmPassword: "123456",
	}
}

func TestSignupForm(t *testing.T) {
	assert.NoError(t, validForm().Validate())

	form := validForm()
	form.FullName = "محمد"
	assert.ErrorIs(t, form.Validate(), ErrFullNameTooShort)

	form = validForm()
	form.Age = 0
	assert.ErrorIs(t, form.Validate(), ErrAgeRequired)

	form = validForm()
	form.Age = 17
	assert.ErrorIs(t, form.Validate(), ErrAgeTooYoung)

	form = validForm()
	form.Age = 130
	assert.ErrorIs(t, form.Validate(), ErrAgeTooOld)

	form = validForm()
	form.ConfirmPassword = "000000"
	assert.ErrorIs(t, form.Validate(), ErrPasswordMismatch)
}
