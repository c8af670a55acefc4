package validate

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation errors carry the Arabic text shown to the user. They are raised
// before any network call is made.
var (
	ErrNationalIDRequired = errors.New("الرجاء إدخال رقم الهوية الوطنية")
	ErrNationalIDLength   = errors.New("رقم الهوية يجب أن يكون 10 أرقام")
	ErrPasswordRequired   = errors.New("الرجاء إدخال كلمة المرور")
	ErrPasswordTooShort   = errors.New("كلمة المرور يجب أن تكون 6 أحرف على الأقل")
	ErrFullNameTooShort   = errors.New("الاسم الكامل يجب أن يكون 6 أحرف على الأقل")
	ErrAgeRequired        = errors.New("الرجاء إدخال العمر")
	ErrAgeTooYoung        = errors.New("يجب أن يكون عمرك 18 سنة على الأقل")
	ErrAgeTooOld          = errors.New("الرجاء إدخال عمر صحيح")
	ErrPasswordMismatch   = errors.New("كلمة المرور غير متطابقة")
)

// NationalID checks that the identifier is exactly 10 digits.
func NationalID(nationalID string) error {
	id := strings.TrimSpace(nationalID)
	if id == "" {
		return ErrNationalIDRequired
	}
	if len(id) != 10 || !allDigits(id) {
		return ErrNationalIDLength
	}
	return nil
}

// Password checks the minimum password length.
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// Login validates the credential pair for a login attempt.
func Login(nationalID, password string) error {
	if err := NationalID(nationalID); err != nil {
		return err
	}
	return Password(password)
}

// SignupForm is the registration input.
type SignupForm struct {
	NationalID      string
	FullName        string
	Age             int
	Password        string
	ConfirmPassword string
	PhoneNumber     string
}

// Signup validates the whole registration form.
func (f SignupForm) Validate() error {
	if err := NationalID(f.NationalID); err != nil {
		return err
	}
	// Rune count, not bytes: names here are Arabic.
	if utf8.RuneCountInString(strings.TrimSpace(f.FullName)) < 6 {
		return ErrFullNameTooShort
	}
	if f.Age == 0 {
		return ErrAgeRequired
	}
	if f.Age < 18 {
		return ErrAgeTooYoung
	}
	if f.Age > 120 {
		return ErrAgeTooOld
	}
	if err := Password(f.Password); err != nil {
		return err
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
