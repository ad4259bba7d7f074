// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/models"
)

// Form field names. They match the JSON names of the forms so the client can
// place each message next to its input.
const (
	FieldFullName        = "fullName"
	FieldCPF             = "cpf"
	FieldRG              = "rg"
	FieldDepartment      = "department"
	FieldMotherName      = "motherName"
	FieldAddress         = "address"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldUniversity      = "university"
	FieldCourse          = "course"
	FieldSemester        = "semester"
	FieldPeriod          = "period"
	FieldChosenArea      = "chosenArea"
	FieldChosenCity      = "chosenCity"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldToken           = "token"
)

const (
	MinSemester = 1
	MaxSemester = 10
)

// Field messages.
const (
	MsgRequired         = "This field is required"
	MsgInvalidCPF       = "Invalid CPF"
	MsgInvalidEmail     = "Invalid email"
	MsgInvalidSemester  = "Semester must be between 1 and 10"
	MsgInvalidOption    = "Select a valid option"
	MsgPasswordMismatch = "Passwords do not match"
	MsgCPFRegistered    = "CPF already registered"
)

var registrationFields = []string{
	FieldFullName, FieldCPF, FieldRG, FieldDepartment, FieldMotherName, FieldAddress,
	FieldPhone, FieldEmail, FieldUniversity, FieldCourse, FieldSemester, FieldPeriod,
	FieldChosenArea, FieldChosenCity, FieldPassword, FieldConfirmPassword,
}

// CandidateValidator validates the candidate-facing forms. Unlike a
// fail-fast validator it collects one message per failing field into
// [FieldErrors].
type CandidateValidator struct{}

// NewCandidateValidator returns a [Validator] for candidate forms.
func NewCandidateValidator() Validator {
	return &CandidateValidator{}
}

func (v *CandidateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationInput:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationInput:
		return v.validateRegistration(*value, fields...)

	case models.CandidateUpdate:
		return v.validateUpdate(value, fields...)
	case *models.CandidateUpdate:
		return v.validateUpdate(*value, fields...)

	case models.LoginInput:
		return v.validateLogin(value, fields...)
	case *models.LoginInput:
		return v.validateLogin(*value, fields...)

	case models.ForgotPasswordInput:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordInput:
		return v.validateForgotPassword(*value, fields...)

	case models.ResetPasswordInput:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordInput:
		return v.validateResetPassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CandidateValidator) validateRegistration(in models.RegistrationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldFullName:
			required(errs, f, in.FullName)
		case FieldCPF:
			checkCPF(errs, in.CPF)
		case FieldRG:
			required(errs, f, in.RG)
		case FieldDepartment:
			if !in.Department.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldMotherName:
			required(errs, f, in.MotherName)
		case FieldAddress:
			required(errs, f, in.Address)
		case FieldPhone:
			required(errs, f, in.Phone)
		case FieldEmail:
			checkEmail(errs, in.Email)
		case FieldUniversity:
			required(errs, f, in.University)
		case FieldCourse:
			required(errs, f, in.Course)
		case FieldSemester:
			checkSemester(errs, in.Semester)
		case FieldPeriod:
			if !in.Period.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldChosenArea:
			if !in.ChosenArea.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldChosenCity:
			if !in.ChosenCity.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldPassword:
			checkPassword(errs, in.Password)
		case FieldConfirmPassword:
			if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
				errs.Add(f, MsgPasswordMismatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

// validateUpdate only looks at fields the update actually carries.
func (v *CandidateValidator) validateUpdate(u models.CandidateUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldFullName, FieldRG, FieldDepartment, FieldMotherName, FieldAddress, FieldPhone,
			FieldEmail, FieldUniversity, FieldCourse, FieldSemester, FieldPeriod, FieldChosenArea, FieldChosenCity,
		}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldFullName:
			optionalRequired(errs, f, u.FullName)
		case FieldRG:
			optionalRequired(errs, f, u.RG)
		case FieldDepartment:
			if u.Department != nil && !u.Department.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldMotherName:
			optionalRequired(errs, f, u.MotherName)
		case FieldAddress:
			optionalRequired(errs, f, u.Address)
		case FieldPhone:
			optionalRequired(errs, f, u.Phone)
		case FieldEmail:
			if u.Email != nil {
				checkEmail(errs, *u.Email)
			}
		case FieldUniversity:
			optionalRequired(errs, f, u.University)
		case FieldCourse:
			optionalRequired(errs, f, u.Course)
		case FieldSemester:
			if u.Semester != nil {
				checkSemester(errs, *u.Semester)
			}
		case FieldPeriod:
			if u.Period != nil && !u.Period.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldChosenArea:
			if u.ChosenArea != nil && !u.ChosenArea.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		case FieldChosenCity:
			if u.ChosenCity != nil && !u.ChosenCity.IsValid() {
				errs.Add(f, MsgInvalidOption)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *CandidateValidator) validateLogin(in models.LoginInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCPF, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldCPF:
			checkCPF(errs, in.CPF)
		case FieldPassword:
			if in.Password == "" {
				errs.Add(f, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *CandidateValidator) validateForgotPassword(in models.ForgotPasswordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCPF, FieldEmail}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldCPF:
			checkCPF(errs, in.CPF)
		case FieldEmail:
			checkEmail(errs, in.Email)
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *CandidateValidator) validateResetPassword(in models.ResetPasswordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldPassword, FieldConfirmPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldToken:
			if in.Token == "" {
				errs.Add(f, MsgRequired)
			}
		case FieldPassword:
			checkPassword(errs, in.Password)
		case FieldConfirmPassword:
			if in.ConfirmPassword != in.Password {
				errs.Add(f, MsgPasswordMismatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func required(errs FieldErrors, field, value string) {
	if NormalizeText(value) == "" {
		errs.Add(field, MsgRequired)
	}
}

func optionalRequired(errs FieldErrors, field string, value *string) {
	if value != nil {
		required(errs, field, *value)
	}
}

func checkCPF(errs FieldErrors, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		errs.Add(FieldCPF, MsgRequired)
	case !cpf.IsValid(value):
		errs.Add(FieldCPF, MsgInvalidCPF)
	}
}

func checkEmail(errs FieldErrors, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		errs.Add(FieldEmail, MsgRequired)
	case !IsValidEmail(value):
		errs.Add(FieldEmail, MsgInvalidEmail)
	}
}

func checkSemester(errs FieldErrors, semester int) {
	if semester < MinSemester || semester > MaxSemester {
		errs.Add(FieldSemester, MsgInvalidSemester)
	}
}

// checkPassword reports the first policy violation as the field message,
// then the hasher's byte limit.
func checkPassword(errs FieldErrors, password string) {
	if password == "" {
		errs.Add(FieldPassword, MsgRequired)
		return
	}
	if res := ValidatePassword(password); !res.IsValid {
		errs.Add(FieldPassword, res.Errors[0])
		return
	}
	if len(password) > PasswordMaxBytes {
		errs.Add(FieldPassword, MsgPasswordTooLong)
	}
}
