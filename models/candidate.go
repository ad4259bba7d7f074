// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CandidateSchemaVersion is the schema version every write produces.
//
// Version 1 records carried a date of birth. Version 2 replaced it with
// Department and added DeliveredFood.
const CandidateSchemaVersion = 2

// CandidateRecord is the stored candidate document.
// It is keyed by the normalized CPF and contains the password hash,
// so it must never leave the service layer as is. Use [CandidateRecord.Profile]
// to obtain the public projection.
type CandidateRecord struct {
	// FullName is the candidate's legal name.
	FullName string `json:"fullName"`

	// CPF is the 11-digit normalized taxpayer id. Also the document key.
	CPF string `json:"cpf"`

	// RG is the state identity document number.
	RG string `json:"rg"`

	// Department is the public-security body the candidate is linked to.
	// Empty for records upgraded from schema version 1.
	Department Department `json:"department,omitempty"`

	// DateOfBirth exists only in schema version 1 records and is dropped on write.
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	MotherName string `json:"motherName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	University string         `json:"university"`
	Course     string         `json:"course"`
	Semester   int            `json:"semester"`
	Period     StudyPeriod    `json:"period"`
	ChosenArea InternshipArea `json:"chosenArea"`
	ChosenCity InternshipCity `json:"chosenCity"`

	IsAfroDescendant       bool `json:"isAfroDescendant"`
	NeedsSpecialAssistance bool `json:"needsSpecialAssistance"`
	DeliveredFood          bool `json:"deliveredFood"`

	// PasswordHash is the bcrypt hash of the candidate's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"password"`

	// Role defaults to [RoleCandidate].
	Role Role `json:"role"`

	// SchemaVersion is absent (zero) in version 1 documents.
	SchemaVersion int `json:"schemaVersion,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version is the store revision the record was read at.
	// It drives compare-and-swap writes and is not part of the document body.
	Version int64 `json:"-"`
}

// Upgrade converts an older document shape into the current schema in place.
// It reports whether anything changed.
func (c *CandidateRecord) Upgrade() bool {
	if c.SchemaVersion >= CandidateSchemaVersion {
		return false
	}
	c.SchemaVersion = CandidateSchemaVersion
	c.DateOfBirth = ""
	c.DeliveredFood = false
	if c.Role == "" {
		c.Role = RoleCandidate
	}
	return true
}

// Profile returns the public projection of the record.
func (c CandidateRecord) Profile() CandidateProfile {
	return CandidateProfile{
		ID:                     c.CPF,
		FullName:               c.FullName,
		CPF:                    c.CPF,
		RG:                     c.RG,
		Department:             c.Department,
		MotherName:             c.MotherName,
		Address:                c.Address,
		Phone:                  c.Phone,
		Email:                  c.Email,
		University:             c.University,
		Course:                 c.Course,
		Semester:               c.Semester,
		Period:                 c.Period,
		ChosenArea:             c.ChosenArea,
		ChosenCity:             c.ChosenCity,
		IsAfroDescendant:       c.IsAfroDescendant,
		NeedsSpecialAssistance: c.NeedsSpecialAssistance,
		DeliveredFood:          c.DeliveredFood,
		Role:                   c.Role,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

// CandidateProfile is the candidate as returned to callers: the stored
// record with an id (equal to the CPF) and without the password hash.
type CandidateProfile struct {
	ID                     string         `json:"id"`
	FullName               string         `json:"fullName"`
	CPF                    string         `json:"cpf"`
	RG                     string         `json:"rg"`
	Department             Department     `json:"department,omitempty"`
	MotherName             string         `json:"motherName"`
	Address                string         `json:"address"`
	Phone                  string         `json:"phone"`
	Email                  string         `json:"email"`
	University             string         `json:"university"`
	Course                 string         `json:"course"`
	Semester               int            `json:"semester"`
	Period                 StudyPeriod    `json:"period"`
	ChosenArea             InternshipArea `json:"chosenArea"`
	ChosenCity             InternshipCity `json:"chosenCity"`
	IsAfroDescendant       bool           `json:"isAfroDescendant"`
	NeedsSpecialAssistance bool           `json:"needsSpecialAssistance"`
	DeliveredFood          bool           `json:"deliveredFood"`
	Role                   Role           `json:"role"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// RegistrationInput is the sign-up form.
// CPF may be formatted; it is normalized before anything else happens.
type RegistrationInput struct {
	FullName               string         `json:"fullName"`
	CPF                    string         `json:"cpf"`
	RG                     string         `json:"rg"`
	Department             Department     `json:"department"`
	MotherName             string         `json:"motherName"`
	Address                string         `json:"address"`
	Phone                  string         `json:"phone"`
	Email                  string         `json:"email"`
	University             string         `json:"university"`
	Course                 string         `json:"course"`
	Semester               int            `json:"semester"`
	Period                 StudyPeriod    `json:"period"`
	ChosenArea             InternshipArea `json:"chosenArea"`
	ChosenCity             InternshipCity `json:"chosenCity"`
	IsAfroDescendant       bool           `json:"isAfroDescendant"`
	NeedsSpecialAssistance bool           `json:"needsSpecialAssistance"`

	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// CandidateUpdate is a partial update of a candidate record.
// Only non-nil fields are applied. CPF, password and role cannot be changed this way.
type CandidateUpdate struct {
	FullName               *string         `json:"fullName,omitempty"`
	RG                     *string         `json:"rg,omitempty"`
	Department             *Department     `json:"department,omitempty"`
	MotherName             *string         `json:"motherName,omitempty"`
	Address                *string         `json:"address,omitempty"`
	Phone                  *string         `json:"phone,omitempty"`
	Email                  *string         `json:"email,omitempty"`
	University             *string         `json:"university,omitempty"`
	Course                 *string         `json:"course,omitempty"`
	Semester               *int            `json:"semester,omitempty"`
	Period                 *StudyPeriod    `json:"period,omitempty"`
	ChosenArea             *InternshipArea `json:"chosenArea,omitempty"`
	ChosenCity             *InternshipCity `json:"chosenCity,omitempty"`
	IsAfroDescendant       *bool           `json:"isAfroDescendant,omitempty"`
	NeedsSpecialAssistance *bool           `json:"needsSpecialAssistance,omitempty"`
	DeliveredFood          *bool           `json:"deliveredFood,omitempty"`
}

// Apply merges the non-nil fields of u into c.
func (u CandidateUpdate) Apply(c *CandidateRecord) {
	if u.FullName != nil {
		c.FullName = *u.FullName
	}
	if u.RG != nil {
		c.RG = *u.RG
	}
	if u.Department != nil {
		c.Department = *u.Department
	}
	if u.MotherName != nil {
		c.MotherName = *u.MotherName
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.University != nil {
		c.University = *u.University
	}
	if u.Course != nil {
		c.Course = *u.Course
	}
	if u.Semester != nil {
		c.Semester = *u.Semester
	}
	if u.Period != nil {
		c.Period = *u.Period
	}
	if u.ChosenArea != nil {
		c.ChosenArea = *u.ChosenArea
	}
	if u.ChosenCity != nil {
		c.ChosenCity = *u.ChosenCity
	}
	if u.IsAfroDescendant != nil {
		c.IsAfroDescendant = *u.IsAfroDescendant
	}
	if u.NeedsSpecialAssistance != nil {
		c.NeedsSpecialAssistance = *u.NeedsSpecialAssistance
	}
	if u.DeliveredFood != nil {
		c.DeliveredFood = *u.DeliveredFood
	}
}

// IsEmpty reports whether the update carries no fields.
func (u CandidateUpdate) IsEmpty() bool {
	return u == CandidateUpdate{}
}
