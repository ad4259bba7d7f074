// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization level of a candidate account.
type Role string

const (
	// RoleCandidate is assigned to every self-registered account.
	RoleCandidate Role = "candidate"
	// RoleAdministrator can manage candidates and program settings.
	RoleAdministrator Role = "administrator"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleCandidate || r == RoleAdministrator
}

// StudyPeriod is the shift in which the candidate attends university.
type StudyPeriod string

const (
	StudyPeriodMorning   StudyPeriod = "morning"
	StudyPeriodAfternoon StudyPeriod = "afternoon"
	StudyPeriodNight     StudyPeriod = "night"
)

// IsValid reports whether p is a known study period.
func (p StudyPeriod) IsValid() bool {
	switch p {
	case StudyPeriodMorning, StudyPeriodAfternoon, StudyPeriodNight:
		return true
	}
	return false
}

// InternshipArea is the field of work the candidate applies for.
type InternshipArea string

const (
	AreaAdministration InternshipArea = "administration"
	AreaBiblioteconomy InternshipArea = "biblioteconomy"
	AreaContability    InternshipArea = "contability"
	AreaLaw            InternshipArea = "law"
	AreaComputers      InternshipArea = "computers"
)

// IsValid reports whether a is a known internship area.
func (a InternshipArea) IsValid() bool {
	switch a {
	case AreaAdministration, AreaBiblioteconomy, AreaContability, AreaLaw, AreaComputers:
		return true
	}
	return false
}

// InternshipCity is the city of the office the candidate applies to.
type InternshipCity string

const (
	CityBelem    InternshipCity = "Belém"
	CityMaraba   InternshipCity = "Marabá"
	CitySantarem InternshipCity = "Santarém"
)

// IsValid reports whether c is a city with an open program.
func (c InternshipCity) IsValid() bool {
	switch c {
	case CityBelem, CityMaraba, CitySantarem:
		return true
	}
	return false
}

// Department is the public-security body the candidate is linked to.
type Department string

const (
	DepartmentCivilPolice Department = "Polícia Civil"
	DepartmentSSP         Department = "SSP"
)

// IsValid reports whether d is a known department.
func (d Department) IsValid() bool {
	return d == DepartmentCivilPolice || d == DepartmentSSP
}

// FlowState is the position of a user inside an authentication flow.
type FlowState string

const (
	StateAnonymous       FlowState = "anonymous"
	StateAuthenticating  FlowState = "authenticating"
	StateAuthenticated   FlowState = "authenticated"
	StateRegistering     FlowState = "registering"
	StateRequestingReset FlowState = "requesting_reset"
	StateTokenIssued     FlowState = "token_issued"
	StateValidating      FlowState = "validating"
	StateResetting       FlowState = "resetting"
	StateReset           FlowState = "reset"
	StateResetFailed     FlowState = "reset_failed"
)
