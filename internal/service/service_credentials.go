// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/internal/crypto"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/internal/validators"
	"github.com/MKhiriev/intern-portal/models"
)

// credentialService stores candidates in a CandidateRepository and keeps
// only bcrypt hashes of their passwords.
type credentialService struct {
	candidates store.CandidateRepository
	hasher     crypto.PasswordHasher
	validator  validators.Validator

	now func() time.Time
}

// NewCredentialService constructs a CredentialService. Updates are checked
// with validator before they reach the store.
func NewCredentialService(candidates store.CandidateRepository, hasher crypto.PasswordHasher, validator validators.Validator) CredentialService {
	return &credentialService{
		candidates: candidates,
		hasher:     hasher,
		validator:  validator,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the candidate account. The raw password never reaches
// the store; the new account is always a candidate with deliveredFood unset.
//
// Returns ErrInvalidCPF, ErrConflict when the CPF is taken, or a wrapped
// ErrUnavailable.
func (s *credentialService) Register(ctx context.Context, in models.RegistrationInput) (models.CandidateProfile, error) {
	log := logger.FromContext(ctx)

	key := cpf.Clean(in.CPF)
	if !cpf.IsValid(key) {
		return models.CandidateProfile{}, ErrInvalidCPF
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.CandidateProfile{}, hashError(err)
	}

	now := s.now()
	rec := models.CandidateRecord{
		FullName:               validators.NormalizeText(in.FullName),
		CPF:                    key,
		RG:                     strings.TrimSpace(in.RG),
		Department:             in.Department,
		MotherName:             validators.NormalizeText(in.MotherName),
		Address:                validators.NormalizeText(in.Address),
		Phone:                  strings.TrimSpace(in.Phone),
		Email:                  strings.TrimSpace(in.Email),
		University:             validators.NormalizeText(in.University),
		Course:                 validators.NormalizeText(in.Course),
		Semester:               in.Semester,
		Period:                 in.Period,
		ChosenArea:             in.ChosenArea,
		ChosenCity:             in.ChosenCity,
		IsAfroDescendant:       in.IsAfroDescendant,
		NeedsSpecialAssistance: in.NeedsSpecialAssistance,
		DeliveredFood:          false,
		PasswordHash:           hash,
		Role:                   models.RoleCandidate,
		SchemaVersion:          models.CandidateSchemaVersion,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := s.candidates.Create(ctx, rec)
	if errors.Is(err, store.ErrCandidateAlreadyExists) {
		log.Info().Str("cpf", cpf.Mask(key)).Msg("registration for taken cpf")
		return models.CandidateProfile{}, ErrConflict
	}
	if err != nil {
		log.Err(err).Str("cpf", cpf.Mask(key)).Msg("candidate creation failed")
		return models.CandidateProfile{}, unavailable(err)
	}

	log.Info().Str("cpf", cpf.Mask(key)).Msg("candidate registered")
	return created.Profile(), nil
}

// Authenticate checks a CPF and password pair.
//
// Returns ErrNotFound or ErrInvalidCredentials; callers facing users should
// not tell the two apart. A missing account still costs one bcrypt
// comparison.
func (s *credentialService) Authenticate(ctx context.Context, cpfValue, password string) (models.CandidateProfile, error) {
	log := logger.FromContext(ctx)
	key := cpf.Clean(cpfValue)

	rec, err := s.candidates.Get(ctx, key)
	if errors.Is(err, store.ErrCandidateNotFound) {
		crypto.BurnVerify(s.hasher, password)
		return models.CandidateProfile{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("cpf", cpf.Mask(key)).Msg("candidate lookup failed")
		return models.CandidateProfile{}, unavailable(err)
	}

	ok, err := s.hasher.Verify(password, rec.PasswordHash)
	if err != nil {
		log.Err(err).Str("cpf", cpf.Mask(key)).Msg("stored password hash is unusable")
		return models.CandidateProfile{}, ErrInvalidCredentials
	}
	if !ok {
		return models.CandidateProfile{}, ErrInvalidCredentials
	}

	return rec.Profile(), nil
}

func (s *credentialService) Get(ctx context.Context, cpfValue string) (models.CandidateProfile, error) {
	rec, err := s.candidates.Get(ctx, cpf.Clean(cpfValue))
	if err != nil {
		return models.CandidateProfile{}, mapCandidateError(err)
	}
	return rec.Profile(), nil
}

func (s *credentialService) Exists(ctx context.Context, cpfValue string) (bool, error) {
	_, err := s.candidates.Get(ctx, cpf.Clean(cpfValue))
	if errors.Is(err, store.ErrCandidateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, unavailable(err)
	}
	return true, nil
}

func (s *credentialService) List(ctx context.Context) ([]models.CandidateProfile, error) {
	records, err := s.candidates.List(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	profiles := make([]models.CandidateProfile, 0, len(records))
	for _, rec := range records {
		profiles = append(profiles, rec.Profile())
	}
	return profiles, nil
}

// Update merges the non-nil fields of upd into the record. CPF, password
// hash and role are out of its reach.
func (s *credentialService) Update(ctx context.Context, cpfValue string, upd models.CandidateUpdate) (models.CandidateProfile, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.CandidateProfile{}, err
	}

	rec, err := s.candidates.Update(ctx, cpf.Clean(cpfValue), func(rec *models.CandidateRecord) error {
		upd.Apply(rec)
		rec.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return models.CandidateProfile{}, mapCandidateError(err)
	}
	return rec.Profile(), nil
}

func (s *credentialService) SetRole(ctx context.Context, cpfValue string, role models.Role) (models.CandidateProfile, error) {
	if !role.IsValid() {
		return models.CandidateProfile{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	rec, err := s.candidates.Update(ctx, cpf.Clean(cpfValue), func(rec *models.CandidateRecord) error {
		rec.Role = role
		rec.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return models.CandidateProfile{}, mapCandidateError(err)
	}

	logger.FromContext(ctx).Info().Str("cpf", cpf.Mask(rec.CPF)).Str("role", string(role)).Msg("candidate role changed")
	return rec.Profile(), nil
}

func (s *credentialService) ResetPassword(ctx context.Context, cpfValue, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return hashError(err)
	}

	_, err = s.candidates.Update(ctx, cpf.Clean(cpfValue), func(rec *models.CandidateRecord) error {
		rec.PasswordHash = hash
		rec.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return mapCandidateError(err)
	}
	return nil
}

func (s *credentialService) Delete(ctx context.Context, cpfValue string) error {
	if err := s.candidates.Delete(ctx, cpf.Clean(cpfValue)); err != nil {
		return mapCandidateError(err)
	}
	return nil
}

func mapCandidateError(err error) error {
	switch {
	case errors.Is(err, store.ErrCandidateNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrCandidateAlreadyExists):
		return ErrConflict
	default:
		return unavailable(err)
	}
}

// hashError reports hasher input errors against the password field.
func hashError(err error) error {
	fields := validators.FieldErrors{}
	switch {
	case errors.Is(err, crypto.ErrPasswordTooLong):
		fields.Add(validators.FieldPassword, validators.MsgPasswordTooLong)
	case errors.Is(err, crypto.ErrEmptyPassword):
		fields.Add(validators.FieldPassword, validators.MsgRequired)
	default:
		return unavailable(err)
	}
	return fields
}
