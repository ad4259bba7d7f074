package service

import (
	"context"

	"github.com/MKhiriev/intern-portal/models"
)

type profileService struct {
	credentials CredentialService
	policy      EditPolicy
}

func NewProfileService(credentials CredentialService, policy EditPolicy) ProfileService {
	return &profileService{credentials: credentials, policy: policy}
}

// UpdateOwnProfile applies a candidate's edit of their own record while
// administrators allow it. The food delivery mark is administrator-only.
func (s *profileService) UpdateOwnProfile(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error) {
	if !s.policy.Current().AllowCandidateEdit {
		return models.CandidateProfile{}, ErrEditingDisabled
	}
	if upd.DeliveredFood != nil {
		return models.CandidateProfile{}, ErrForbidden
	}
	return s.credentials.Update(ctx, cpf, upd)
}
