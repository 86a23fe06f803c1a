package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/identity-access/session-service/application"
	"alumvote/contexts/identity-access/session-service/domain/entities"
	httptransport "alumvote/contexts/identity-access/session-service/transport/http"
)

type Handler struct {
	Sessions application.Service
	Logger   *slog.Logger
}

func (h Handler) VoterLoginHandler(ctx context.Context, req httptransport.VoterLoginRequest) (httptransport.VoterSessionResponse, error) {
	session, err := h.Sessions.VoterLogin(ctx, req.VoterID, req.PIN)
	if err != nil {
		return httptransport.VoterSessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (h Handler) QuickLoginHandler(ctx context.Context, req httptransport.QuickLoginRequest) (httptransport.VoterSessionResponse, error) {
	session, err := h.Sessions.QuickLogin(ctx, application.QuickLoginInput{
		Name:           req.Name,
		BatchYear:      req.BatchYear,
		CampusChapter:  req.CampusChapter,
		PrivacyConsent: req.PrivacyConsent,
	})
	if err != nil {
		return httptransport.VoterSessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (h Handler) LogoutHandler(ctx context.Context, token string) (httptransport.LogoutResponse, error) {
	if err := h.Sessions.Logout(ctx, token); err != nil {
		return httptransport.LogoutResponse{}, err
	}
	return httptransport.LogoutResponse{OK: true}, nil
}

func (h Handler) MeHandler(ctx context.Context, token string) (httptransport.VoterProfile, error) {
	voter, err := h.Sessions.Authenticate(ctx, token)
	if err != nil {
		return httptransport.VoterProfile{}, err
	}
	return toProfile(voter), nil
}

func (h Handler) AdminLoginHandler(ctx context.Context, req httptransport.AdminLoginRequest) (httptransport.AdminSessionResponse, error) {
	session, err := h.Sessions.AdminLogin(ctx, req.Username, req.Password)
	if err != nil {
		return httptransport.AdminSessionResponse{}, err
	}
	return httptransport.AdminSessionResponse{
		Token:       session.Token,
		Username:    session.Admin.Username,
		DisplayName: session.Admin.DisplayName(),
		IsSuperuser: session.Admin.IsSuperuser,
	}, nil
}

func (h Handler) CreateVoterHandler(ctx context.Context, req httptransport.CreateVoterRequest) (httptransport.CreateVoterResponse, error) {
	created, err := h.Sessions.CreateVoter(ctx, application.CreateVoterInput{
		Name:           req.Name,
		BatchYear:      req.BatchYear,
		CampusChapter:  req.CampusChapter,
		Email:          req.Email,
		Phone:          req.Phone,
		PrivacyConsent: req.PrivacyConsent,
		PIN:            req.PIN,
	})
	if err != nil {
		return httptransport.CreateVoterResponse{}, err
	}
	return httptransport.CreateVoterResponse{
		Voter: toProfile(created.Voter),
		PIN:   created.PIN,
	}, nil
}

func (h Handler) ListVotersHandler(ctx context.Context) (httptransport.VoterListResponse, error) {
	voters, err := h.Sessions.ListVoters(ctx)
	if err != nil {
		return httptransport.VoterListResponse{}, err
	}
	profiles := make([]httptransport.VoterProfile, 0, len(voters))
	for _, voter := range voters {
		profiles = append(profiles, toProfile(voter))
	}
	return httptransport.VoterListResponse{Voters: profiles}, nil
}

func (h Handler) ResetVotersHandler(ctx context.Context, req httptransport.ResetVotersRequest) (httptransport.ResetVotersResponse, error) {
	outcome, err := h.Sessions.ResetVoters(ctx, req.ResetPINs)
	if err != nil {
		return httptransport.ResetVotersResponse{}, err
	}
	resp := httptransport.ResetVotersResponse{
		Count:     outcome.Count,
		ResetPINs: outcome.ResetPINs,
	}
	for _, pin := range outcome.PINs {
		resp.PINs = append(resp.PINs, httptransport.ResetVoterPIN{VoterID: pin.VoterID, PIN: pin.PIN})
	}
	return resp, nil
}

func toSessionResponse(session application.VoterSession) httptransport.VoterSessionResponse {
	return httptransport.VoterSessionResponse{
		Token: session.Token,
		Voter: toProfile(session.Voter),
	}
}

func toProfile(voter entities.Voter) httptransport.VoterProfile {
	return httptransport.VoterProfile{
		ID:            voter.ID,
		VoterID:       voter.VoterID,
		Name:          voter.Name,
		BatchYear:     voter.BatchYear,
		CampusChapter: voter.CampusChapter,
		Email:         voter.Email,
		Phone:         voter.Phone,
		HasVoted:      voter.HasVoted,
		IsActive:      voter.IsActive,
	}
}
