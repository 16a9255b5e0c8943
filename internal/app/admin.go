package app

import (
	"context"

	"go-outtime/internal/config"
	"go-outtime/internal/invite"
)

// CreateInvite issues an invite outside the HTTP API, for bootstrapping a
// company from the command line.
func CreateInvite(ctx context.Context, cfg *config.Config, companyID, name string) (invite.InviteResponse, error) {
	in, err := Connect(cfg, false)
	if err != nil {
		return invite.InviteResponse{}, err
	}
	defer in.Close()

	svc, err := newServices(in, newRepositories(in))
	if err != nil {
		return invite.InviteResponse{}, err
	}
	return svc.invite.Create(ctx, companyID, invite.CreateInviteRequest{Name: name})
}
