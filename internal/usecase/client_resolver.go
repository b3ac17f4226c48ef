package usecase

import (
	"context"
	"detailshop/internal/domain/entities"
	"detailshop/internal/infrastructure/metrics"
	"detailshop/internal/usecase/interfaces"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"
)

var ErrClientNotFound = errors.New("client not found")

const minClientNameLength = 2

// Resolution strategies, in the order they are tried.
const (
	strategyExplicit  = "explicit"
	strategyEmail     = "email"
	strategyNamePhone = "name_phone"
	strategyName      = "name"
)

// ClientLookup is the client part of an assessment request. ClientID, when set,
// is an explicit selection and bypasses matching.
type ClientLookup struct {
	ClientID string
	Name     string
	Email    string
	Phone    string
}

func (l ClientLookup) validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(l.Name)) < minClientNameLength {
		return invalid("client.name", "must have at least 2 characters")
	}
	return nil
}

// IClientResolver maps client details onto an existing client of an organization.
//
// Resolution never creates a client: a miss is ErrClientNotFound.
type IClientResolver interface {
	Resolve(ctx context.Context, orgID string, lookup ClientLookup) (entities.Client, error)
}

type ClientResolver struct {
	repo interfaces.IClientRepository
}

var _ IClientResolver = (*ClientResolver)(nil)

func NewClientResolver(repo interfaces.IClientRepository) *ClientResolver {
	return &ClientResolver{repo: repo}
}

// Resolve tries, first match wins:
//  1. explicit ClientID (must exist in orgID)
//  2. normalized email
//  3. normalized name and phone together
//  4. normalized name alone
//
// Steps whose inputs are empty are skipped. Repository errors abort resolution.
func (r *ClientResolver) Resolve(ctx context.Context, orgID string, lookup ClientLookup) (entities.Client, error) {
	if err := lookup.validate(); err != nil {
		return entities.Client{}, err
	}

	c, strategy, err := r.resolve(ctx, orgID, lookup)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		slog.InfoContext(ctx, "[client][resolver] no match", "org_id", orgID)
		return entities.Client{}, ErrClientNotFound
	}

	metrics.ClientResolutions.WithLabelValues(strategy).Inc()
	slog.DebugContext(ctx, "[client][resolver] resolved", "org_id", orgID, "client_id", c.ID, "strategy", strategy)
	return c, nil
}

func (r *ClientResolver) resolve(ctx context.Context, orgID string, lookup ClientLookup) (entities.Client, string, error) {
	if id := strings.TrimSpace(lookup.ClientID); id != "" {
		c, err := r.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Client{}, "", err
		}
		if c.OrgID != orgID {
			if c.ID != "" {
				slog.WarnContext(ctx, "[client][resolver] explicit client belongs to another organization", "org_id", orgID, "client_id", id)
			}
			return entities.Client{}, strategyExplicit, nil
		}
		return c, strategyExplicit, nil
	}

	nameKey := entities.NormalizeName(lookup.Name)
	emailKey := entities.NormalizeEmail(lookup.Email)
	phoneKey := entities.NormalizePhone(lookup.Phone)

	if emailKey != "" {
		c, err := r.repo.FindByEmail(ctx, orgID, emailKey)
		if err != nil || c.ID != "" {
			return c, strategyEmail, err
		}
	}
	if phoneKey != "" {
		c, err := r.repo.FindByNameAndPhone(ctx, orgID, nameKey, phoneKey)
		if err != nil || c.ID != "" {
			return c, strategyNamePhone, err
		}
	}
	c, err := r.repo.FindByName(ctx, orgID, nameKey)
	return c, strategyName, err
}
