package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

const (
	usersPath = "/users"
	userPath  = "/users/{id}"
)

type httpUsersAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUsersAdapter constructs an HTTP/REST implementation of [UsersAPI].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns [ErrInvalidAddress] if cfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPUsersAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UsersAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpUsersAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [UsersAPI]. It POSTs user to POST /users.
func (h *httpUsersAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// ListUsers implements [UsersAPI]. It calls GET /users.
func (h *httpUsersAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [UsersAPI]. It calls GET /users/{id}.
func (h *httpUsersAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&user).
		Get(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser implements [UsersAPI]. It PUTs the non-nil fields of patch to
// PUT /users/{id}.
func (h *httpUsersAdapter) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	var updated models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(patch).
		SetResult(&updated).
		Put(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [UsersAPI]. It calls DELETE /users/{id}.
func (h *httpUsersAdapter) DeleteUser(ctx context.Context, id string) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete(userPath)
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}
