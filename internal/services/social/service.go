package social

import (
	"context"
	"sort"
	"strings"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
	"github.com/vocabquest/vocabquest-go/internal/dependencies/random"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

const (
	// RequestIDLength is the length of generated friend request IDs
	RequestIDLength = 12
	// RequestIDAlphabet is the characters used in friend request IDs
	RequestIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Service manages the friends directory: user search, friend
// requests, and each user's friends list
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// New creates a new SocialService
func New(storage storage.Storage, clock clock.Clock, random random.Random) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// SearchUsers finds users whose display name contains the query,
// case-insensitively. The searching user is excluded from results.
func (s *Service) SearchUsers(ctx context.Context, searcherID model.UserID, query string) ([]*model.User, error) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil, nil
	}

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*model.User
	for _, u := range users {
		if u.ID == searcherID {
			continue
		}
		if strings.Contains(strings.ToLower(u.DisplayName), query) {
			matches = append(matches, u)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DisplayName < matches[j].DisplayName
	})

	return matches, nil
}

// SendFriendRequest creates a pending request from one user to another
func (s *Service) SendFriendRequest(ctx context.Context, fromID, toID model.UserID) (*model.FriendRequest, error) {
	if fromID == toID {
		return nil, model.ErrSelfFriendRequest
	}

	from, err := s.storage.GetUser(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if _, err := s.storage.GetUser(ctx, toID); err != nil {
		return nil, err
	}

	if from.IsFriend(toID) {
		return nil, model.ErrAlreadyFriends
	}

	// A pending request in either direction blocks a new one
	existing, err := s.storage.ListFriendRequestsForUser(ctx, fromID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.Status != model.FriendRequestPending {
			continue
		}
		if (r.FromUserID == fromID && r.ToUserID == toID) ||
			(r.FromUserID == toID && r.ToUserID == fromID) {
			return nil, model.ErrRequestPending
		}
	}

	req := &model.FriendRequest{
		ID:           model.FriendRequestID("fr_" + s.random.String(RequestIDLength, RequestIDAlphabet)),
		FromUserID:   fromID,
		FromUserName: from.DisplayName,
		ToUserID:     toID,
		Status:       model.FriendRequestPending,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveFriendRequest(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// AcceptFriendRequest resolves a pending request and links both users
// as friends. Only the recipient may accept.
func (s *Service) AcceptFriendRequest(ctx context.Context, userID model.UserID, requestID model.FriendRequestID) (*model.FriendRequest, error) {
	req, err := s.resolvableRequest(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	req.Status = model.FriendRequestAccepted
	req.ResolvedAt = &now

	if err := s.storage.SaveFriendRequest(ctx, req); err != nil {
		return nil, err
	}

	if err := s.addFriend(ctx, req.FromUserID, req.ToUserID); err != nil {
		return nil, err
	}
	if err := s.addFriend(ctx, req.ToUserID, req.FromUserID); err != nil {
		return nil, err
	}

	return req, nil
}

// DeclineFriendRequest resolves a pending request without linking the
// users. Only the recipient may decline.
func (s *Service) DeclineFriendRequest(ctx context.Context, userID model.UserID, requestID model.FriendRequestID) (*model.FriendRequest, error) {
	req, err := s.resolvableRequest(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	req.Status = model.FriendRequestDeclined
	req.ResolvedAt = &now

	if err := s.storage.SaveFriendRequest(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// ListFriends returns the user's friends as full profiles
func (s *Service) ListFriends(ctx context.Context, userID model.UserID) ([]*model.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]*model.User, 0, len(user.Friends))
	for _, id := range user.Friends {
		friend, err := s.storage.GetUser(ctx, id)
		if err != nil {
			// A friend whose account is gone is silently skipped
			continue
		}
		friends = append(friends, friend)
	}

	return friends, nil
}

// ListIncomingRequests returns pending requests addressed to the user,
// newest first
func (s *Service) ListIncomingRequests(ctx context.Context, userID model.UserID) ([]*model.FriendRequest, error) {
	requests, err := s.storage.ListFriendRequestsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var incoming []*model.FriendRequest
	for _, r := range requests {
		if r.ToUserID == userID && r.Status == model.FriendRequestPending {
			incoming = append(incoming, r)
		}
	}

	sort.Slice(incoming, func(i, j int) bool {
		return incoming[i].CreatedAt.After(incoming[j].CreatedAt)
	})

	return incoming, nil
}

func (s *Service) resolvableRequest(ctx context.Context, userID model.UserID, requestID model.FriendRequestID) (*model.FriendRequest, error) {
	req, err := s.storage.GetFriendRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.ToUserID != userID {
		return nil, model.ErrFriendRequestNotFound
	}
	if req.Status != model.FriendRequestPending {
		return nil, model.ErrRequestResolved
	}

	return req, nil
}

func (s *Service) addFriend(ctx context.Context, userID, friendID model.UserID) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsFriend(friendID) {
		return nil
	}

	user.Friends = append(user.Friends, friendID)
	return s.storage.SaveUser(ctx, user)
}

// Interface for dependency injection
type ServiceInterface interface {
	SearchUsers(ctx context.Context, searcherID model.UserID, query string) ([]*model.User, error)
	SendFriendRequest(ctx context.Context, fromID, toID model.UserID) (*model.FriendRequest, error)
	AcceptFriendRequest(ctx context.Context, userID model.UserID, requestID model.FriendRequestID) (*model.FriendRequest, error)
	DeclineFriendRequest(ctx context.Context, userID model.UserID, requestID model.FriendRequestID) (*model.FriendRequest, error)
	ListFriends(ctx context.Context, userID model.UserID) ([]*model.User, error)
	ListIncomingRequests(ctx context.Context, userID model.UserID) ([]*model.FriendRequest, error)
}

var _ ServiceInterface = (*Service)(nil)
