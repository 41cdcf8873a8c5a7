package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/liftlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	tokenLength      = 35
	sessionKeyPrefix = "liftlog-session||"
	tokensSetKey     = "liftlog-sessions"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// LoginSession is what a token resolves to.
type LoginSession struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

// Service issues and revokes opaque login tokens kept in redis.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	Now            func() time.Time
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		Now:            time.Now,
	}
}

func (as *Service) TTL() time.Duration {
	return as.ttl
}

// Login creates a session for the user and returns its token.
func (as *Service) Login(ctx context.Context, userID int) (*LoginSession, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	createdAt := as.Now()
	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(userID, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return nil, err
	}

	return &LoginSession{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

// Session resolves a token. Expired and unknown tokens fail.
func (as *Service) Session(ctx context.Context, token string) (*LoginSession, error) {
	session, err := as.readSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if as.Now().Sub(session.CreatedAt) > as.ttl {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// UserID returns the owner of a live session token.
func (as *Service) UserID(ctx context.Context, token string) (int, error) {
	session, err := as.Session(ctx, token)
	if err != nil {
		return 0, err
	}
	return session.UserID, nil
}

// Logout removes the session. It reports whether the token was known.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	if _, err := as.readSession(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := as.remove(ctx, token); err != nil {
		return false, err
	}
	return true, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Tokens whose key already expired in redis are dropped from the set as well.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := as.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := as.readSession(ctx, token)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if now.Sub(session.CreatedAt) > as.ttl {
			log.Debugf("=>\twill clean the session of user %d", session.UserID)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.remove(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
	log.Debugf("=> auth service, scan and clean done, removed %d sessions", len(toRemove))
}

// StartCleaner runs ScanAndClean every interval until ctx is done.
func (as *Service) StartCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			as.ScanAndClean(ctx)
		}
	}
}

func (as *Service) readSession(ctx context.Context, token string) (*LoginSession, error) {
	cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return nil, err
	}
	return &LoginSession{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

func (as *Service) remove(ctx context.Context, token string) error {
	cmdDel := as.redisClient.Del(ctx, sessionKeyPrefix+token)
	if err := cmdDel.Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	return cmdSRem.Err()
}

// session values are stored as "<userID>|<created at unix>"
func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func parseSessionValue(value string) (int, time.Time, error) {
	userIDStr, createdAtStr, found := strings.Cut(value, "|")
	if !found {
		return 0, time.Time{}, fmt.Errorf("malformed session value: %q", value)
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, fmt.Errorf("malformed session user: %q", userIDStr)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session time: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
