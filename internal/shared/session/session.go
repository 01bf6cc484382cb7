package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anstar94/member-api-server/internal/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
)

// MemberNoKey is the fixed session key holding the logged-in member number
const MemberNoKey = "memberNo"

// Session is the narrow view of a request session the services need.
// gin-contrib's sessions.Session satisfies it; tests can use a plain map-backed fake.
type Session interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Save() error
}

// NewStore builds the session store configured for this deployment.
// With SESSION_REDIS_ADDR set the session data lives in Redis keyed by the
// session identifier; otherwise a signed cookie store is used.
func NewStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	if cfg.Session.RedisAddr != "" {
		redisStore, err := redis.NewStore(10, "tcp", cfg.Session.RedisAddr, "", []byte(cfg.Session.Secret))
		if err != nil {
			return nil, fmt.Errorf("세션 Redis 스토어 생성 실패: %w", err)
		}
		store = redisStore
		slog.Info("세션 스토어 초기화", "type", "redis", "addr", cfg.Session.RedisAddr)
	} else {
		store = cookie.NewStore([]byte(cfg.Session.Secret))
		slog.Info("세션 스토어 초기화", "type", "cookie")
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	return store, nil
}

// MemberNo reads the member number stored by login, 0 when absent.
func MemberNo(sess Session) uint32 {
	switch v := sess.Get(MemberNoKey).(type) {
	case uint32:
		return v
	case int:
		return uint32(v)
	case int64:
		return uint32(v)
	default:
		return 0
	}
}
