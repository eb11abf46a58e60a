// Package auth issues and checks the bearer tokens of the HTTP API and
// limits request rates per client address.
package auth

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"Beamcalc/internal/config"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
)

type contextKey string

const subjectKey contextKey = "subject"

// CookieName is accepted as a token source for browser clients.
const CookieName = "session_token"

type Authenv struct {
	JWTkey []byte
	Issuer string
	TTL    time.Duration
	now    func() time.Time
}

func New(cfg config.Auth) *Authenv {
	return &Authenv{JWTkey: []byte(cfg.TokenKey), Issuer: cfg.Issuer, TTL: cfg.TokenTTL, now: time.Now}
}

func (env *Authenv) clock() time.Time {
	if env.now == nil {
		return time.Now()
	}
	return env.now()
}

// Issue signs a token for subject that expires after TTL.
func (env *Authenv) Issue(subject string) (string, time.Time, error) {
	if len(env.JWTkey) == 0 {
		return "", time.Time{}, errors.Auth("token key is not configured")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", time.Time{}, errors.Auth("token subject is required")
	}
	now := env.clock()
	exp := now.Add(env.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    env.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(env.JWTkey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(errors.TypeAuth, "sign token", err)
	}
	return signed, exp, nil
}

// Verify returns the subject of a valid token.
func (env *Authenv) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(env.clock),
	}
	if env.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(env.Issuer))
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return env.JWTkey, nil
	}, opts...)
	if err != nil {
		return "", errors.Wrap(errors.TypeAuth, "invalid token", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.Auth("invalid token")
	}
	return claims.Subject, nil
}

func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, value, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value)
		}
		return ""
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token and stores the
// token subject in the request context.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := tokenFrom(r)
		if raw == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="beamcalc"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		subject, err := env.Verify(raw)
		if err != nil {
			logging.Debug("token rejected", zap.String("path", r.URL.Path), zap.Error(err))
			w.Header().Set("WWW-Authenticate", `Bearer realm="beamcalc", error="invalid_token"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, subject)))
	})
}

// Subject is the token subject stored by AuthMiddleware.
func Subject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	return s, ok
}

// LimiterIdle is how long a client keeps its limiter without sending a
// request.
const LimiterIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:  make(map[string]*visitor),
		r:    r,
		b:    b,
		idle: LimiterIdle,
		now:  time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.idle {
		i.sweep(now)
	}
	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops clients idle for at least i.idle. Callers hold i.mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) >= i.idle {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// Clients is the number of addresses currently tracked.
func (i *IPRateLimiter) Clients() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// clientIP drops the port so every connection of a client shares a limiter.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !i.getLimiter(ip).Allow() {
			logging.Warn("rate limited", zap.String("ip", ip), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
