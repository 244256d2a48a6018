package internal

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const hostedDomain = ".supabase.co"

// keyInfo holds the claims of an API key issued as a JWT. The signature is
// never checked; the server does that.
type keyInfo struct {
	Role      string
	Ref       string
	ExpiresAt time.Time
}

func inspectKey(key string) (*keyInfo, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return nil, false
	}

	info := &keyInfo{}
	info.Role, _ = claims["role"].(string)
	info.Ref, _ = claims["ref"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}

// keyHints explains the usual reasons a hosted project rejects a key.
func keyHints(cfg Config, now time.Time) []string {
	info, ok := inspectKey(cfg.Key)
	if !ok {
		return nil
	}

	hints := []string{}
	if !info.ExpiresAt.IsZero() && now.After(info.ExpiresAt) {
		hints = append(hints, fmt.Sprintf("The key expired at %s.", info.ExpiresAt.UTC().Format(time.RFC3339)))
	}
	if info.Ref != "" {
		if u, err := url.Parse(cfg.URL); err == nil {
			host := u.Hostname()
			if strings.HasSuffix(host, hostedDomain) && host != info.Ref+hostedDomain {
				hints = append(hints, fmt.Sprintf("The key was issued for project '%s' but the URL points at '%s'.", info.Ref, host))
			}
		}
	}
	if info.Role == "anon" {
		hints = append(hints, "The key has the 'anon' role, so row-level security policies apply to this table.")
	}
	return hints
}
