package telegram

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"

	"time-vault-relay/internal/relay"
)

// SecretHeader carries the secret_token registered with setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// SecurityConfig holds the webhook's request checks.
type SecurityConfig struct {
	Secret string
	// AllowedIPs lists exact IPs or CIDR ranges. Empty disables the check.
	AllowedIPs []string
}

type securityValidator struct {
	secret []byte
	ips    []net.IP
	nets   []*net.IPNet
}

func newSecurityValidator(cfg SecurityConfig) *securityValidator {
	v := &securityValidator{secret: []byte(cfg.Secret)}
	for _, allowed := range cfg.AllowedIPs {
		if strings.Contains(allowed, "/") {
			if _, ipNet, err := net.ParseCIDR(allowed); err == nil {
				v.nets = append(v.nets, ipNet)
			}
			continue
		}
		if ip := net.ParseIP(allowed); ip != nil {
			v.ips = append(v.ips, ip)
		}
	}
	return v
}

// ValidateSecret compares the secret header in constant time.
// An empty configured secret never matches.
func (v *securityValidator) ValidateSecret(token string) error {
	if len(v.secret) == 0 || subtle.ConstantTimeCompare([]byte(token), v.secret) != 1 {
		return relay.ErrInvalidSecret
	}
	return nil
}

// ValidateIPAddress checks if request IP is allowed.
func (v *securityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.ips) == 0 && len(v.nets) == 0 {
		return nil
	}

	ip := net.ParseIP(extractIP(r))
	if ip == nil {
		return relay.ErrIPNotAllowed
	}
	for _, allowed := range v.ips {
		if allowed.Equal(ip) {
			return nil
		}
	}
	for _, ipNet := range v.nets {
		if ipNet.Contains(ip) {
			return nil
		}
	}
	return relay.ErrIPNotAllowed
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
