package validate

import "regexp"

var addressRe = regexp.MustCompile(`^G[A-Z0-9]{55}$`)

// IsPayoutAddress checks the external network address format (ed25519 public
// key in its canonical G... encoding).
func IsPayoutAddress(s string) bool {
	return addressRe.MatchString(s)
}
