package das

import (
	"regexp"
	"strings"
)

// Suffix is the top level token of every account
const Suffix = "bit"

var supportedAccountRe = regexp.MustCompile(`.+\.` + Suffix)

// IsSupportedAccount reports whether account is syntactically a .bit account.
// It does not check registration.
func IsSupportedAccount(account string) bool {
	if !supportedAccountRe.MatchString(account) {
		return false
	}
	for _, segment := range strings.Split(account, ".") {
		if segment == "" {
			return false
		}
	}
	return true
}

// ToDottedStyle turns main#sub.bit into sub.main.bit. Anything else is
// returned unchanged.
func ToDottedStyle(account string) string {
	if !IsSupportedAccount(account) || !strings.Contains(account, "#") {
		return account
	}

	parts := strings.Split(account, ".")
	names := strings.Split(parts[0], "#")
	if len(names) < 2 {
		return account
	}
	main, sub := names[0], names[1]

	return sub + "." + main + "." + parts[1]
}

// ToHashedStyle turns sub.main.bit into main#sub.bit. Anything else is
// returned unchanged, including accounts with more than one sub level.
func ToHashedStyle(account string) string {
	if !IsSupportedAccount(account) || strings.Contains(account, "#") {
		return account
	}

	parts := strings.Split(account, ".")
	if len(parts) != 3 {
		return account
	}
	sub, main, suffix := parts[0], parts[1], parts[2]

	return main + "#" + sub + "." + suffix
}
