package sqltarget

import (
	"net/url"
	"strings"
)

var secretKeys = []string{"password", "pass", "pwd"}

// RedactDSN masks credentials in a URL or keyword/value DSN. A DSN with no
// recognisable credential field, such as a sqlite path, is masked entirely.
func RedactDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return ""
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		if u.User != nil {
			u.User = url.UserPassword(u.User.Username(), "****")
		}
		q := u.Query()
		for _, k := range secretKeys {
			if q.Has(k) {
				q.Set(k, "****")
			}
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	fields := strings.Fields(dsn)
	masked := false
	for i, f := range fields {
		key, _, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		for _, secret := range secretKeys {
			if strings.EqualFold(key, secret) {
				fields[i] = key + "=****"
				masked = true
			}
		}
	}
	if masked {
		return strings.Join(fields, " ")
	}
	return "****"
}
