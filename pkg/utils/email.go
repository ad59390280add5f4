package utils

import "regexp"

// 标准 local@domain.tld 形状即可，不做 RFC 级校验。
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(s string) bool { return emailRe.MatchString(s) }
