// Package auth 实现 bearer token 的编解码。
//
// token 格式：base64("userId:email:name:role")，无签名、无过期时间。
// 这是对接的历史格式，任何人都能伪造 token —— 已知安全缺陷，保持原样。
package auth

import (
	"encoding/base64"
	"strings"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthContext 每次请求从 token 还原出的身份，不落库。
type AuthContext struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// DecodeToken 解码失败只返回 ok=false，不向上抛错。
// 要求恰好 4 段且每段非空。
func DecodeToken(token string) (*AuthContext, bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return nil, false
	}
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return &AuthContext{
		UserID: parts[0],
		Email:  parts[1],
		Name:   parts[2],
		Role:   parts[3],
	}, true
}

// EncodeToken DecodeToken 的逆操作。
func EncodeToken(ac AuthContext) string {
	payload := strings.Join([]string{ac.UserID, ac.Email, ac.Name, ac.Role}, ":")
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// ExtractToken 从 Authorization 头取 token。
// 只接受 "Bearer <token>"（scheme 大小写不敏感，必须恰好两段）。
func ExtractToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}
