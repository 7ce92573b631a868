package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

type Session struct {
	Subject string // 用户的 entity id
	Expires int64  // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseSession(tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 解析，过期与签名错误都会在这里返回
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	session := &Session{}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sub, subOk := claims["sub"].(string)
		exp, expOk := claims["exp"].(float64)
		if !subOk || !expOk {
			return nil, fmt.Errorf("malformed token payload")
		}
		session.Subject = sub
		session.Expires = int64(exp)
	} else {
		return nil, fmt.Errorf("invalid token")
	}

	return session, nil
}

func (j *JWT) SignToken(session *Session) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sub": session.Subject,
		"exp": session.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
