package constants

import "time"

const (
	// 未显式配置时签发的令牌有效期
	DefaultTokenDuration = 30 * time.Minute

	// 密码策略认可的特殊字符集
	PasswordSpecialChars = `_-/!@#$%^&*\`

	// 密码最小长度
	PasswordMinLength = 8
)
