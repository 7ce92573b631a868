package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
		PlaylistPath          string // 歌单描述文件目录树的根路径，启动时导入、退出时导出
		CORSDomain            string // 允许跨域的域名，为空时不启用 CORS
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于产生 JWT 签名，更新会导致旧有会话失效
		AdminUser          string        // 初始管理员用户名（空库启动时创建）
		AdminPassword      string        // 初始管理员密码，同时是重置流程恢复到的默认密码
		TokenExpire        time.Duration // 登录签发的令牌有效期
	}
}
