package constants

import "time"

const (
	CacheKeyImageInfo = "catalog:image:info:%s" // %s -> image entity id
)

const (
	CacheExpireImageInfo = 1 * time.Hour
)
