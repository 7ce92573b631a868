package store

import "errors"

// 写入时名称与其他记录冲突
var ErrNameConflict = errors.New("name already taken")
