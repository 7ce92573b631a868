package handlers

import "strconv"

// parsePagination 解析可选的 page/limit 查询参数。
// 不传参数时返回 limit = -1 ，表示列出全部
func parsePagination(pageStr, limitStr string) (limit, offset int) {
	if limitStr == "" {
		return -1, 0
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return -1, 0
	}

	// 页码从 1 开始
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	return limit, (page - 1) * limit
}
