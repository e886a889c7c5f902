package app_service

import "errors"

// 管道终止错误
var ErrNotAuthenticated = errors.New("用户未登录")

// ModerationBlockedError 提交命中违禁词
// 错误信息直接带上命中的词，前端原样展示给提交者
type ModerationBlockedError struct {
	Keyword string
}

func (e *ModerationBlockedError) Error() string {
	return "内容包含违禁词：" + e.Keyword
}

// PersistenceError 主写入失败
// 驱动层原始错误只进日志，不泄漏给客户端
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "内容保存失败"
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
