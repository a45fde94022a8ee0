package repository

import "errors"

// ErrNotFound 实体不存在（按 id 或 slug 查询无结果）
var ErrNotFound = errors.New("记录不存在")

// ErrEmailTaken 邮箱已被其他用户占用
var ErrEmailTaken = errors.New("邮箱已被占用")
