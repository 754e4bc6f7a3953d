package rental

import (
	"fmt"
	"time"
)

// Status 租赁记录状态枚举。
type Status string

const (
	StatusActive    Status = "ACTIVE"    // 车辆已租出，尚未归还
	StatusCompleted Status = "COMPLETED" // 已归还（终态）
)

// AllowTransition 定义租赁记录状态机的允许流转关系。
// 单向：ACTIVE -> COMPLETED，终态不再流转。
var AllowTransition = map[Status][]Status{
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// applyTransition 对记录应用状态变更，并维护归还时间。
// 仅由账本在归还路径调用。
func applyTransition(r *Record, to Status, now time.Time) error {
	if r == nil {
		return fmt.Errorf("rental record is nil")
	}
	from := r.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid rental status transition: %s -> %s", from, to)
	}

	r.Status = to

	if to == StatusCompleted && r.ReturnedAt == nil {
		t := now
		r.ReturnedAt = &t
	}
	return nil
}
