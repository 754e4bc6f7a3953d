package rental

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentledger/rentledger/internal/customer"
	"github.com/rentledger/rentledger/internal/vehicle"
)

// rentalDateLayout 历史记录与收据中使用的时间格式。
const rentalDateLayout = "2006-01-02 15:04"

// Record 一笔租赁交易的快照。除状态流转外不可变；
// 归还后仍保留在已完成分区中，永不销毁。
type Record struct {
	ID         string
	Vehicle    *vehicle.Vehicle
	Customer   *customer.Customer
	Days       int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	ReturnedAt *time.Time
	Status     Status
}

// RentalDate 返回下单时间的展示格式。
func (r *Record) RentalDate() string {
	return r.CreatedAt.Format(rentalDateLayout)
}

// Summary 活跃租赁列表中的单行摘要。
func (r *Record) Summary() string {
	return fmt.Sprintf("Car: %-15s | Customer: %-20s | Days: %d | Total: $%s",
		r.Vehicle.ID+" "+r.Vehicle.Model, r.Customer.Name, r.Days, r.TotalPrice.StringFixed(2))
}
