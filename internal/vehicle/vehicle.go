package vehicle

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentledger/rentledger/internal/pricing"
)

// Category 车辆类别枚举（封闭集合，类别之间没有行为差异）。
type Category string

const (
	CategoryEconomy Category = "ECONOMY"
	CategorySedan   Category = "SEDAN"
	CategorySUV     Category = "SUV"
	CategoryLuxury  Category = "LUXURY"
)

// ParseCategory 解析类别字符串（忽略大小写）。
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryEconomy:
		return CategoryEconomy, nil
	case CategorySedan:
		return CategorySedan, nil
	case CategorySUV:
		return CategorySUV, nil
	case CategoryLuxury:
		return CategoryLuxury, nil
	default:
		return "", fmt.Errorf("unknown vehicle category: %q", s)
	}
}

// NotAvailableError 表示对已租出的车辆再次执行租出操作。
type NotAvailableError struct {
	VehicleID string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("vehicle %s is already rented", e.VehicleID)
}

// Vehicle 单台可出租车辆。Available 只允许经由账本的租出/归还路径翻转。
type Vehicle struct {
	ID              string
	Brand           string
	Model           string
	BasePricePerDay decimal.Decimal
	Category        Category
	Available       bool
}

// New 构造车辆并校验入参。空 ID 或非正日租金属于配置/编程错误，立即失败。
func New(id, brand, model string, basePricePerDay decimal.Decimal, category Category) (*Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("vehicle id cannot be empty")
	}
	if !basePricePerDay.IsPositive() {
		return nil, fmt.Errorf("base price per day must be positive, got %s", basePricePerDay)
	}
	return &Vehicle{
		ID:              id,
		Brand:           strings.TrimSpace(brand),
		Model:           strings.TrimSpace(model),
		BasePricePerDay: basePricePerDay,
		Category:        category,
		Available:       true,
	}, nil
}

// Rent 将车辆标记为已租出。前置条件：当前可租。
func (v *Vehicle) Rent() error {
	if !v.Available {
		return &NotAvailableError{VehicleID: v.ID}
	}
	v.Available = false
	return nil
}

// Return 将车辆标记为可租（幂等）。
func (v *Vehicle) Return() {
	v.Available = true
}

// CalculatePrice 按阶梯折扣报价。days 必须为正。
func (v *Vehicle) CalculatePrice(days int) (decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Zero, fmt.Errorf("rental days must be positive, got %d", days)
	}
	return pricing.Quote(v.BasePricePerDay, days), nil
}

func (v *Vehicle) String() string {
	state := "Available"
	if !v.Available {
		state = "Rented"
	}
	return fmt.Sprintf("%-6s | %-10s %-12s | %-8s | $%s/day | %s",
		v.ID, v.Brand, v.Model, v.Category, v.BasePricePerDay.StringFixed(2), state)
}
