package rental

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rentledger/rentledger/internal/common/logger"
	"github.com/rentledger/rentledger/internal/customer"
	"github.com/rentledger/rentledger/internal/vehicle"
)

// customerIDFormat 客户编号格式：固定前缀 + 三位零填充序号，单调递增，永不复用。
const customerIDFormat = "CUS%03d"

// Ledger 租赁账本：持有车辆目录、客户注册表以及按状态划分的
// 活跃/已完成两个租赁记录分区。车辆可用性与活跃记录之间的一致性
// 只由 Rent / ReturnVehicle 两条路径维护，其他代码不得直接改动。
// 所有操作在同一把互斥锁下串行执行。
type Ledger struct {
	mu sync.Mutex

	catalog       []*vehicle.Vehicle
	customers     map[string]*customer.Customer
	customerOrder []string
	active        []*Record
	completed     []*Record
	customerSeq   int

	log logger.Logger
}

// NewLedger 创建空账本。log 为 nil 时使用空实现。
func NewLedger(log logger.Logger) *Ledger {
	if log == nil {
		log = logger.NewNop()
	}
	return &Ledger{
		customers:   make(map[string]*customer.Customer),
		customerSeq: 1,
		log:         log,
	}
}

// AddVehicle 向目录加入车辆。ID 重复（忽略大小写）时记录告警并跳过，不报错。
func (l *Ledger) AddVehicle(v *vehicle.Vehicle) {
	if v == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range l.catalog {
		if strings.EqualFold(c.ID, v.ID) {
			l.log.Warnf("vehicle with ID %s already exists, skipped", v.ID)
			return
		}
	}
	l.catalog = append(l.catalog, v)
}

// FindVehicle 按 ID（忽略大小写）查找车辆。
func (l *Ledger) FindVehicle(id string) (*vehicle.Vehicle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findVehicleLocked(id)
}

func (l *Ledger) findVehicleLocked(id string) (*vehicle.Vehicle, error) {
	id = strings.TrimSpace(id)
	for _, v := range l.catalog {
		if strings.EqualFold(v.ID, id) {
			return v, nil
		}
	}
	return nil, &NotFoundError{VehicleID: id}
}

// RegisterCustomer 注册新客户并分配顺序编号。姓名为空白时失败，且不消耗序号。
func (l *Ledger) RegisterCustomer(name, phone string) (*customer.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &InvalidInputError{Field: "customer name", Reason: "cannot be empty"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := fmt.Sprintf(customerIDFormat, l.customerSeq)
	c, err := customer.New(id, name, phone)
	if err != nil {
		return nil, &InvalidInputError{Field: "customer name", Reason: err.Error()}
	}
	l.customerSeq++
	l.customers[id] = c
	l.customerOrder = append(l.customerOrder, id)
	return c, nil
}

// Rent 租出车辆：这是车辆变为不可租的唯一入口。
// 成功时生成 ACTIVE 记录放入活跃分区，并在客户历史中追加一条摘要。
func (l *Ledger) Rent(v *vehicle.Vehicle, c *customer.Customer, days int) (*Record, error) {
	if v == nil {
		return nil, &InvalidInputError{Field: "vehicle", Reason: "is nil"}
	}
	if c == nil {
		return nil, &InvalidInputError{Field: "customer", Reason: "is nil"}
	}
	if days <= 0 {
		return nil, &InvalidInputError{Field: "rental days", Reason: fmt.Sprintf("must be positive, got %d", days)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := v.Rent(); err != nil {
		return nil, err
	}

	total, err := v.CalculatePrice(days)
	if err != nil {
		// days 已校验，报价不应失败；回滚可用性以保持不变量。
		v.Return()
		return nil, err
	}

	r := &Record{
		ID:         uuid.NewString(),
		Vehicle:    v,
		Customer:   c,
		Days:       days,
		TotalPrice: total,
		CreatedAt:  time.Now(),
		Status:     StatusActive,
	}
	l.active = append(l.active, r)
	c.AddHistory(fmt.Sprintf("Rented %s %s for %d days on %s", v.Brand, v.Model, days, r.RentalDate()))

	l.log.Infof("vehicle %s rented to %s for %d days, total $%s", v.ID, c.ID, days, total.StringFixed(2))
	return r, nil
}

// ReturnVehicle 归还车辆：把匹配的活跃记录迁入已完成分区并恢复可用性。
// 车辆本就可租时是良性空操作，返回 (nil, nil)。
// 车辆不可租却找不到活跃记录说明不变量被破坏，大声上报而非静默吞掉。
func (l *Ledger) ReturnVehicle(vehicleID string) (*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, err := l.findVehicleLocked(vehicleID)
	if err != nil {
		return nil, err
	}

	if v.Available {
		l.log.Infof("vehicle %s is not currently rented, nothing to do", v.ID)
		return nil, nil
	}

	idx := -1
	for i, r := range l.active {
		if strings.EqualFold(r.Vehicle.ID, v.ID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		err := &InconsistencyError{VehicleID: v.ID}
		l.log.Errorf("ledger invariant broken: %v", err)
		return nil, err
	}

	r := l.active[idx]
	l.active = append(l.active[:idx], l.active[idx+1:]...)

	if err := applyTransition(r, StatusCompleted, time.Now()); err != nil {
		return nil, err
	}
	l.completed = append(l.completed, r)
	v.Return()

	l.log.Infof("vehicle %s returned by %s, total charged $%s", v.ID, r.Customer.Name, r.TotalPrice.StringFixed(2))
	return r, nil
}

// AvailableVehicles 返回当前可租车辆的快照。
func (l *Ledger) AvailableVehicles() []*vehicle.Vehicle {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*vehicle.Vehicle, 0, len(l.catalog))
	for _, v := range l.catalog {
		if v.Available {
			out = append(out, v)
		}
	}
	return out
}

// AllVehicles 返回目录全量快照，与可用性无关。
func (l *Ledger) AllVehicles() []*vehicle.Vehicle {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*vehicle.Vehicle, len(l.catalog))
	copy(out, l.catalog)
	return out
}

// ActiveRentals 返回活跃租赁记录的快照。
func (l *Ledger) ActiveRentals() []*Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Record, len(l.active))
	copy(out, l.active)
	return out
}

// CompletedRentals 返回已完成租赁记录的快照。
func (l *Ledger) CompletedRentals() []*Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Record, len(l.completed))
	copy(out, l.completed)
	return out
}

// Customers 按注册顺序返回客户快照。
func (l *Ledger) Customers() []*customer.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*customer.Customer, 0, len(l.customerOrder))
	for _, id := range l.customerOrder {
		out = append(out, l.customers[id])
	}
	return out
}
