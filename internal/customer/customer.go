package customer

import (
	"fmt"
	"strings"
)

// Customer 租车客户。ID 由账本分配；history 只追加，不对外暴露可变底层切片。
type Customer struct {
	ID    string
	Name  string
	Phone string

	history []string
}

// New 构造客户。姓名不能为空白。
func New(id, name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}
	return &Customer{
		ID:    strings.TrimSpace(id),
		Name:  name,
		Phone: strings.TrimSpace(phone),
	}, nil
}

// AddHistory 追加一条租赁历史记录，内容不做校验。
func (c *Customer) AddHistory(record string) {
	c.history = append(c.history, record)
}

// History 返回历史记录的只读副本。
func (c *Customer) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Customer) String() string {
	return fmt.Sprintf("ID: %-8s | Name: %-20s | Phone: %s", c.ID, c.Name, c.Phone)
}
