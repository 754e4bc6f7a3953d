package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rentledger/rentledger/internal/pricing"
	"github.com/rentledger/rentledger/internal/rental"
)

// Menu 交互式控制台菜单。只通过账本的公开操作读写状态，
// 自身不持有任何租赁数据。
type Menu struct {
	ledger *rental.Ledger
	in     *bufio.Scanner
	out    io.Writer
}

// New 创建菜单。
func New(ledger *rental.Ledger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run 主循环：渲染菜单、分发选项，直到用户退出或输入耗尽。
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "╔══════════════════════════════╗")
		fmt.Fprintln(m.out, "║     CAR RENTAL SYSTEM        ║")
		fmt.Fprintln(m.out, "╠══════════════════════════════╣")
		fmt.Fprintln(m.out, "║  1. Rent a Car               ║")
		fmt.Fprintln(m.out, "║  2. Return a Car             ║")
		fmt.Fprintln(m.out, "║  3. View All Cars            ║")
		fmt.Fprintln(m.out, "║  4. View Active Rentals      ║")
		fmt.Fprintln(m.out, "║  5. Exit                     ║")
		fmt.Fprintln(m.out, "╚══════════════════════════════╝")
		fmt.Fprint(m.out, "  Enter your choice: ")

		choice, ok := m.readInt()
		if !ok {
			return
		}

		switch choice {
		case 1:
			if !m.handleRent() {
				return
			}
		case 2:
			if !m.handleReturn() {
				return
			}
		case 3:
			m.displayAllCars()
		case 4:
			m.displayActiveRentals()
		case 5:
			fmt.Fprintln(m.out, "\n  Thank you for using the Car Rental System! Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "⚠  Invalid choice. Please enter 1-5.")
		}
	}
}

// handleRent 租车流程：登记客户信息、选车、价格预览、确认后提交。
// 返回 false 表示输入流已耗尽。
func (m *Menu) handleRent() bool {
	fmt.Fprintln(m.out, "\n═══ RENT A CAR ═══")

	fmt.Fprint(m.out, "Enter your name: ")
	name, ok := m.readLine()
	if !ok {
		return false
	}
	if name == "" {
		fmt.Fprintln(m.out, "⚠  Name cannot be empty.")
		return true
	}

	fmt.Fprint(m.out, "Enter your phone number: ")
	phone, ok := m.readLine()
	if !ok {
		return false
	}

	m.displayAvailableCars()

	fmt.Fprint(m.out, "\nEnter Car ID to rent: ")
	carID, ok := m.readLine()
	if !ok {
		return false
	}
	carID = strings.ToUpper(carID)

	fmt.Fprint(m.out, "Enter number of rental days: ")
	days, ok := m.readInt()
	if !ok {
		return false
	}
	if days <= 0 {
		fmt.Fprintln(m.out, "⚠  Days must be a positive number.")
		return true
	}

	v, err := m.ledger.FindVehicle(carID)
	if err != nil {
		fmt.Fprintf(m.out, "⚠  %v\n", err)
		return true
	}
	if !v.Available {
		fmt.Fprintln(m.out, "⚠  Sorry, that car is not available.")
		return true
	}

	price, err := v.CalculatePrice(days)
	if err != nil {
		fmt.Fprintf(m.out, "⚠  %v\n", err)
		return true
	}

	fmt.Fprintln(m.out, "\n  Preview:")
	fmt.Fprintf(m.out, "  Car    : %s %s\n", v.Brand, v.Model)
	fmt.Fprintf(m.out, "  Days   : %d\n", days)
	switch pct := pricing.DiscountPercent(days); pct {
	case 20:
		fmt.Fprintln(m.out, "  Discount: 20% (30+ day discount applied)")
	case 10:
		fmt.Fprintln(m.out, "  Discount: 10% (7+ day discount applied)")
	}
	fmt.Fprintf(m.out, "  Total  : $%s\n", price.StringFixed(2))

	fmt.Fprint(m.out, "\n  Confirm rental? (Y/N): ")
	confirm, ok := m.readLine()
	if !ok {
		return false
	}
	if !strings.EqualFold(confirm, "Y") {
		fmt.Fprintln(m.out, "  Rental cancelled.")
		return true
	}

	c, err := m.ledger.RegisterCustomer(name, phone)
	if err != nil {
		fmt.Fprintf(m.out, "⚠  %v\n", err)
		return true
	}
	r, err := m.ledger.Rent(v, c, days)
	if err != nil {
		fmt.Fprintf(m.out, "⚠  %v\n", err)
		return true
	}
	m.printReceipt(r)
	fmt.Fprintln(m.out, "\n✔  Rental confirmed successfully!")
	return true
}

// handleReturn 还车流程。返回 false 表示输入流已耗尽。
func (m *Menu) handleReturn() bool {
	fmt.Fprintln(m.out, "\n═══ RETURN A CAR ═══")
	m.displayActiveRentals()

	fmt.Fprint(m.out, "\nEnter Car ID to return: ")
	carID, ok := m.readLine()
	if !ok {
		return false
	}

	r, err := m.ledger.ReturnVehicle(strings.ToUpper(carID))
	if err != nil {
		fmt.Fprintf(m.out, "⚠  %v\n", err)
		return true
	}
	if r == nil {
		fmt.Fprintln(m.out, "⚠  This car is not currently rented.")
		return true
	}

	fmt.Fprintln(m.out, "\n✔  Car returned successfully.")
	fmt.Fprintf(m.out, "   Returned by: %s\n", r.Customer.Name)
	fmt.Fprintf(m.out, "   Total charge was: $%s\n", r.TotalPrice.StringFixed(2))
	return true
}

func (m *Menu) displayAvailableCars() {
	fmt.Fprintln(m.out, "\n┌──────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(m.out, "│                     AVAILABLE CARS                           │")
	fmt.Fprintln(m.out, "├──────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(m.out, "│ %-6s | %-23s | %-8s | %-12s │\n", "ID", "Brand & Model", "Category", "Price/Day")
	fmt.Fprintln(m.out, "├──────────────────────────────────────────────────────────────┤")
	available := m.ledger.AvailableVehicles()
	for _, v := range available {
		fmt.Fprintf(m.out, "│ %-6s | %-10s %-12s | %-8s | $%-11s │\n",
			v.ID, v.Brand, v.Model, v.Category, v.BasePricePerDay.StringFixed(2))
	}
	if len(available) == 0 {
		fmt.Fprintln(m.out, "│         No cars currently available.                         │")
	}
	fmt.Fprintln(m.out, "└──────────────────────────────────────────────────────────────┘")
}

func (m *Menu) displayAllCars() {
	fmt.Fprintln(m.out, "\n--- All Cars in Fleet ---")
	for _, v := range m.ledger.AllVehicles() {
		fmt.Fprintln(m.out, "  "+v.String())
	}
}

func (m *Menu) displayActiveRentals() {
	fmt.Fprintln(m.out, "\n--- Active Rentals ---")
	active := m.ledger.ActiveRentals()
	if len(active) == 0 {
		fmt.Fprintln(m.out, "  No active rentals.")
		return
	}
	for _, r := range active {
		fmt.Fprintln(m.out, "  "+r.Summary())
	}
}

func (m *Menu) printReceipt(r *rental.Record) {
	fmt.Fprintln(m.out, "┌─────────────────────────────────────────┐")
	fmt.Fprintln(m.out, "│           RENTAL RECEIPT                │")
	fmt.Fprintln(m.out, "├─────────────────────────────────────────┤")
	fmt.Fprintf(m.out, "│ Customer ID  : %-25s│\n", r.Customer.ID)
	fmt.Fprintf(m.out, "│ Customer Name: %-25s│\n", r.Customer.Name)
	fmt.Fprintf(m.out, "│ Phone        : %-25s│\n", r.Customer.Phone)
	fmt.Fprintln(m.out, "├─────────────────────────────────────────┤")
	fmt.Fprintf(m.out, "│ Car          : %-25s│\n", r.Vehicle.Brand+" "+r.Vehicle.Model)
	fmt.Fprintf(m.out, "│ Car ID       : %-25s│\n", r.Vehicle.ID)
	fmt.Fprintf(m.out, "│ Category     : %-25s│\n", r.Vehicle.Category)
	fmt.Fprintf(m.out, "│ Rental Days  : %-25d│\n", r.Days)
	fmt.Fprintf(m.out, "│ Price/Day    : $%-24s│\n", r.Vehicle.BasePricePerDay.StringFixed(2))
	fmt.Fprintf(m.out, "│ Rental Date  : %-25s│\n", r.RentalDate())
	fmt.Fprintln(m.out, "├─────────────────────────────────────────┤")
	fmt.Fprintf(m.out, "│ TOTAL PRICE  : $%-24s│\n", r.TotalPrice.StringFixed(2))
	fmt.Fprintln(m.out, "└─────────────────────────────────────────┘")
}

// readLine 读取一行并去除首尾空白。第二个返回值为 false 表示输入耗尽。
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readInt 循环读取直到得到合法整数。
func (m *Menu) readInt() (int, bool) {
	for {
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, true
		}
		fmt.Fprint(m.out, "⚠  Please enter a valid number: ")
	}
}
