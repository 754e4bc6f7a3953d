package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rentledger/rentledger/internal/rental"
	"github.com/rentledger/rentledger/internal/vehicle"
)

func newTestLedger(t *testing.T) *rental.Ledger {
	t.Helper()
	l := rental.NewLedger(nil)
	v, err := vehicle.New("C001", "Toyota", "Camry", decimal.NewFromInt(60), vehicle.CategorySedan)
	require.NoError(t, err)
	l.AddVehicle(v)
	return l
}

func runSession(t *testing.T, l *rental.Ledger, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	New(l, in, &out).Run()
	return out.String()
}

func TestRentFlow(t *testing.T) {
	l := newTestLedger(t)

	out := runSession(t, l,
		"1",     // Rent a Car
		"Alice", // name
		"555",   // phone
		"c001",  // car id (case-insensitive)
		"10",    // days
		"y",     // confirm
		"5",     // Exit
	)

	require.Contains(t, out, "RENTAL RECEIPT")
	require.Contains(t, out, "TOTAL PRICE  : $540.00")
	require.Contains(t, out, "Rental confirmed successfully")

	require.Len(t, l.ActiveRentals(), 1)
	customers := l.Customers()
	require.Len(t, customers, 1)
	require.Equal(t, "CUS001", customers[0].ID)
}

func TestRentFlowDiscountPreview(t *testing.T) {
	out := runSession(t, newTestLedger(t),
		"1", "Alice", "555", "C001", "30", "n", "5",
	)

	require.Contains(t, out, "Discount: 20% (30+ day discount applied)")
	require.Contains(t, out, "Total  : $1440.00")
	require.Contains(t, out, "Rental cancelled.")
}

func TestReturnFlow(t *testing.T) {
	l := newTestLedger(t)
	v, err := l.FindVehicle("C001")
	require.NoError(t, err)
	c, err := l.RegisterCustomer("Alice", "555")
	require.NoError(t, err)
	_, err = l.Rent(v, c, 10)
	require.NoError(t, err)

	out := runSession(t, l,
		"2",    // Return a Car
		"c001", // car id
		"2",    // return again: benign no-op
		"C001",
		"5", // Exit
	)

	require.Contains(t, out, "Car returned successfully")
	require.Contains(t, out, "Total charge was: $540.00")
	require.Contains(t, out, "This car is not currently rented.")
	require.True(t, v.Available)
	require.Len(t, l.CompletedRentals(), 1)
}

func TestInvalidMenuInputReprompts(t *testing.T) {
	out := runSession(t, newTestLedger(t),
		"abc", // not a number
		"9",   // out of range
		"5",   // Exit
	)

	require.Contains(t, out, "Please enter a valid number")
	require.Contains(t, out, "Invalid choice. Please enter 1-5.")
	require.Contains(t, out, "Goodbye")
}

func TestRentUnknownCar(t *testing.T) {
	out := runSession(t, newTestLedger(t),
		"1", "Alice", "555", "C999", "3", "5",
	)

	require.Contains(t, out, "no vehicle found with ID: C999")
}
