package customer

import "testing"

func TestNewValidation(t *testing.T) {
	if _, err := New("CUS001", "   ", "555"); err == nil {
		t.Fatalf("expected blank name rejected")
	}

	c, err := New("CUS001", "  Alice ", " 555 ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Name != "Alice" || c.Phone != "555" {
		t.Fatalf("expected trimmed fields, got %q / %q", c.Name, c.Phone)
	}
}

func TestHistoryIsReadOnlyView(t *testing.T) {
	c, err := New("CUS001", "Alice", "555")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.AddHistory("first")
	c.AddHistory("second")

	h := c.History()
	if len(h) != 2 || h[0] != "first" || h[1] != "second" {
		t.Fatalf("unexpected history: %v", h)
	}

	// 修改返回的切片不得影响底层历史。
	h[0] = "tampered"
	if c.History()[0] != "first" {
		t.Fatalf("expected history view to be a copy")
	}
}
