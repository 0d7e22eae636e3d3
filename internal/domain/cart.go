package domain

// MaxQuantityPerLine caps how many units of one product a cart line may hold,
// independent of stock.
const MaxQuantityPerLine = 99

type Availability string

const (
	Available   Availability = "available"
	OutOfStock  Availability = "out_of_stock"
	Deactivated Availability = "deactivated"
)

// DeriveAvailability maps the product flags returned by the cart service to
// the tri-state used for rendering and totals. A deactivated product wins
// over an empty stock count.
func DeriveAvailability(isActive bool, stock int) Availability {
	if !isActive {
		return Deactivated
	}
	if stock <= 0 {
		return OutOfStock
	}
	return Available
}

// CartLine mirrors one cart row as last confirmed by the cart service.
// LineTotal is never computed locally; it is overwritten from the server
// response after every mutation.
type CartLine struct {
	LineID       string
	ProductID    string
	ProductName  string
	BrandID      string
	BrandName    string
	ImageURL     string
	Quantity     int
	UnitPrice    int64
	LineTotal    int64
	Selected     bool
	Stock        int
	Availability Availability
}

func (l *CartLine) Available() bool {
	return l.Availability == Available
}

// MaxQuantity is the upper clamp bound for this line.
func (l *CartLine) MaxQuantity() int {
	m := l.Stock
	if m > MaxQuantityPerLine {
		m = MaxQuantityPerLine
	}
	if m < 1 {
		m = 1
	}
	return m
}

// ClampQuantity forces q into [1, min(stock, MaxQuantityPerLine)]. Edits are
// self-corrected rather than rejected.
func ClampQuantity(q, stock int) int {
	max := stock
	if max > MaxQuantityPerLine {
		max = MaxQuantityPerLine
	}
	if max < 1 {
		max = 1
	}
	if q < 1 {
		return 1
	}
	if q > max {
		return max
	}
	return q
}

// Discount is the single code applied to the cart, if any. Amount is
// recomputed by the discount service whenever the subtotal changes.
type Discount struct {
	Code   string
	Amount int64
}

// Cart is the local mirror of the server-side cart for one session. Line
// order is whatever the server returned; it carries no meaning.
type Cart struct {
	ID    string
	Lines []*CartLine
}

func (c *Cart) Line(lineID string) *CartLine {
	for _, l := range c.Lines {
		if l.LineID == lineID {
			return l
		}
	}
	return nil
}

func (c *Cart) RemoveLine(lineID string) {
	for i, l := range c.Lines {
		if l.LineID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// SelectedCount counts every selected line, including unavailable ones that
// kept a stale selected flag.
func (c *Cart) SelectedCount() int {
	n := 0
	for _, l := range c.Lines {
		if l.Selected {
			n++
		}
	}
	return n
}

// AvailableSelectedCount counts the selected lines that would actually be
// checked out.
func (c *Cart) AvailableSelectedCount() int {
	n := 0
	for _, l := range c.Lines {
		if l.Selected && l.Available() {
			n++
		}
	}
	return n
}

func (c *Cart) AvailableCount() int {
	n := 0
	for _, l := range c.Lines {
		if l.Available() {
			n++
		}
	}
	return n
}

// UnavailableLines returns the lines rendered in the separate "no longer
// sold" section.
func (c *Cart) UnavailableLines() []*CartLine {
	var out []*CartLine
	for _, l := range c.Lines {
		if !l.Available() {
			out = append(out, l)
		}
	}
	return out
}

// Summary holds the display totals. Subtotal is the value last returned by
// the cart service's total endpoint, never a local sum.
type Summary struct {
	SelectedCount          int
	AvailableSelectedCount int
	Subtotal               int64
	DiscountAmount         int64
	Total                  int64
}
