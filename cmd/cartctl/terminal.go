package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/controller"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/format"
)

// terminalView renders the cart as a table, with unavailable lines in their
// own section the way the web page separates them.
type terminalView struct {
	out io.Writer
}

func (v *terminalView) RenderCart(cart *domain.Cart) {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHỌN\tMÃ DÒNG\tSẢN PHẨM\tTHƯƠNG HIỆU\tSL\tĐƠN GIÁ\tTHÀNH TIỀN")
	for _, l := range cart.Lines {
		if !l.Available() {
			continue
		}
		mark := " "
		if l.Selected {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s]\t%s\t%s\t%s\t%d\t%s\t%s\n",
			mark, l.LineID, l.ProductName, l.BrandName, l.Quantity,
			format.VND(l.UnitPrice), format.VND(l.LineTotal))
	}
	_ = w.Flush()

	ghosts := cart.UnavailableLines()
	if len(ghosts) == 0 {
		return
	}
	fmt.Fprintln(v.out, "\nSản phẩm ngừng kinh doanh / hết hàng:")
	gw := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	for _, l := range ghosts {
		reason := "hết hàng"
		if l.Availability == domain.Deactivated {
			reason = "ngừng kinh doanh"
		}
		fmt.Fprintf(gw, "  %s\t%s\t(%s)\n", l.LineID, l.ProductName, reason)
	}
	_ = gw.Flush()
}

func (v *terminalView) RenderEmpty() {
	fmt.Fprintln(v.out, "Giỏ hàng của bạn đang trống.")
}

func (v *terminalView) RenderSummary(s domain.Summary, advisory string) {
	fmt.Fprintf(v.out, "\nĐã chọn: %d sản phẩm\n", s.SelectedCount)
	fmt.Fprintf(v.out, "Tạm tính: %s\n", format.VND(s.Subtotal))
	if s.DiscountAmount > 0 {
		fmt.Fprintf(v.out, "Giảm giá: -%s\n", format.VND(s.DiscountAmount))
	}
	fmt.Fprintf(v.out, "Tổng cộng: %s\n", format.VND(s.Total))
	if advisory != "" {
		fmt.Fprintf(v.out, "Lưu ý: %s\n", advisory)
	}
}

func (v *terminalView) SetSelectAllState(state controller.SelectAllState) {
	switch state {
	case controller.SelectAllChecked:
		fmt.Fprintln(v.out, "Chọn tất cả: [x]")
	case controller.SelectAllIndeterminate:
		fmt.Fprintln(v.out, "Chọn tất cả: [-]")
	default:
		fmt.Fprintln(v.out, "Chọn tất cả: [ ]")
	}
}

func (v *terminalView) SetBulkDeleteEnabled(bool) {}

func (v *terminalView) RemoveLineRow(string) {}

// terminalNotifier is the toast sink.
type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Success(msg string) { fmt.Fprintf(n.out, "✔ %s\n", msg) }
func (n *terminalNotifier) Error(msg string)   { fmt.Fprintf(n.out, "✖ %s\n", msg) }
func (n *terminalNotifier) Info(msg string)    { fmt.Fprintf(n.out, "ℹ %s\n", msg) }

// terminalConfirmer prompts on stdin; --yes answers everything.
type terminalConfirmer struct {
	assumeYes bool
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	if c.assumeYes {
		return true
	}
	fmt.Fprintf(os.Stdout, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
