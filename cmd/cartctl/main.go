// cartctl drives the storefront cart against a running cart service from
// the terminal: the same controller the cart page uses, wired to a tabular
// view instead of the DOM.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/controller"
)

var (
	flagBaseURL string
	flagYes     bool
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newController() *controller.CartStateController {
	client := api.NewClient(flagBaseURL)
	view := &terminalView{out: os.Stdout}
	notify := &terminalNotifier{out: os.Stdout}
	confirm := &terminalConfirmer{assumeYes: flagYes}
	return controller.NewCartStateController(client, client, view, notify, confirm)
}

// loaded builds a controller with the cart already fetched, which every
// command needs before it can act on a line.
func loaded(cmd *cobra.Command) (*controller.CartStateController, error) {
	c := newController()
	if err := c.LoadCart(cmd.Context()); err != nil {
		return nil, err
	}
	return c, nil
}

func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on|off, got %q", arg)
}

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Thao tác giỏ hàng Liora từ dòng lệnh",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", getEnv("CART_SERVICE_URL", "http://localhost:8080"), "địa chỉ cart service")
	root.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "tự động xác nhận các thao tác xóa")

	root.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Hiển thị giỏ hàng hiện tại",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := loaded(cmd)
				return err
			},
		},
		&cobra.Command{
			Use:   "qty <mã-dòng> <số-lượng|+1|-1>",
			Short: "Đổi số lượng một dòng hàng",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				value := args[1]
				if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
					delta, err := strconv.Atoi(value)
					if err != nil {
						return fmt.Errorf("số lượng không hợp lệ: %q", value)
					}
					return c.ChangeQuantity(cmd.Context(), args[0], delta)
				}
				return c.SetQuantityFromInput(cmd.Context(), args[0], value)
			},
		},
		&cobra.Command{
			Use:   "select <mã-dòng> <on|off>",
			Short: "Chọn hoặc bỏ chọn một dòng hàng",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				selected, err := parseOnOff(args[1])
				if err != nil {
					return err
				}
				return c.SetSelection(cmd.Context(), args[0], selected)
			},
		},
		&cobra.Command{
			Use:   "select-all <on|off>",
			Short: "Chọn hoặc bỏ chọn mọi dòng còn hàng",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				selected, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				return c.SelectAll(cmd.Context(), selected)
			},
		},
		&cobra.Command{
			Use:   "rm <mã-dòng>",
			Short: "Xóa một dòng hàng",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				return c.RemoveLine(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "rm-selected",
			Short: "Xóa mọi dòng hàng đang chọn",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				return c.RemoveSelectedLines(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "rm-unavailable <mã-dòng>...",
			Short: "Xóa các dòng hàng ngừng bán hoặc hết hàng",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				return c.RemoveUnavailableLines(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "discount <mã>",
			Short: "Áp dụng mã giảm giá",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				return c.ApplyDiscount(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "checkout",
			Short: "Kiểm tra giỏ hàng trước khi thanh toán",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := loaded(cmd)
				if err != nil {
					return err
				}
				if err := c.ValidateBeforeCheckout(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Giỏ hàng hợp lệ, có thể chuyển sang trang thanh toán.")
				return nil
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
