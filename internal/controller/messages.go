package controller

// User-facing strings, kept together so the storefront wording stays
// consistent with the web UI.
const (
	msgLoadFailed         = "Không thể tải giỏ hàng. Vui lòng thử lại."
	msgLoadTotalFailed    = "Không thể cập nhật tổng tiền. Vui lòng thử lại."
	msgUpdateFailed       = "Cập nhật giỏ hàng thất bại. Vui lòng thử lại."
	msgRemoveFailed       = "Xóa sản phẩm thất bại. Vui lòng thử lại."
	msgRemoved            = "Đã xóa sản phẩm khỏi giỏ hàng."
	msgDiscountInvalid    = "Mã giảm giá không hợp lệ."
	msgDiscountActive     = "Vui lòng gỡ mã giảm giá hiện tại trước khi áp dụng mã mới."
	msgDiscountRemoved    = "Đã gỡ mã giảm giá."
	msgCheckoutNoLines    = "Vui lòng chọn ít nhất một sản phẩm còn hàng để thanh toán."
	msgAdvisoryDropped    = "Một số sản phẩm đã chọn hiện không còn bán và sẽ bị bỏ qua khi thanh toán."
	msgSelectAllFailed    = "Không thể cập nhật lựa chọn cho một số sản phẩm."
	msgConfirmRemoveFmt   = "Xóa sản phẩm \"%s\" khỏi giỏ hàng?"
	msgConfirmBulkFmt     = "Xóa %d sản phẩm đã chọn khỏi giỏ hàng?"
	msgRemovedBulkFmt     = "Đã xóa %d sản phẩm khỏi giỏ hàng."
	msgRemovedGhostsFmt   = "Đã xóa %d sản phẩm ngừng kinh doanh."
	msgGhostsPartialFmt   = "Đã xóa %d sản phẩm, %d sản phẩm xóa không thành công."
	msgDiscountAppliedFmt = "Đã áp dụng mã giảm giá %s."
	msgDiscountClearedFmt = "Mã %s không còn hợp lệ với giỏ hàng hiện tại và đã được gỡ bỏ."
)
