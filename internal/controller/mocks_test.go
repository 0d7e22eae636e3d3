package controller

import (
	"context"
	"sync"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

type updateCall struct {
	lineID string
	req    api.UpdateLineRequest
}

type mockCartAPI struct {
	mu sync.Mutex

	cartID     string
	lines      []*domain.CartLine
	currentErr error
	listErr    error

	subtotal    int64
	subtotalErr error

	updateErr    error
	updateErrFor map[string]error
	updateCalls  []updateCall

	deleteErr           error
	deleteCalls         []string
	deleteSelected      int
	deleteSelErr        error
	deleteUnavail       []string
	deleteUnavailErrFor map[string]error
}

func (m *mockCartAPI) CurrentCart(context.Context) (string, error) {
	if m.currentErr != nil {
		return "", m.currentErr
	}
	return m.cartID, nil
}

func (m *mockCartAPI) ListLines(context.Context, string) ([]*domain.CartLine, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	// Hand out copies so the controller's mirror is independent of the fixture.
	out := make([]*domain.CartLine, 0, len(m.lines))
	for _, l := range m.lines {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockCartAPI) Subtotal(context.Context, string) (int64, error) {
	if m.subtotalErr != nil {
		return 0, m.subtotalErr
	}
	return m.subtotal, nil
}

func (m *mockCartAPI) UpdateLine(_ context.Context, _ string, lineID string, req api.UpdateLineRequest) (api.UpdateLineResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls = append(m.updateCalls, updateCall{lineID: lineID, req: req})
	if err := m.updateErrFor[lineID]; err != nil {
		return api.UpdateLineResult{}, err
	}
	if m.updateErr != nil {
		return api.UpdateLineResult{}, m.updateErr
	}

	// The service is authoritative for the line total.
	var unit int64
	for _, l := range m.lines {
		if l.LineID == lineID {
			unit = l.UnitPrice
		}
	}
	return api.UpdateLineResult{Quantity: req.Quantity, LineTotal: int64(req.Quantity) * unit}, nil
}

func (m *mockCartAPI) DeleteLine(_ context.Context, _ string, lineID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleteCalls = append(m.deleteCalls, lineID)
	return nil
}

func (m *mockCartAPI) DeleteSelected(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteSelErr != nil {
		return m.deleteSelErr
	}
	m.deleteSelected++
	return nil
}

func (m *mockCartAPI) DeleteUnavailableLine(_ context.Context, _ string, lineID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteUnavail = append(m.deleteUnavail, lineID)
	if err := m.deleteUnavailErrFor[lineID]; err != nil {
		return err
	}
	return nil
}

func (m *mockCartAPI) calls() []updateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]updateCall, len(m.updateCalls))
	copy(out, m.updateCalls)
	return out
}

type applyCall struct {
	code     string
	subtotal int64
}

type mockDiscountAPI struct {
	mu     sync.Mutex
	amount int64
	err    error
	fn     func(code string, subtotal int64) (int64, error)
	calls  []applyCall
}

func (m *mockDiscountAPI) Apply(_ context.Context, code string, subtotal int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, applyCall{code: code, subtotal: subtotal})
	if m.fn != nil {
		return m.fn(code, subtotal)
	}
	if m.err != nil {
		return 0, m.err
	}
	return m.amount, nil
}

type mockView struct {
	renderCartCalls int
	renderedEmpty   bool
	lastSummary     domain.Summary
	lastAdvisory    string
	selectAllState  SelectAllState
	bulkEnabled     bool
	removedRows     []string
}

func (v *mockView) RenderCart(*domain.Cart)            { v.renderCartCalls++; v.renderedEmpty = false }
func (v *mockView) RenderEmpty()                       { v.renderedEmpty = true }
func (v *mockView) SetSelectAllState(s SelectAllState) { v.selectAllState = s }
func (v *mockView) SetBulkDeleteEnabled(e bool)        { v.bulkEnabled = e }
func (v *mockView) RemoveLineRow(lineID string)        { v.removedRows = append(v.removedRows, lineID) }
func (v *mockView) RenderSummary(s domain.Summary, advisory string) {
	v.lastSummary = s
	v.lastAdvisory = advisory
}

type mockNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *mockNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *mockNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *mockNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

type mockConfirmer struct {
	answer  bool
	prompts []string
}

func (c *mockConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

type testRig struct {
	sut     *CartStateController
	cartAPI *mockCartAPI
	disc    *mockDiscountAPI
	view    *mockView
	notify  *mockNotifier
	confirm *mockConfirmer
}

func newTestRig(cartAPI *mockCartAPI, disc *mockDiscountAPI) *testRig {
	view := &mockView{}
	notify := &mockNotifier{}
	confirm := &mockConfirmer{answer: true}
	return &testRig{
		sut:     NewCartStateController(cartAPI, disc, view, notify, confirm),
		cartAPI: cartAPI,
		disc:    disc,
		view:    view,
		notify:  notify,
		confirm: confirm,
	}
}
