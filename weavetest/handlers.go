package weavetest

import "github.com/iov-one/photosale"

// Handler is a mock implementation of the photosale.Handler interface.
// Each method returns a copy of the configured result together with the
// configured error.
type Handler struct {
	calls

	CheckResult photosale.CheckResult
	CheckErr    error

	DeliverResult photosale.DeliverResult
	DeliverErr    error
}

var _ photosale.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	h.check++
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	h.deliver++
	res := h.DeliverResult
	return &res, h.DeliverErr
}
