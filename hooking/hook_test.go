package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	invoked []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.invoked = append(h.invoked, ctx)
}

var _ = Describe("HookableBase", func() {
	var (
		hookable *HookableBase
		hook     *recordingHook
	)

	BeforeEach(func() {
		hookable = &HookableBase{}
		hook = &recordingHook{}
	})

	It("should register hooks", func() {
		hookable.AcceptHook(hook)

		Expect(hookable.NumHooks()).To(Equal(1))
		Expect(hookable.Hooks()).To(HaveLen(1))
	})

	It("should panic on duplicated hooks", func() {
		hookable.AcceptHook(hook)

		Expect(func() { hookable.AcceptHook(hook) }).To(Panic())
	})

	It("should invoke hooks with the context", func() {
		hookable.AcceptHook(hook)

		pos := &HookPos{Name: "SomewhereInteresting"}
		hookable.InvokeHook(HookCtx{Pos: pos, Item: 42})

		Expect(hook.invoked).To(HaveLen(1))
		Expect(hook.invoked[0].Pos).To(BeIdenticalTo(pos))
		Expect(hook.invoked[0].Item).To(Equal(42))
	})
})
