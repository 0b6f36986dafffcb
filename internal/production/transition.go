package production

// SideEffect names a stock consequence of a status transition.
type SideEffect int

const (
	// EffectApplyCompletion moves the order's output into finished-goods
	// stock through the inventory ledger.
	EffectApplyCompletion SideEffect = iota
)

// Transition returns the side effects of moving an order from oldStatus to
// newStatus. The status field itself is freely editable, so the table accepts
// every pair; the single effectful edge is entering COMPLETED from any other
// status. The effect is edge-triggered: re-selecting COMPLETED while already
// COMPLETED yields nothing, which is what keeps a repeated submission from
// double-applying stock. Leaving COMPLETED yields nothing either: the added
// stock is deliberately not reversed.
func Transition(oldStatus, newStatus Status) []SideEffect {
	if newStatus == StatusCompleted && oldStatus != StatusCompleted {
		return []SideEffect{EffectApplyCompletion}
	}
	return nil
}
