package brain

import "log/slog"

// Observer hears about every stored value change of a registered need,
// identified by the owning brain's name and the need's registered name.
// Purely a sink: correctness never depends on it.
type Observer interface {
	BeliefChanged(owner, belief string, value any)
}

// ObserverFunc adapts a plain function into an Observer.
type ObserverFunc func(owner, belief string, value any)

func (f ObserverFunc) BeliefChanged(owner, belief string, value any) {
	f(owner, belief, value)
}

// SlogObserver logs every change as a debug record on l, or on the default
// logger when l is nil.
func SlogObserver(l *slog.Logger) Observer {
	if l == nil {
		l = slog.Default()
	}
	return ObserverFunc(func(owner, belief string, value any) {
		l.Debug("belief changed", "owner", owner, "belief", belief, "value", value)
	})
}
