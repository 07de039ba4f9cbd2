// Package notify delivers error messages to a fixed, ordered set of sinks.
//
// A Notifier is built once at startup and handed to the stages that report
// errors. There is no global subscriber list and no runtime (un)subscription.
package notify

// Sink receives error messages.
//
// Notify must be inert from the caller's point of view: it returns nothing and
// a panic inside one sink must not stop delivery to the others (see SafeNotify).
type Sink interface {
	Notify(msg string)
}

// Func adapts a plain function to a Sink.
type Func func(msg string)

// Notify calls f. A nil Func is a no-op.
func (f Func) Notify(msg string) {
	if f == nil {
		return
	}
	f(msg)
}

// Notifier fans a message out to its sinks synchronously, in registration order.
type Notifier struct {
	sinks []Sink
}

// New returns a Notifier over sinks. Nil sinks are dropped.
func New(sinks ...Sink) *Notifier {
	n := &Notifier{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			n.sinks = append(n.sinks, s)
		}
	}
	return n
}

// Notify delivers msg to every sink. A nil Notifier discards the message.
func (n *Notifier) Notify(msg string) {
	if n == nil {
		return
	}
	for _, s := range n.sinks {
		SafeNotify(s, msg)
	}
}

// Len reports the number of registered sinks.
func (n *Notifier) Len() int {
	if n == nil {
		return 0
	}
	return len(n.sinks)
}

// SafeNotify delivers msg to s and swallows any panic raised by the sink.
func SafeNotify(s Sink, msg string) {
	if s == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.Notify(msg)
}
