package pcomb

// RepeatOption configures Repeat. The defaults match spec section 6:
// Lo=0, Hi=Unbounded, Flatten=true, Greedy=true.
type RepeatOption func(*repeatOptions)

type repeatOptions struct {
	lo, hi  int
	flatten bool
	greedy  bool
}

func defaultRepeatOptions() repeatOptions {
	return repeatOptions{lo: 0, hi: Unbounded, flatten: true, greedy: true}
}

func WithLo(lo int) RepeatOption { return func(o *repeatOptions) { o.lo = lo } }
func WithHi(hi int) RepeatOption { return func(o *repeatOptions) { o.hi = hi } }
func WithFlatten(flatten bool) RepeatOption { return func(o *repeatOptions) { o.flatten = flatten } }
func WithGreedy(greedy bool) RepeatOption { return func(o *repeatOptions) { o.greedy = greedy } }

// Repeat picks Depth (greedy) or Breadth (non-greedy) bounded repetition of
// child, according to opts.
func Repeat(child Matcher, opts ...RepeatOption) Matcher {
	o := defaultRepeatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.greedy {
		return NewDepth(child, o.lo, o.hi, o.flatten)
	}
	return NewBreadth(child, o.lo, o.hi, o.flatten)
}
