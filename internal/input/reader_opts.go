package input

type ReaderOpts struct {
	HeuristicName *string
	Comma         *rune
}

type ReaderOpt func(opts *ReaderOpts)

// WithHeuristicName sets the algorithm column value that marks heuristic runs.
func WithHeuristicName(v string) ReaderOpt {
	return func(opts *ReaderOpts) { opts.HeuristicName = &v }
}

func WithComma(v rune) ReaderOpt {
	return func(opts *ReaderOpts) { opts.Comma = &v }
}

func buildOpts(defaultOpts ReaderOpts, opts ...ReaderOpt) ReaderOpts {
	o := defaultOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
