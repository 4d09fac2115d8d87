package argh

type opts struct {
	programName bool
}

func (o opts) apply(optFuncs ...Option) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

func defOpts() opts {
	return opts{}
}

// Option is a functional option configuring how Parse treats the
// argument vector.
type Option func(o *opts)

// WithProgramName treats the first token of the vector as the program
// name: it is recorded (see Args.ProgramName) and excluded from
// classification. Use this when passing os.Args directly rather than
// os.Args[1:].
func WithProgramName() Option {
	return func(o *opts) {
		o.programName = true
	}
}
