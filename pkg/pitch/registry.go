package pitch

// ConverterFunc converts a value of one type into another. Implementations
// must return a value of the type they were registered for; the registry
// checks this and treats a violation as a programming error.
type ConverterFunc func(Value) (Value, error)

// Registry holds conversion paths between value types. A path is a pipeline
// of one or more converter functions applied in order; pipelines longer than
// one arise from implicit converters synthesized out of registered ones.
//
// The package-level Convert uses a default registry wired with the built-in
// families. Custom registries support additional value types as long as they
// implement Value with a distinct Type tag.
type Registry struct {
	paths map[Type]map[Type][]ConverterFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[Type]map[Type][]ConverterFunc)}
}

// RegisterOptions controls how Register treats existing conversion paths.
type RegisterOptions struct {
	// OverwriteExplicit allows replacing a directly registered converter.
	OverwriteExplicit bool
	// OverwriteImplicit allows replacing a synthesized multi-step pipeline.
	OverwriteImplicit bool
	// CreateImplicit extends existing paths through the new converter:
	// registering A→B synthesizes X→B for every known X→A and A→Y for every
	// known B→Y. Synthesized paths never replace existing ones.
	CreateImplicit bool
}

func (r *Registry) get(from, to Type) []ConverterFunc {
	return r.paths[from][to]
}

func (r *Registry) set(from, to Type, pipeline []ConverterFunc) {
	m := r.paths[from]
	if m == nil {
		m = make(map[Type][]ConverterFunc)
		r.paths[from] = m
	}
	m[to] = pipeline
}

// Register adds a converter from one value type to another.
//
// An existing path between the two types is only replaced when the matching
// overwrite option is set: OverwriteExplicit for a single-step path,
// OverwriteImplicit for a multi-step one. Registering a type onto itself is
// an error.
func (r *Registry) Register(from, to Type, fn ConverterFunc, opts RegisterOptions) error {
	if from == to {
		return &TypeMismatchError{Op: "register", Left: from.String(), Right: to.String()}
	}
	if existing := r.get(from, to); existing != nil {
		if len(existing) == 1 && !opts.OverwriteExplicit {
			return domainErrorf("an explicit converter from %s to %s is already registered", from, to)
		}
		if len(existing) > 1 && !opts.OverwriteImplicit {
			return domainErrorf("an implicit converter from %s to %s is already registered", from, to)
		}
	}
	r.set(from, to, []ConverterFunc{fn})
	if !opts.CreateImplicit {
		return nil
	}
	// Extend known paths through the new edge, but never overwrite and never
	// create a self-conversion.
	for x, targets := range r.paths {
		if x == to {
			continue
		}
		if pre, ok := targets[from]; ok && r.get(x, to) == nil {
			r.set(x, to, append(append([]ConverterFunc{}, pre...), fn))
		}
	}
	for y, post := range r.paths[to] {
		if y == from {
			continue
		}
		if r.get(from, y) == nil {
			r.set(from, y, append([]ConverterFunc{fn}, post...))
		}
	}
	return nil
}

// Lookup returns the conversion pipeline from one type to another, or a
// *NoConverterError if none is registered.
func (r *Registry) Lookup(from, to Type) ([]ConverterFunc, error) {
	if pipeline := r.get(from, to); pipeline != nil {
		return pipeline, nil
	}
	return nil, &NoConverterError{From: from, To: to}
}

// CanConvert reports whether a conversion path exists between two types.
// Every type trivially converts to itself.
func (r *Registry) CanConvert(from, to Type) bool {
	return from == to || r.get(from, to) != nil
}

// Convert converts a value to the given target type. Converting a value to
// its own type returns it unchanged.
//
// A registered converter that produces a value of the wrong type indicates a
// broken registration and panics with a *ConversionError.
func (r *Registry) Convert(v Value, to Type) (Value, error) {
	from := v.Type()
	if from == to {
		return v, nil
	}
	pipeline, err := r.Lookup(from, to)
	if err != nil {
		return nil, err
	}
	for _, fn := range pipeline {
		v, err = fn(v)
		if err != nil {
			return nil, err
		}
	}
	if v.Type() != to {
		panic(&ConversionError{From: from, To: to, Msg: "converter returned a " + v.Type().String()})
	}
	return v, nil
}
