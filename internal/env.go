package internal

// env is the variable store for a run. It is a single flat table:
// every declaration, wherever it appears, lands in the same map, and
// redeclaring a name overwrites it. An env carries no reference to the
// run that created it, so a caller may keep one alive across runs.
type env struct {
	values map[string]interface{}
}

func newEnv() *env {
	return &env{
		values: make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	runtimeErr(errUndefinedVar, name)
	return nil
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

// assign overwrites an existing binding. It never declares: assigning
// to an unbound name fails the same way reading it does.
func (e *env) assign(name *token, value interface{}) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	runtimeErr(errUndefinedVar, name)
}
