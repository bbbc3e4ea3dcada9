package packrat

// GrammarError reports a grammar misconfiguration: an unresolved Alias or
// Super, a missing root rule, min > max in a Repeat, inclusion of a nil
// grammar, an unsupported rule-definition type, or a host error such as a
// regex compilation failure. These are programmer errors rather than
// parse failures — the engine raises them by panicking at the point of
// discovery and makes no attempt to recover, per the three-kind error
// taxonomy: parse failures are recoverable (ParseError, returned), grammar
// misconfiguration is not (GrammarError, panicked).
type GrammarError struct {
	Message string
}

func (e GrammarError) Error() string {
	return "packrat: grammar error: " + e.Message
}
