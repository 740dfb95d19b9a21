package gcc

// Literal is a Boolean decision variable: an Entity whose domain the host
// engine constrains to {0, 1}. The core never creates the underlying
// domain; it only reads and assigns through Assignments/PropagationContext
// using the entity handle the host supplied when the literal was reified.
type Literal struct {
	Entity Entity
}

// NewLiteral wraps an Entity as a Literal. The caller is responsible for
// having registered e as a {0,1}-domain variable with the host engine.
func NewLiteral(e Entity) Literal { return Literal{Entity: e} }

// IsTrue reports whether the literal is currently assigned 1.
func (l Literal) IsTrue(a Assignments) bool { return a.IsLiteralTrue(l.Entity) }

// IsFalse reports whether the literal is currently assigned 0.
func (l Literal) IsFalse(a Assignments) bool { return a.IsLiteralFalse(l.Entity) }

// IsFixed reports whether the literal has been assigned either value.
func (l Literal) IsFixed(a Assignments) bool {
	return a.IsLiteralTrue(l.Entity) || a.IsLiteralFalse(l.Entity)
}

// AssignTrue fixes the literal to 1 with reason r.
func (l Literal) AssignTrue(ctx PropagationContext, r Reason) (Status, error) {
	return ctx.AssignLiteral(l.Entity, true, r)
}

// AssignFalse fixes the literal to 0 with reason r.
func (l Literal) AssignFalse(ctx PropagationContext, r Reason) (Status, error) {
	return ctx.AssignLiteral(l.Entity, false, r)
}

// TruePredicate returns the predicate asserting this literal is 1.
func (l Literal) TruePredicate() Predicate { return LitIsTrue(l.Entity) }

// FalsePredicate returns the predicate asserting this literal is 0.
func (l Literal) FalsePredicate() Predicate { return LitIsFalse(l.Entity) }
