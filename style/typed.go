package style

import "fmt"

// EvalContext carries the environment a deferred expression is evaluated
// against. It is currently empty; it exists so that style variables can be
// introduced later without changing the merge engine's shape.
type EvalContext struct{}

// EvalError reports a well-formed expression that does not narrow to the
// requested target type at evaluation time.
type EvalError struct {
	Expr Expr
	Want string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %s as %s", e.Expr, e.Want)
}

// TypedExpr pairs a stored dynamic expression with the static type its
// consumer expects. Construction never validates; the tag check happens in
// Eval, so a style can be stored and shared even when some of its
// expressions would not evaluate in the current context.
type TypedExpr[T any] struct {
	expr Expr
	want string
	conv func(Expr, EvalContext) (T, bool)
}

// Expr returns the underlying dynamic expression.
func (t TypedExpr[T]) Expr() Expr { return t.expr }

// Eval narrows the stored expression to the target type.
func (t TypedExpr[T]) Eval(ctx EvalContext) (T, error) {
	v, ok := t.conv(t.expr, ctx)
	if !ok {
		var zero T
		return zero, &EvalError{Expr: t.expr, Want: t.want}
	}
	return v, nil
}

func typed[T any](e Expr, want string, conv func(Expr) (T, bool)) TypedExpr[T] {
	return TypedExpr[T]{
		expr: e,
		want: want,
		conv: func(e Expr, _ EvalContext) (T, bool) { return conv(e) },
	}
}

func TypedColor(e Expr) TypedExpr[*Color] { return typed(e, "color", Expr.AsColorOpt) }
func TypedInt(e Expr) TypedExpr[int32]    { return typed(e, "integer", Expr.AsInt) }
func TypedFloat(e Expr) TypedExpr[float64] {
	return typed(e, "number", Expr.AsFloat)
}
func TypedLength(e Expr) TypedExpr[Val] { return typed(e, "length", Expr.AsLength) }
func TypedRect(e Expr) TypedExpr[Rect]  { return typed(e, "rect", Expr.AsRect) }
func TypedDisplay(e Expr) TypedExpr[Display] {
	return typed(e, "display", Expr.AsDisplay)
}
func TypedGridPlacement(e Expr) TypedExpr[GridPlacement] {
	return typed(e, "grid placement", Expr.AsGridPlacement)
}
func TypedPosition(e Expr) TypedExpr[PositionType] {
	return typed(e, "position", Expr.AsPosition)
}
func TypedOverflowAxis(e Expr) TypedExpr[OverflowAxis] {
	return typed(e, "overflow", Expr.AsOverflowAxis)
}
func TypedDirection(e Expr) TypedExpr[Direction] {
	return typed(e, "direction", Expr.AsDirection)
}
func TypedAlignItems(e Expr) TypedExpr[AlignItems] {
	return typed(e, "align-items", Expr.AsAlignItems)
}
func TypedJustifyItems(e Expr) TypedExpr[JustifyItems] {
	return typed(e, "justify-items", Expr.AsJustifyItems)
}
func TypedAlignSelf(e Expr) TypedExpr[AlignSelf] {
	return typed(e, "align-self", Expr.AsAlignSelf)
}
func TypedJustifySelf(e Expr) TypedExpr[JustifySelf] {
	return typed(e, "justify-self", Expr.AsJustifySelf)
}
func TypedAlignContent(e Expr) TypedExpr[AlignContent] {
	return typed(e, "align-content", Expr.AsAlignContent)
}
func TypedJustifyContent(e Expr) TypedExpr[JustifyContent] {
	return typed(e, "justify-content", Expr.AsJustifyContent)
}
func TypedFlexDirection(e Expr) TypedExpr[FlexDirection] {
	return typed(e, "flex-direction", Expr.AsFlexDirection)
}
func TypedFlexWrap(e Expr) TypedExpr[FlexWrap] {
	return typed(e, "flex-wrap", Expr.AsFlexWrap)
}
func TypedGridAutoFlow(e Expr) TypedExpr[GridAutoFlow] {
	return typed(e, "grid-auto-flow", Expr.AsGridAutoFlow)
}
func TypedLineBreak(e Expr) TypedExpr[LineBreak] {
	return typed(e, "line-break", Expr.AsLineBreak)
}
